package notesource

import (
	"math/rand"
	"time"
)

// Default source configuration constants.
const (
	defaultNoteCount  = 100
	defaultWindowDays = 7
	defaultKeywords   = "movies"
)

// Option applies a configuration option to the SyntheticSource.
type Option func(*SyntheticSource)

// WithCount sets how many notes a fetch produces.
func WithCount(count int) Option {
	return func(s *SyntheticSource) {
		if count > 0 {
			s.count = count
		}
	}
}

// WithWindowDays sets the publication window for generated notes.
func WithWindowDays(days int) Option {
	return func(s *SyntheticSource) {
		if days > 0 {
			s.windowDays = days
		}
	}
}

// WithKeywords sets the search keywords recorded in the batch envelope.
func WithKeywords(keywords string) Option {
	return func(s *SyntheticSource) {
		if keywords != "" {
			s.keywords = keywords
		}
	}
}

// WithRand sets the random source. A seeded source makes fetches
// deterministic for tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *SyntheticSource) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithNow overrides the clock, for deterministic timestamps in tests.
func WithNow(now func() time.Time) Option {
	return func(s *SyntheticSource) {
		if now != nil {
			s.now = now
		}
	}
}

// SyntheticSource implements Source with generated data.
type SyntheticSource struct {
	count      int
	windowDays int
	keywords   string
	rng        *rand.Rand
	now        func() time.Time
}

// NewSyntheticSource creates a source with configuration options.
func NewSyntheticSource(opts ...Option) *SyntheticSource {
	s := &SyntheticSource{
		count:      defaultNoteCount,
		windowDays: defaultWindowDays,
		keywords:   defaultKeywords,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // synthetic data, not security
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
