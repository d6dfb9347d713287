// Package notesource produces note batches for the analysis pipeline.
//
// The synthetic source stands in for a real upstream API: it generates
// batches with realistic topic and engagement distributions so the rest
// of the pipeline can run end to end without network access.
package notesource

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/trendnote/internal/domain/model"
)

// Batch is one fetched collection of notes plus envelope metadata.
type Batch struct {
	FetchTime  time.Time    `json:"fetch_time"`
	Keywords   string       `json:"keywords"`
	WindowDays int          `json:"time_range_days"`
	TotalCount int          `json:"total_count"`
	Notes      []model.Note `json:"notes"`
}

// Source yields a batch of notes for analysis.
type Source interface {
	Fetch(ctx context.Context) (Batch, error)
}

// engagementTier bounds the likes draw; the other counters are derived
// as ratios of likes to keep the distribution plausible.
type engagementTier struct {
	minLikes int
	maxLikes int
}

// Tiers mirror observed engagement bands: most notes land low, a few go viral.
var engagementTiers = []engagementTier{
	{50, 500},     // low
	{500, 2000},   // mid
	{2000, 10000}, // high
}

// Derived counter ratio bounds, relative to likes.
const (
	commentRatioMin = 0.02
	commentRatioMax = 0.08
	collectRatioMin = 0.10
	collectRatioMax = 0.30
	shareRatioMin   = 0.01
	shareRatioMax   = 0.05
)

// Tag count bounds per note.
const (
	minTagsPerNote = 4
	maxTagsPerNote = 7
)

// Fetch generates the configured number of synthetic notes.
func (s *SyntheticSource) Fetch(ctx context.Context) (Batch, error) {
	notes := make([]model.Note, 0, s.count)
	for i := 0; i < s.count; i++ {
		if err := ctx.Err(); err != nil {
			return Batch{}, fmt.Errorf("note generation cancelled at %d: %w", i, err)
		}
		notes = append(notes, s.newNote())
	}

	return Batch{
		FetchTime:  s.now(),
		Keywords:   s.keywords,
		WindowDays: s.windowDays,
		TotalCount: len(notes),
		Notes:      notes,
	}, nil
}

// newNote builds a single note with random topic, content, and counters.
func (s *SyntheticSource) newNote() model.Note {
	topic := s.pick(topics)
	movie := s.pick(movieNames)

	tier := engagementTiers[s.rng.Intn(len(engagementTiers))]
	likes := tier.minLikes + s.rng.Intn(tier.maxLikes-tier.minLikes)

	stats := model.Counters{
		Likes:    likes,
		Comments: int(float64(likes) * s.ratio(commentRatioMin, commentRatioMax)),
		Collects: int(float64(likes) * s.ratio(collectRatioMin, collectRatioMax)),
		Shares:   int(float64(likes) * s.ratio(shareRatioMin, shareRatioMax)),
	}

	daysAgo := s.rng.Float64() * float64(s.windowDays)
	published := s.now().Add(-time.Duration(daysAgo * float64(24*time.Hour)))

	tagCount := minTagsPerNote + s.rng.Intn(maxTagsPerNote-minTagsPerNote+1)

	return model.Note{
		ID:          "note_" + uuid.New().String(),
		Title:       fmt.Sprintf(s.pick(noteTitleTemplates), movie),
		Content:     s.noteContent(topic, movie),
		Topic:       topic,
		Stats:       stats,
		Tags:        s.sample(notesTagPool, tagCount),
		PublishedAt: published,
	}
}

// noteContent assembles intro, three highlight lines, a closing
// feeling, and a hashtag line.
func (s *SyntheticSource) noteContent(topic, movie string) string {
	out := fmt.Sprintf(s.pick(noteIntros), movie) + "\n\n"
	for i, line := range s.sample(noteHighlights, 3) {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	out += "\n\n💕 " + s.pick(noteFeelings)
	out += fmt.Sprintf("\n\n#%s #%s #movie picks", topic, movie)
	return out
}

// ratio draws uniformly from [lo, hi).
func (s *SyntheticSource) ratio(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// pick returns a uniformly random element of pool.
func (s *SyntheticSource) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// sample returns k distinct elements drawn without replacement.
func (s *SyntheticSource) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	idx := s.rng.Perm(len(pool))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}
