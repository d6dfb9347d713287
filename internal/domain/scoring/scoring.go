// Package scoring computes weighted engagement and heat scores per topic.
package scoring

import (
	"github.com/okian/trendnote/internal/domain/model"
)

// Heat score formula constants. These are a contract: downstream
// consumers and tests reproduce them bit-for-bit.
const (
	volumeScale     = 10  // note volume term multiplier
	engagementScale = 100 // weighted engagement term divisor
)

// Weights maps each engagement counter kind to its importance.
// Deeper engagement (sharing > commenting > collecting > liking)
// contributes more to perceived heat than passive counts.
type Weights struct {
	Likes    float64 `koanf:"likes" json:"likes"`
	Comments float64 `koanf:"comments" json:"comments"`
	Collects float64 `koanf:"collects" json:"collects"`
	Shares   float64 `koanf:"shares" json:"shares"`
}

// DefaultWeights returns the standard engagement weight table.
func DefaultWeights() Weights {
	return Weights{
		Likes:    1.0,
		Comments: 2.0,
		Collects: 1.5,
		Shares:   3.0,
	}
}

// valid reports whether every weight is non-negative.
func (w Weights) valid() bool {
	return w.Likes >= 0 && w.Comments >= 0 && w.Collects >= 0 && w.Shares >= 0
}

// Option applies a configuration option to the HeatScorer.
type Option func(*HeatScorer)

// WithWeights overrides the engagement weight table. Tables containing
// a negative weight are ignored.
func WithWeights(w Weights) Option {
	return func(s *HeatScorer) {
		if w.valid() {
			s.weights = w
		}
	}
}

// Scorer derives a ScoredTopic from a TopicAggregate.
type Scorer interface {
	Score(agg model.TopicAggregate) model.ScoredTopic
}

// HeatScorer implements Scorer with the weighted heat formula.
// It is a pure computation: no I/O, deterministic given its input.
type HeatScorer struct {
	weights Weights
}

// NewHeatScorer creates a scorer with configuration options.
func NewHeatScorer(opts ...Option) *HeatScorer {
	s := &HeatScorer{
		weights: DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the weight table in effect.
func (s *HeatScorer) Weights() Weights {
	return s.weights
}

// Score computes weighted engagement, heat score, and average engagement
// for a single topic aggregate.
//
//	weighted = Σ sums[kind] * weight[kind]
//	heat     = note_count*10 + weighted/100
//
// Volume is weighted coarsely so a single viral note cannot dominate a
// topic with broad coverage, while engagement separates topics of
// similar note counts.
func (s *HeatScorer) Score(agg model.TopicAggregate) model.ScoredTopic {
	weighted := float64(agg.Sums.Likes)*s.weights.Likes +
		float64(agg.Sums.Comments)*s.weights.Comments +
		float64(agg.Sums.Collects)*s.weights.Collects +
		float64(agg.Sums.Shares)*s.weights.Shares

	heat := float64(agg.NoteCount)*volumeScale + weighted/engagementScale

	// NoteCount is >= 1 for any aggregate built by the aggregator; the
	// zero guard keeps future callers from dividing by zero.
	avg := 0.0
	if agg.NoteCount > 0 {
		avg = float64(agg.Sums.Total()) / float64(agg.NoteCount)
	}

	return model.ScoredTopic{
		TopicAggregate:     agg,
		WeightedEngagement: weighted,
		HeatScore:          heat,
		AvgEngagement:      avg,
	}
}

// ScoreAll scores every aggregate in the mapping.
func (s *HeatScorer) ScoreAll(aggs map[string]*model.TopicAggregate) map[string]model.ScoredTopic {
	out := make(map[string]model.ScoredTopic, len(aggs))
	for topic, agg := range aggs {
		out[topic] = s.Score(*agg)
	}
	return out
}
