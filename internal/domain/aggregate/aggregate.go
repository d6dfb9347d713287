// Package aggregate groups note batches by topic and sums their counters.
package aggregate

import (
	"fmt"

	"github.com/okian/trendnote/internal/domain/model"
)

// Aggregator folds a batch of notes into per-topic aggregates.
//
// A batch is all-or-nothing: any malformed note fails the whole batch,
// since partial aggregation would silently undercount topics.
type Aggregator struct{}

// New creates a new Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Aggregate produces one TopicAggregate per distinct topic in the batch.
// Map iteration order is unspecified; ordering is imposed by the ranker.
// An empty batch yields an empty map and no error.
func (a *Aggregator) Aggregate(notes []model.Note) (map[string]*model.TopicAggregate, error) {
	out := make(map[string]*model.TopicAggregate)

	for _, n := range notes {
		if err := validate(n); err != nil {
			return nil, err
		}

		agg, ok := out[n.Topic]
		if !ok {
			agg = &model.TopicAggregate{Topic: n.Topic}
			out[n.Topic] = agg
		}

		agg.NoteCount++
		agg.Sums.Likes += n.Stats.Likes
		agg.Sums.Comments += n.Stats.Comments
		agg.Sums.Collects += n.Stats.Collects
		agg.Sums.Shares += n.Stats.Shares
		agg.NoteIDs = append(agg.NoteIDs, n.ID)
	}

	return out, nil
}

// validate rejects notes that would corrupt cross-topic comparisons.
func validate(n model.Note) error {
	if n.Topic == "" {
		return fmt.Errorf("note %q has no topic: %w", n.ID, ErrInvalidRecord)
	}
	if n.Stats.Likes < 0 || n.Stats.Comments < 0 || n.Stats.Collects < 0 || n.Stats.Shares < 0 {
		return fmt.Errorf("note %q has a negative counter: %w", n.ID, ErrInvalidRecord)
	}
	return nil
}
