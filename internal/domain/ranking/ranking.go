// Package ranking orders scored topics and selects the top K.
package ranking

import (
	"sort"

	"github.com/okian/trendnote/internal/domain/model"
)

// Ranker sorts scored topics by heat score and assigns dense ranks.
type Ranker struct{}

// New creates a new Ranker.
func New() *Ranker {
	return &Ranker{}
}

// TopK returns at most k RankedTopics ordered by heat score descending.
// Equal heat scores are broken by topic name ascending so output is
// reproducible across runs with identical input. Ranks are 1-based,
// dense, and contiguous.
//
// Returns ErrEmptyInput when the mapping holds no topics; k < 1 is
// ErrInvalidLimit.
func (r *Ranker) TopK(scored map[string]model.ScoredTopic, k int) ([]model.RankedTopic, error) {
	if k < 1 {
		return nil, ErrInvalidLimit
	}
	if len(scored) == 0 {
		return nil, ErrEmptyInput
	}

	all := make([]model.ScoredTopic, 0, len(scored))
	for _, st := range scored {
		all = append(all, st)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].HeatScore != all[j].HeatScore {
			return all[i].HeatScore > all[j].HeatScore
		}
		return all[i].Topic < all[j].Topic
	})

	if k > len(all) {
		k = len(all)
	}

	out := make([]model.RankedTopic, k)
	for i := 0; i < k; i++ {
		out[i] = model.RankedTopic{
			ScoredTopic: all[i],
			Rank:        i + 1,
		}
	}
	return out, nil
}
