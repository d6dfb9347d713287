package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/trendnote/internal/domain/model"
)

// draftCollector gathers drafts from concurrent workers.
type draftCollector struct {
	mu     sync.Mutex
	drafts []model.Draft
}

func newDraftCollector() *draftCollector {
	return &draftCollector{}
}

// Collect appends a finished draft.
func (c *draftCollector) Collect(_ context.Context, d model.Draft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts = append(c.drafts, d)
	return nil
}

// snapshot returns the collected drafts ordered by topic rank so the
// persisted document is stable regardless of worker interleaving.
func (c *draftCollector) snapshot() []model.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Draft, len(c.drafts))
	copy(out, c.drafts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TopicRank != out[j].TopicRank {
			return out[i].TopicRank < out[j].TopicRank
		}
		return out[i].Title < out[j].Title
	})
	return out
}
