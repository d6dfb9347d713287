// Package repository persists pipeline artifacts and serves the latest ones.
//
// Every artifact is written twice: a timestamped file for history and a
// "_latest" file for readers that only want the current state.
package repository

import (
	"context"
	"time"

	"github.com/okian/trendnote/internal/domain/model"
	"github.com/okian/trendnote/internal/notesource"
)

// Artifact kind prefixes used in file names.
const (
	kindNotes    = "notes"
	kindAnalysis = "trend_analysis"
	kindDrafts   = "generated_drafts"
)

// AnalysisDocument is the persisted result of one analysis run.
type AnalysisDocument struct {
	AnalysisTime time.Time           `json:"analysis_time"`
	DataSource   string              `json:"data_source"`
	TotalNotes   int                 `json:"total_notes"`
	TotalTopics  int                 `json:"total_topics"`
	TopK         int                 `json:"top_k"`
	TopTopics    []model.RankedTopic `json:"top_topics"`
}

// DraftsDocument is the persisted result of one synthesis run.
type DraftsDocument struct {
	GenerationTime  time.Time     `json:"generation_time"`
	BasedOnAnalysis string        `json:"based_on_analysis"`
	DraftsPerTopic  int           `json:"drafts_per_topic"`
	Drafts          []model.Draft `json:"drafts"`
}

// Store provides read/write access to persisted pipeline artifacts.
type Store interface {
	// SaveNotes persists a fetched batch. Returns the timestamped path.
	SaveNotes(ctx context.Context, batch notesource.Batch) (string, error)

	// SaveAnalysis persists an analysis document. Returns the timestamped path.
	SaveAnalysis(ctx context.Context, doc AnalysisDocument) (string, error)

	// SaveDrafts persists a drafts document. Returns the timestamped path.
	SaveDrafts(ctx context.Context, doc DraftsDocument) (string, error)

	// LatestNotes loads the most recent note batch.
	// Returns ErrNotFound when nothing has been persisted yet.
	LatestNotes(ctx context.Context) (notesource.Batch, error)

	// LatestAnalysis loads the most recent analysis document.
	LatestAnalysis(ctx context.Context) (AnalysisDocument, error)

	// LatestDrafts loads the most recent drafts document.
	LatestDrafts(ctx context.Context) (DraftsDocument, error)
}
