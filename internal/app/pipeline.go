// Package pipeline wires the trend analysis stages into one runnable
// batch: fetch notes, aggregate by topic, score, rank, synthesize
// drafts, and persist every artifact.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/trendnote/internal/adapters/mq/queue"
	workerpool "github.com/okian/trendnote/internal/adapters/mq/worker"
	"github.com/okian/trendnote/internal/adapters/repository"
	"github.com/okian/trendnote/internal/domain/aggregate"
	"github.com/okian/trendnote/internal/domain/model"
	"github.com/okian/trendnote/internal/domain/ranking"
	"github.com/okian/trendnote/internal/domain/scoring"
	"github.com/okian/trendnote/internal/domain/synthesis"
	"github.com/okian/trendnote/internal/notesource"
	"github.com/okian/trendnote/pkg/logger"
	"github.com/okian/trendnote/pkg/metrics"
)

// Pipeline stage names used in logs and metrics.
const (
	stageFetch      = "fetch"
	stageAggregate  = "aggregate"
	stageScore      = "score"
	stageRank       = "rank"
	stageSynthesize = "synthesize"
	stagePersist    = "persist"
)

// defaultDataSource labels persisted analyses with their note origin.
const defaultDataSource = "synthetic"

// Pipeline runs the full analysis batch. Stages execute sequentially;
// a stage failure aborts the run and leaves previously persisted
// artifacts untouched. Only synthesis fans out across workers.
type Pipeline struct {
	mu sync.RWMutex

	// Core components
	source     notesource.Source
	store      repository.Store
	aggregator *aggregate.Aggregator
	scorer     *scoring.HeatScorer
	ranker     *ranking.Ranker

	// Configuration
	topK           int
	draftsPerTopic int
	workerCount    int
	queueCapacity  int
	weights        scoring.Weights

	// Last run state, served to the HTTP read surface.
	lastAnalysis *repository.AnalysisDocument
	lastDrafts   *repository.DraftsDocument
	lastRunAt    time.Time
	runs         int
	failures     int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithSource sets the note source.
func WithSource(src notesource.Source) Option {
	return func(p *Pipeline) {
		if src != nil {
			p.source = src
		}
	}
}

// WithStore sets the artifact store.
func WithStore(store repository.Store) Option {
	return func(p *Pipeline) {
		if store != nil {
			p.store = store
		}
	}
}

// WithTopK caps how many topics the ranking keeps.
func WithTopK(k int) Option {
	return func(p *Pipeline) {
		if k > 0 {
			p.topK = k
		}
	}
}

// WithDraftsPerTopic sets how many draft variants each topic gets.
func WithDraftsPerTopic(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.draftsPerTopic = n
		}
	}
}

// WithWorkerCount sets the number of synthesis workers.
func WithWorkerCount(count int) Option {
	return func(p *Pipeline) {
		if count > 0 {
			p.workerCount = count
		}
	}
}

// WithQueueCapacity bounds the synthesis task queue.
func WithQueueCapacity(capacity int) Option {
	return func(p *Pipeline) {
		if capacity > 0 {
			p.queueCapacity = capacity
		}
	}
}

// WithWeights overrides the engagement weight table used for scoring.
func WithWeights(w scoring.Weights) Option {
	return func(p *Pipeline) {
		p.weights = w
	}
}

// WithLogger sets a custom logger for the pipeline.
func WithLogger(l logger.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New constructs a Pipeline with default configuration.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		topK:           5,
		draftsPerTopic: 1,
		workerCount:    runtime.NumCPU(),
		queueCapacity:  1024,
		weights:        scoring.DefaultWeights(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(p)
	}

	if p.source == nil {
		p.source = notesource.NewSyntheticSource()
	}
	if p.store == nil {
		p.store = repository.NewFileStore()
	}
	if p.logger == nil {
		p.logger = logger.Get().Named("pipeline")
	}

	p.aggregator = aggregate.New()
	p.scorer = scoring.NewHeatScorer(scoring.WithWeights(p.weights))
	p.ranker = ranking.New()

	return p
}

// Run executes one full batch. The first stage failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.logger.Info(ctx, "pipeline run starting",
		logger.Int("top_k", p.topK),
		logger.Int("drafts_per_topic", p.draftsPerTopic),
		logger.Int("workers", p.workerCount),
	)

	if err := p.run(ctx); err != nil {
		metrics.RecordPipelineFailure()
		p.mu.Lock()
		p.failures++
		p.mu.Unlock()
		p.logger.Error(ctx, "pipeline run failed",
			logger.Duration("elapsed", time.Since(start)),
			logger.Error(err),
		)
		return err
	}

	metrics.RecordPipelineRun()
	p.mu.Lock()
	p.runs++
	p.lastRunAt = time.Now()
	p.mu.Unlock()

	p.logger.Info(ctx, "pipeline run finished",
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (p *Pipeline) run(ctx context.Context) error {
	// Fetch
	stageStart := time.Now()
	batch, err := p.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch notes: %w", err)
	}
	metrics.RecordNotesFetched(len(batch.Notes))
	p.endStage(ctx, stageFetch, stageStart, logger.Int("notes", len(batch.Notes)))

	if _, err := p.store.SaveNotes(ctx, batch); err != nil {
		return fmt.Errorf("persist notes: %w", err)
	}

	// Aggregate
	stageStart = time.Now()
	aggs, err := p.aggregator.Aggregate(batch.Notes)
	if err != nil {
		if errors.Is(err, aggregate.ErrInvalidRecord) {
			metrics.RecordInvalidRecord()
		}
		return fmt.Errorf("aggregate notes: %w", err)
	}
	metrics.UpdateTopicsAggregated(len(aggs))
	p.endStage(ctx, stageAggregate, stageStart, logger.Int("topics", len(aggs)))

	// Score
	stageStart = time.Now()
	scored := p.scorer.ScoreAll(aggs)
	p.endStage(ctx, stageScore, stageStart, logger.Int("topics", len(scored)))

	// Rank
	stageStart = time.Now()
	ranked, err := p.ranker.TopK(scored, p.topK)
	if err != nil {
		return fmt.Errorf("rank topics: %w", err)
	}
	metrics.UpdateTopicsRanked(len(ranked))
	p.endStage(ctx, stageRank, stageStart, logger.Int("ranked", len(ranked)))

	// Persist the analysis before synthesis so drafts can reference it.
	stageStart = time.Now()
	analysis := repository.AnalysisDocument{
		AnalysisTime: time.Now(),
		DataSource:   defaultDataSource,
		TotalNotes:   len(batch.Notes),
		TotalTopics:  len(aggs),
		TopK:         p.topK,
		TopTopics:    ranked,
	}
	analysisPath, err := p.store.SaveAnalysis(ctx, analysis)
	if err != nil {
		return fmt.Errorf("persist analysis: %w", err)
	}
	p.endStage(ctx, stagePersist, stageStart, logger.String("path", analysisPath))

	// Synthesize
	stageStart = time.Now()
	drafts, err := p.synthesize(ctx, ranked)
	if err != nil {
		return fmt.Errorf("synthesize drafts: %w", err)
	}
	p.endStage(ctx, stageSynthesize, stageStart, logger.Int("drafts", len(drafts)))

	doc := repository.DraftsDocument{
		GenerationTime:  time.Now(),
		BasedOnAnalysis: analysisPath,
		DraftsPerTopic:  p.draftsPerTopic,
		Drafts:          drafts,
	}
	if _, err := p.store.SaveDrafts(ctx, doc); err != nil {
		return fmt.Errorf("persist drafts: %w", err)
	}

	p.mu.Lock()
	p.lastAnalysis = &analysis
	p.lastDrafts = &doc
	p.mu.Unlock()

	return nil
}

// synthesize fans the ranked topics out across the worker pool and
// collects the finished drafts. Each worker owns its own composer so
// template selection never shares a random source.
func (p *Pipeline) synthesize(ctx context.Context, ranked []model.RankedTopic) ([]model.Draft, error) {
	q := queue.NewInMemoryQueue(queue.WithCapacity(p.queueCapacity))
	collector := newDraftCollector()

	pool := workerpool.NewPool(p.workerCount, q, func() workerpool.Composer {
		return synthesis.NewComposer()
	}, collector)
	pool.Start(ctx)

	for _, rt := range ranked {
		for i := 0; i < p.draftsPerTopic; i++ {
			if ok := q.Enqueue(ctx, queue.Task{Topic: rt, Iteration: i}); !ok {
				_ = q.Close()
				pool.Stop()
				return nil, fmt.Errorf("enqueue synthesis task for %q", rt.Topic)
			}
		}
	}
	_ = q.Close()

	if err := pool.Wait(ctx); err != nil {
		return nil, err
	}

	return collector.snapshot(), nil
}

// endStage records stage duration metrics and logs completion.
func (p *Pipeline) endStage(ctx context.Context, stage string, start time.Time, fields ...logger.Field) {
	elapsed := time.Since(start)
	metrics.RecordStageDuration(stage, float64(elapsed.Milliseconds()))
	fields = append(fields,
		logger.String("stage", stage),
		logger.Duration("elapsed", elapsed),
	)
	p.logger.Debug(ctx, "stage finished", fields...)
}

// Analysis returns the most recent analysis, preferring the in-memory
// result of this process and falling back to the persisted one.
func (p *Pipeline) Analysis(ctx context.Context) (repository.AnalysisDocument, error) {
	p.mu.RLock()
	if p.lastAnalysis != nil {
		doc := *p.lastAnalysis
		p.mu.RUnlock()
		return doc, nil
	}
	p.mu.RUnlock()
	return p.store.LatestAnalysis(ctx)
}

// Drafts returns the most recent drafts document.
func (p *Pipeline) Drafts(ctx context.Context) (repository.DraftsDocument, error) {
	p.mu.RLock()
	if p.lastDrafts != nil {
		doc := *p.lastDrafts
		p.mu.RUnlock()
		return doc, nil
	}
	p.mu.RUnlock()
	return p.store.LatestDrafts(ctx)
}

// Stats returns pipeline statistics for monitoring.
func (p *Pipeline) Stats(_ context.Context) map[string]interface{} {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := map[string]interface{}{
		"runs":             p.runs,
		"failures":         p.failures,
		"top_k":            p.topK,
		"drafts_per_topic": p.draftsPerTopic,
		"worker_count":     p.workerCount,
	}
	if !p.lastRunAt.IsZero() {
		stats["last_run_at"] = p.lastRunAt
	}
	if p.lastAnalysis != nil {
		stats["total_notes"] = p.lastAnalysis.TotalNotes
		stats["total_topics"] = p.lastAnalysis.TotalTopics
	}
	if p.lastDrafts != nil {
		stats["drafts"] = len(p.lastDrafts.Drafts)
	}
	return stats
}
