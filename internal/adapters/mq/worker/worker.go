// Package worker drains the synthesis queue and collects finished drafts.
package worker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/okian/trendnote/internal/adapters/mq/queue"
	"github.com/okian/trendnote/internal/domain/model"
	"github.com/okian/trendnote/pkg/logger"
	"github.com/okian/trendnote/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount    = 4
	workerShutdownTimeout = 5 * time.Second
)

// Task aliases the queue payload for consumers of this package.
type Task = queue.Task

// Composer renders a draft for a ranked topic.
type Composer interface {
	Compose(t model.RankedTopic) (model.Draft, error)
}

// ComposerFactory builds one Composer per worker. Each composer owns
// its own random source, so concurrent drafts never share a generator.
type ComposerFactory func() Composer

// Collector receives finished drafts.
type Collector interface {
	Collect(ctx context.Context, d model.Draft) error
}

// Queue defines how workers receive tasks.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Task
}

// Worker processes synthesis tasks until its task channel closes.
// A failed task is logged and counted; it never stops the worker, so
// one topic's failure cannot block drafts for the remaining topics.
type Worker struct {
	queue     Queue
	composer  Composer
	collector Collector
	name      string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// Option applies a configuration option to the Worker.
type Option func(*Worker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorker creates a worker with configuration options.
func NewWorker(q Queue, composer Composer, collector Collector, opts ...Option) *Worker {
	w := &Worker{
		queue:     q,
		composer:  composer,
		collector: collector,
		name:      "worker",
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger.Get().Named("worker"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run processes tasks until the queue drains or ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	taskChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case task, ok := <-taskChan:
			if !ok {
				return
			}
			if err := w.processTask(ctx, task); err != nil {
				w.logger.Error(ctx, "draft generation failed",
					logger.String("topic", task.Topic.Topic),
					logger.Int("iteration", task.Iteration),
					logger.Error(err),
				)
			}
		}
	}
}

// processTask composes one draft and hands it to the collector.
func (w *Worker) processTask(ctx context.Context, task Task) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	draft, err := w.composer.Compose(task.Topic)
	if err != nil {
		metrics.RecordDraftError()
		return fmt.Errorf("compose draft for %q: %w", task.Topic.Topic, err)
	}

	if err := w.collector.Collect(ctx, draft); err != nil {
		metrics.RecordDraftError()
		return fmt.Errorf("collect draft for %q: %w", task.Topic.Topic, err)
	}

	metrics.RecordDraftGenerated()
	return nil
}

// Pool manages multiple workers over a shared queue.
type Pool struct {
	workers []*Worker

	shutdown chan struct{}
	logger   logger.Logger
}

// NewPool creates a pool of workerCount workers; the factory gives
// every worker its own composer instance.
func NewPool(workerCount int, q Queue, factory ComposerFactory, collector Collector) *Pool {
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	p := &Pool{
		workers:  make([]*Worker, workerCount),
		shutdown: make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		p.workers[i] = NewWorker(
			q,
			factory(),
			collector,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)

	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Wait blocks until every worker has drained the queue or ctx expires.
func (p *Pool) Wait(ctx context.Context) error {
	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-ctx.Done():
			p.logger.Warn(ctx, "worker wait timed out", logger.Int("worker_id", i))
			return fmt.Errorf("waiting for workers: %w", ctx.Err())
		}
	}
	return nil
}

// Stop signals all workers to quit without waiting for the queue.
func (p *Pool) Stop() {
	close(p.shutdown)
	for _, w := range p.workers {
		select {
		case <-w.shutdown:
		default:
			close(w.shutdown)
		}
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}
