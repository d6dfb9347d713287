package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/trendnote/internal/adapters/http/api"
	"github.com/okian/trendnote/internal/adapters/repository"
	pipeline "github.com/okian/trendnote/internal/app"
	"github.com/okian/trendnote/internal/config"
	"github.com/okian/trendnote/internal/notesource"
	"github.com/okian/trendnote/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Write straight to stderr since the logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Assemble the pipeline from configuration.
	source := notesource.NewSyntheticSource(
		notesource.WithCount(cfg.NoteCount),
		notesource.WithWindowDays(cfg.WindowDays),
		notesource.WithKeywords(cfg.Keywords),
	)
	store := repository.NewFileStore(repository.WithDir(cfg.DataDir))
	p := pipeline.New(
		pipeline.WithLogger(log),
		pipeline.WithSource(source),
		pipeline.WithStore(store),
		pipeline.WithTopK(cfg.TopK),
		pipeline.WithDraftsPerTopic(cfg.DraftsPerTopic),
		pipeline.WithWorkerCount(cfg.WorkerCount),
		pipeline.WithQueueCapacity(cfg.QueueCapacity),
		pipeline.WithWeights(cfg.Weights),
	)

	// One full batch up front; in one-shot mode this is the whole job.
	if err := p.Run(ctx); err != nil {
		if !cfg.Serve {
			os.Exit(1)
		}
		// In serve mode keep going: readers can still get earlier
		// artifacts and periodic refresh may succeed later.
		log.Warn(ctx, "initial pipeline run failed; serving previous artifacts",
			logger.Error(err))
	}
	if !cfg.Serve {
		return
	}

	// Periodic refresh re-runs the pipeline in the background.
	if cfg.RefreshInterval > 0 {
		go startRefreshLoop(ctx, p, cfg.RefreshInterval)
	}

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(p)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startRefreshLoop re-runs the pipeline on a fixed interval until ctx
// is cancelled. A failed run keeps the previous artifacts in place.
func startRefreshLoop(ctx context.Context, p *pipeline.Pipeline, interval time.Duration) {
	log := logger.Named("refresh")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Run(ctx); err != nil {
				log.Warn(ctx, "scheduled pipeline run failed", logger.Error(err))
			}
		}
	}
}
