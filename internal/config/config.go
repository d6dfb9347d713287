// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"
	"time"

	"github.com/okian/trendnote/internal/domain/scoring"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Serve keeps the process alive after the first pipeline run and
	// exposes the HTTP read surface. When false the process runs the
	// pipeline once and exits.
	Serve bool `koanf:"serve"`

	// RefreshInterval re-runs the pipeline periodically in serve mode.
	// Zero disables periodic refresh.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// DataDir is where pipeline artifacts are persisted as JSON.
	DataDir string `koanf:"data_dir"`

	// NoteCount sets how many notes the source generates per fetch.
	NoteCount int `koanf:"note_count"`

	// WindowDays is the trailing time window notes are drawn from.
	WindowDays int `koanf:"window_days"`

	// Keywords describes the fetch query recorded with each batch.
	Keywords string `koanf:"keywords"`

	// TopK caps how many topics the ranking keeps.
	TopK int `koanf:"top_k"`

	// DraftsPerTopic sets how many draft variants each topic gets.
	DraftsPerTopic int `koanf:"drafts_per_topic"`

	// WorkerCount sets the number of synthesis workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueCapacity bounds the in-memory synthesis task queue.
	QueueCapacity int `koanf:"queue_capacity"`

	// Weights tunes the engagement weight table used for scoring.
	Weights scoring.Weights `koanf:"weights"`
}

// New creates a Config populated with defaults. Context is accepted
// first to satisfy the project-wide convention; it is reserved for
// future use and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		Serve:           false,
		RefreshInterval: 0,
		DataDir:         "data",
		NoteCount:       100,
		WindowDays:      7,
		Keywords:        "movies",
		TopK:            5,
		DraftsPerTopic:  1,
		WorkerCount:     runtime.NumCPU(),
		QueueCapacity:   1024,
		Weights:         scoring.DefaultWeights(),
	}
	return c
}
