package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if TRENDNOTE_CONFIG is set
//  3. env (prefix TRENDNOTE_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("TRENDNOTE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TRENDNOTE_ADDR, TRENDNOTE_TOP_K, ...
	// Map env keys like TRENDNOTE_TOP_K -> top_k (flat keys), preserving
	// underscores to match koanf tags on the struct. Weight overrides
	// like TRENDNOTE_WEIGHTS_SHARES map to the nested weights table.
	envProvider := env.Provider("TRENDNOTE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "trendnote_")
		if after, ok := strings.CutPrefix(s, "weights_"); ok {
			return "weights." + after
		}
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.TopK < 1 {
		return nil, fmt.Errorf("%w: top_k must be at least 1", ErrInvalidConfig)
	}
	if cfg.DraftsPerTopic < 1 {
		return nil, fmt.Errorf("%w: drafts_per_topic must be at least 1", ErrInvalidConfig)
	}
	return &cfg, nil
}
