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
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SIBYL_CONFIG is set
//  3. env (prefix SIBYL_)
//  4. PORT, which overrides the port of Addr
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SIBYL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SIBYL_ADDR, SIBYL_MODEL_DIMENSION, ...
	// Map env keys like SIBYL_MODEL_DIMENSION -> model_dimension (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SIBYL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "sibyl_")
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

	// PORT is the documented knob for selecting the listening port and
	// wins over everything else.
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Addr = ":" + port
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate performs basic sanity checks on a loaded Config.
func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.ModelDimension <= 0:
		return fmt.Errorf("%w: model_dimension must be positive", ErrInvalidConfig)
	case strings.TrimSpace(cfg.DefaultModel) == "":
		return fmt.Errorf("%w: default_model must not be empty", ErrInvalidConfig)
	}
	return nil
}
