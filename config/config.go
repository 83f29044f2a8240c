// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package config

import (
	"context"
	"os"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"github.com/shubhampachori12110095/pescador/mux"
	"github.com/shubhampachori12110095/pescador/streamer"
	"github.com/shubhampachori12110095/pescador/types"
)

// Variant names accepted in configuration.
const (
	VariantPoisson    = "poisson"
	VariantShuffled   = "shuffled"
	VariantRoundRobin = "round_robin"
	VariantChain      = "chain"
)

// Mux is the declarative description of a multiplexer.
//
// Rate semantics: omitted means the variant default (256 for poisson);
// an explicit 0 disables sample budgeting (unbounded streams).
type Mux struct {
	// Variant selects the selection policy: poisson, shuffled,
	// round_robin, or chain.
	Variant string `yaml:"variant"`
	// K is the number of concurrently active slots. Required for poisson;
	// derived for the other variants.
	K int `yaml:"k"`
	// Rate is the Poisson rate for per-stream sample budgets.
	Rate *float64 `yaml:"rate"`
	// Mode is the variant mode (with_replacement, single_active,
	// exhaustive).
	Mode string `yaml:"mode"`
	// Weights are the static per-member sampling weights.
	Weights []float64 `yaml:"weights"`
	// Seed seeds the pseudorandom source for reproducible runs.
	Seed *int64 `yaml:"seed"`
	// PruneEmptyStreams disables streams that produce no data.
	PruneEmptyStreams *bool `yaml:"prune_empty_streams"`
	// Prefetch is the depth of the output prefetch buffer; 0 disables
	// prefetching. Applied by BuildStream only.
	Prefetch int `yaml:"prefetch"`
	// RateLimit caps the output in items per second; 0 means unlimited.
	// Applied by BuildStream only.
	RateLimit float64 `yaml:"rate_limit"`
}

// Default returns the default multiplexer configuration.
func Default() Mux {
	return Mux{
		Variant: VariantPoisson,
		K:       1,
	}
}

// Parse decodes a YAML document over the defaults and validates it.
func Parse(data []byte) (Mux, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Mux{}, types.NewError(types.ErrInvalidConfig, "parse mux config").WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return Mux{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (Mux, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mux{}, types.NewErrorf(types.ErrInvalidConfig, "read mux config %s", path).WithCause(err)
	}
	return Parse(data)
}

// Validate checks the configuration surface. Constraints that depend on the
// pool (weight-vector length) are checked by Build.
func (c Mux) Validate() error {
	switch c.Variant {
	case VariantPoisson, VariantShuffled, VariantRoundRobin, VariantChain:
	default:
		return types.NewErrorf(types.ErrInvalidConfig, "unknown mux variant %q", c.Variant)
	}
	if c.Variant == VariantPoisson && c.K < 1 {
		return types.NewErrorf(types.ErrInvalidSlotCount, "k must be >= 1 for the poisson variant, got %d", c.K)
	}
	if c.Rate != nil && *c.Rate < 0 {
		return types.NewErrorf(types.ErrInvalidRate, "rate must be >= 0, got %v", *c.Rate)
	}
	if c.Prefetch < 0 {
		return types.NewErrorf(types.ErrInvalidConfig, "prefetch must be >= 0, got %d", c.Prefetch)
	}
	if c.RateLimit < 0 {
		return types.NewErrorf(types.ErrInvalidConfig, "rate_limit must be >= 0, got %v", c.RateLimit)
	}
	return nil
}

// Build constructs the configured variant over the given pool. Additional
// options (logger, observer, tracing) are appended after those derived from
// the configuration, so callers can extend but not silently contradict it.
func Build[T any](cfg Mux, pool []streamer.Streamer[T], extra ...mux.Option) (*mux.Mux[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []mux.Option
	if cfg.Weights != nil {
		opts = append(opts, mux.WithWeights(cfg.Weights))
	}
	if cfg.Seed != nil {
		opts = append(opts, mux.WithSeed(*cfg.Seed))
	}
	if cfg.PruneEmptyStreams != nil {
		opts = append(opts, mux.WithPruneEmptyStreams(*cfg.PruneEmptyStreams))
	}
	if cfg.Rate != nil {
		if *cfg.Rate == 0 {
			opts = append(opts, mux.WithUnboundedRate())
		} else {
			opts = append(opts, mux.WithRate(*cfg.Rate))
		}
	}
	if cfg.Mode != "" {
		opts = append(opts, mux.WithMode(mux.Mode(cfg.Mode)))
	}
	opts = append(opts, extra...)

	switch cfg.Variant {
	case VariantPoisson:
		return mux.NewPoisson(pool, cfg.K, opts...)
	case VariantShuffled:
		return mux.NewShuffled(pool, opts...)
	case VariantRoundRobin:
		return mux.NewRoundRobin(pool, opts...)
	case VariantChain:
		return mux.NewChain(pool, opts...)
	default:
		return nil, types.NewErrorf(types.ErrInvalidConfig, "unknown mux variant %q", cfg.Variant)
	}
}

// BuildStream builds the configured variant and applies the output
// decorators: prefetching when prefetch > 0 and throttling when rate_limit
// is set. The context bounds throttled pulls for the life of the stream.
func BuildStream[T any](ctx context.Context, cfg Mux, pool []streamer.Streamer[T], extra ...mux.Option) (streamer.Streamer[T], error) {
	m, err := Build(cfg, pool, extra...)
	if err != nil {
		return nil, err
	}

	var s streamer.Streamer[T] = m
	if cfg.Prefetch > 0 {
		s = streamer.Prefetch(s, cfg.Prefetch)
	}
	if cfg.RateLimit > 0 {
		s = streamer.Throttle(ctx, s, rate.Limit(cfg.RateLimit), 1)
	}
	return s, nil
}
