// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Option configures a mux at construction time.
type Option func(*options)

type options struct {
	weights       []float64
	prune         bool
	randomState   any
	logger        *zap.Logger
	observer      Observer
	tracing       bool
	rate          *float64
	rateUnbounded bool
	mode          *Mode

	// legacy surface, consumed by New
	withReplacement *bool
	revive          *bool
}

func newOptions(opts []Option) *options {
	o := &options{prune: true}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithWeights sets the static sampling weight of each pool member. Weights
// must match the pool length, be non-negative, and carry at least one
// positive entry; they are normalized internally. Default: uniform.
func WithWeights(weights []float64) Option {
	return func(o *options) { o.weights = weights }
}

// WithSeed seeds the pseudorandom source, making the output item order
// reproducible for fixed sub-stream contents.
func WithSeed(seed int64) Option {
	return func(o *options) { o.randomState = seed }
}

// WithRNG supplies a pre-constructed generator.
func WithRNG(r *rand.Rand) Option {
	return func(o *options) { o.randomState = r }
}

// WithRandomState accepts the loose random-state forms: nil (time-seeded),
// an integer seed, or a *rand.Rand. Any other value is a configuration
// error at construction.
func WithRandomState(state any) Option {
	return func(o *options) { o.randomState = state }
}

// WithPruneEmptyStreams controls whether streams observed to produce no
// data are permanently disabled. Enabled by default; disabling it can cause
// infinite looping when truly empty streams are revived or restarted.
func WithPruneEmptyStreams(prune bool) Option {
	return func(o *options) { o.prune = prune }
}

// WithRate sets the Poisson rate governing per-stream sample budgets.
// Applies to the poisson variant and the legacy surface. Default 256.
func WithRate(rate float64) Option {
	return func(o *options) {
		o.rate = &rate
		o.rateUnbounded = false
	}
}

// WithUnboundedRate disables sample budgeting: every activated stream runs
// until natural exhaustion.
func WithUnboundedRate() Option {
	return func(o *options) {
		o.rate = nil
		o.rateUnbounded = true
	}
}

// WithMode selects the variant mode. Valid values depend on the variant:
// poisson accepts all three modes, chain accepts ModeExhaustive and
// ModeWithReplacement.
func WithMode(mode Mode) Option {
	return func(o *options) { o.mode = &mode }
}

// WithReplacement is part of the pre-policy-split surface consumed by New.
func WithReplacement(withReplacement bool) Option {
	return func(o *options) { o.withReplacement = &withReplacement }
}

// WithRevive is part of the pre-policy-split surface consumed by New.
func WithRevive(revive bool) Option {
	return func(o *options) { o.revive = &revive }
}

// WithLogger sets a custom zap logger. Default: no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithObserver registers a lifecycle observer, e.g. a Prometheus collector.
func WithObserver(observer Observer) Option {
	return func(o *options) { o.observer = observer }
}

// WithTracing enables an OpenTelemetry span per activation, recorded
// against the globally registered tracer provider.
func WithTracing() Option {
	return func(o *options) { o.tracing = true }
}
