// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

// Package pescador provides a top-level convenience entry point for stream
// multiplexing with minimal boilerplate.
//
// Usage:
//
//	import "github.com/shubhampachori12110095/pescador"
//
//	pool := []pescador.Streamer[string]{
//		pescador.FromSlice([]string{"a", "b", "c"}),
//		pescador.FromSlice([]string{"d", "e", "f"}),
//	}
//	m, err := pescador.NewPoisson(pool, 2, pescador.WithSeed(42))
//	items, err := pescador.Drain(m.Iterate(100))
//
// This is a thin wrapper around the mux and streamer packages; both produce
// identical results. Use this package when you prefer the shorter import
// path.
package pescador

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/shubhampachori12110095/pescador/internal/metrics"
	"github.com/shubhampachori12110095/pescador/mux"
	"github.com/shubhampachori12110095/pescador/streamer"
)

// Streamer is a restartable producer of items. See [streamer.Streamer].
type Streamer[T any] = streamer.Streamer[T]

// Iterator is a pull-based sequence of items. See [streamer.Iterator].
type Iterator[T any] = streamer.Iterator[T]

// Mux multiplexes a pool of streamers. See [mux.Mux].
type Mux[T any] = mux.Mux[T]

// Mode selects how a stochastic mux treats pool members.
type Mode = mux.Mode

// Option configures a mux at construction.
type Option = mux.Option

// Modes of the poisson and chain variants.
const (
	ModeWithReplacement = mux.ModeWithReplacement
	ModeSingleActive    = mux.ModeSingleActive
	ModeExhaustive      = mux.ModeExhaustive
)

// ErrExhausted signals the end of a stream.
var ErrExhausted = streamer.ErrExhausted

// NewPoisson creates a stochastic mux. See [mux.NewPoisson].
func NewPoisson[T any](pool []Streamer[T], k int, opts ...Option) (*Mux[T], error) {
	return mux.NewPoisson(pool, k, opts...)
}

// NewShuffled creates an equal-opportunity mux. See [mux.NewShuffled].
func NewShuffled[T any](pool []Streamer[T], opts ...Option) (*Mux[T], error) {
	return mux.NewShuffled(pool, opts...)
}

// NewRoundRobin creates a strict-rotation mux. See [mux.NewRoundRobin].
func NewRoundRobin[T any](pool []Streamer[T], opts ...Option) (*Mux[T], error) {
	return mux.NewRoundRobin(pool, opts...)
}

// NewChain creates a sequential mux. See [mux.NewChain].
func NewChain[T any](pool []Streamer[T], opts ...Option) (*Mux[T], error) {
	return mux.NewChain(pool, opts...)
}

// FromSlice returns a Streamer replaying the given items on every open.
func FromSlice[T any](items []T) Streamer[T] {
	return streamer.FromSlice(items)
}

// FromFactory returns a Streamer backed by an arbitrary generator.
func FromFactory[T any](factory func() Iterator[T]) Streamer[T] {
	return streamer.FromFactory(factory)
}

// Drain collects an iterator to a slice, closing it on every exit path.
func Drain[T any](it Iterator[T]) ([]T, error) {
	return streamer.Drain(it)
}

// Re-export the common options so callers never need to import mux/.

// WithSeed seeds the pseudorandom source for reproducible runs.
var WithSeed = mux.WithSeed

// WithWeights sets the static per-member sampling weights.
var WithWeights = mux.WithWeights

// WithMode selects the variant mode.
var WithMode = mux.WithMode

// WithRate sets the Poisson sample-budget rate.
var WithRate = mux.WithRate

// WithUnboundedRate disables sample budgeting.
var WithUnboundedRate = mux.WithUnboundedRate

// WithPruneEmptyStreams controls pruning of streams that produce no data.
var WithPruneEmptyStreams = mux.WithPruneEmptyStreams

// WithLogger sets a custom zap logger.
var WithLogger = mux.WithLogger

// WithObserver registers a lifecycle observer.
var WithObserver = mux.WithObserver

// WithTracing enables OpenTelemetry spans per activation.
var WithTracing = mux.WithTracing

// NewMetricsObserver returns a mux lifecycle observer that records
// Prometheus metrics under the given namespace.
func NewMetricsObserver(namespace string, reg prometheus.Registerer, logger *zap.Logger) mux.Observer {
	return metrics.NewCollector(namespace, reg, logger)
}
