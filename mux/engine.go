// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shubhampachori12110095/pescador/internal/sampler"
	"github.com/shubhampachori12110095/pescador/internal/telemetry"
	"github.com/shubhampachori12110095/pescador/streamer"
	"github.com/shubhampachori12110095/pescador/types"
)

// Mux multiplexes a pool of streamers into a single output stream. The Mux
// value itself is immutable after construction and reusable: every call to
// Iterate (or Open) starts a fresh activation with its own state.
type Mux[T any] struct {
	streamers []streamer.Streamer[T]
	weights   []float64 // static weights, normalized to sum 1
	k         int
	prune     bool
	rng       *sampler.RNG
	pol       policy[T]
	logger    *zap.Logger
	observer  Observer
	tracing   bool
}

// Observer receives multiplexer lifecycle events. Implementations must be
// cheap; the engine calls SampleDrawn once per emitted item.
type Observer interface {
	ActivationStarted(variant, id string, slots int)
	ActivationEnded(variant, id string, items int64)
	SampleDrawn(variant string)
	StreamExhausted(variant string)
	StreamPruned(variant string)
}

// activation is the per-activation state block owned by the engine: the
// probability distribution over the pool, the validity mask, and the k
// active slots. Policies read and write it through the engine only.
type activation[T any] struct {
	id            string
	distribution  []float64
	valid         []bool
	streams       []streamer.Iterator[T]
	streamIdx     []int
	streamWeights []float64
	streamCounts  []int64
	weightNorm    float64
}

// newMux validates the shared configuration and builds the engine.
func newMux[T any](streamers []streamer.Streamer[T], k int, pol policy[T], o *options) (*Mux[T], error) {
	n := len(streamers)
	if n == 0 {
		return nil, types.NewError(types.ErrEmptyPool, "cannot mux an empty collection")
	}
	if k < 1 {
		return nil, types.NewErrorf(types.ErrInvalidSlotCount, "k must be >= 1, got %d", k)
	}

	weights := o.weights
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1.0 / float64(n)
		}
	}
	if len(weights) != n {
		return nil, types.NewErrorf(types.ErrWeightLength,
			"weights must be the same length as streamers: %d != %d", len(weights), n)
	}
	var sum float64
	anyPositive := false
	for _, w := range weights {
		if w < 0 {
			return nil, types.NewErrorf(types.ErrNegativeWeight, "weights must be >= 0, got %v", w)
		}
		if w > 0 {
			anyPositive = true
		}
		sum += w
	}
	if !anyPositive {
		return nil, types.NewError(types.ErrNoPositiveWeight,
			"weights must contain at least one positive value")
	}
	normalized := make([]float64, n)
	for i, w := range weights {
		normalized[i] = w / sum
	}

	rng, err := sampler.Resolve(o.randomState)
	if err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Mux[T]{
		streamers: streamers,
		weights:   normalized,
		k:         k,
		prune:     o.prune,
		rng:       rng,
		pol:       pol,
		logger: logger.With(
			zap.String("component", "mux"),
			zap.String("variant", pol.variant()),
		),
		observer: o.observer,
		tracing:  o.tracing,
	}, nil
}

// Variant returns the name of the selection policy driving this mux.
func (m *Mux[T]) Variant() string { return m.pol.variant() }

// Iterate returns an iterator over the multiplexed output. maxItems <= 0
// iterates without an item budget. The iterator owns the activation:
// per-activation state is built on the first pull and torn down when the
// iterator is closed or exhausts.
func (m *Mux[T]) Iterate(maxItems int64) *Iterator[T] {
	return m.IterateContext(context.Background(), maxItems)
}

// IterateContext is Iterate with a caller-supplied context used for trace
// propagation when tracing is enabled.
func (m *Mux[T]) IterateContext(ctx context.Context, maxItems int64) *Iterator[T] {
	return &Iterator[T]{m: m, ctx: ctx, max: maxItems}
}

// Open implements streamer.Streamer, so a Mux can itself be a pool member
// of another mux.
func (m *Mux[T]) Open(limit int64) streamer.Iterator[T] {
	return m.Iterate(limit)
}

// activate builds the per-activation state: uniform distribution, all-true
// validity mask, and k slots filled in order by the policy. Filling stops
// early once the distribution has no positive mass left.
func (m *Mux[T]) activate(ctx context.Context) (*activation[T], context.Context) {
	n := len(m.streamers)
	a := &activation[T]{
		id:            uuid.NewString(),
		distribution:  make([]float64, n),
		valid:         make([]bool, n),
		streams:       make([]streamer.Iterator[T], m.k),
		streamIdx:     make([]int, m.k),
		streamWeights: make([]float64, m.k),
		streamCounts:  make([]int64, m.k),
	}
	for i := range a.distribution {
		a.distribution[i] = 1.0 / float64(n)
		a.valid[i] = true
	}
	m.pol.reset(a)

	filled := 0
	for slot := 0; slot < m.k; slot++ {
		if !hasMass(a.distribution) {
			break
		}
		if !m.fillSlot(a, slot) {
			break
		}
		filled++
	}
	a.weightNorm = vectorSum(a.streamWeights)

	if m.tracing {
		ctx = telemetry.StartActivation(ctx, m.pol.variant(), a.id, m.k)
	}
	if m.observer != nil {
		m.observer.ActivationStarted(m.pol.variant(), a.id, filled)
	}
	m.logger.Debug("mux activated",
		zap.String("activation_id", a.id),
		zap.Int("slots_filled", filled),
		zap.Float64("weight_norm", a.weightNorm),
	)
	return a, ctx
}

// fillSlot binds a pool member to the slot, opens its stream with the
// policy's sample budget, and applies the activation side effect. Returns
// false when the policy has no member to bind.
func (m *Mux[T]) fillSlot(a *activation[T], slot int) bool {
	idx, ok := m.pol.nextStreamIndex(a, slot)
	if !ok {
		return false
	}
	a.streamIdx[slot] = idx
	a.streams[slot] = m.streamers[idx].Open(m.pol.sampleBudget())
	a.streamWeights[slot] = m.weights[idx]
	a.streamCounts[slot] = 0
	m.pol.onStreamActivated(a, idx)
	return true
}

// handleExhausted runs the exhaustion transition for a slot: prune the
// member if it never produced an item, let the policy react, then refill
// the slot or retire it permanently.
func (m *Mux[T]) handleExhausted(ctx context.Context, a *activation[T], slot int) {
	poolIdx := a.streamIdx[slot]
	_ = a.streams[slot].Close()
	a.streams[slot] = nil

	if m.prune && a.streamCounts[slot] == 0 {
		a.distribution[poolIdx] = 0
		a.valid[poolIdx] = false
		if m.observer != nil {
			m.observer.StreamPruned(m.pol.variant())
		}
		if m.tracing {
			telemetry.StreamPruned(ctx, poolIdx)
		}
		m.logger.Debug("empty stream pruned",
			zap.String("activation_id", a.id),
			zap.Int("stream", poolIdx),
		)
	}

	m.pol.onStreamExhausted(a, slot)

	if hasMass(a.distribution) {
		normalize(a.distribution)
		if !m.fillSlot(a, slot) {
			a.streamWeights[slot] = 0
		}
	} else {
		a.streamWeights[slot] = 0
	}
	a.weightNorm = vectorSum(a.streamWeights)

	if m.observer != nil {
		m.observer.StreamExhausted(m.pol.variant())
	}
}

// Iterator is the multiplexed output sequence. It implements
// streamer.Iterator and owns the activation for its lifetime: Close (or
// natural exhaustion) releases every still-open sub-stream.
type Iterator[T any] struct {
	m    *Mux[T]
	ctx  context.Context
	max  int64
	n    int64
	act  *activation[T]
	done bool
}

// Next returns the next multiplexed item. It returns streamer.ErrExhausted
// once the item budget is reached or no stream has positive weight left.
// A pull error from a sub-stream propagates immediately without mutating
// multiplexer state; the iterator remains usable afterwards.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.done {
		return zero, streamer.ErrExhausted
	}
	if it.act == nil {
		it.act, it.ctx = it.m.activate(it.ctx)
	}

	for {
		if it.max > 0 && it.n >= it.max {
			it.stop()
			return zero, streamer.ErrExhausted
		}
		if it.act.weightNorm <= 0 {
			it.stop()
			return zero, streamer.ErrExhausted
		}

		slot := it.m.pol.nextSampleSlot(it.act)
		s := it.act.streams[slot]
		if s == nil {
			// Retired slot; only reachable for cursor-based policies.
			if !anyTrue(it.act.valid) {
				it.stop()
				return zero, streamer.ErrExhausted
			}
			continue
		}

		item, err := s.Next()
		if err == nil {
			it.n++
			it.act.streamCounts[slot]++
			if it.m.observer != nil {
				it.m.observer.SampleDrawn(it.m.pol.variant())
			}
			return item, nil
		}
		if !errors.Is(err, streamer.ErrExhausted) {
			return zero, err
		}

		it.m.handleExhausted(it.ctx, it.act, slot)

		if !anyTrue(it.act.valid) {
			it.stop()
			return zero, streamer.ErrExhausted
		}
	}
}

// Close deactivates the mux, releasing every still-open sub-stream. Safe to
// call at any point and more than once.
func (it *Iterator[T]) Close() error {
	if !it.done {
		it.stop()
	}
	return nil
}

func (it *Iterator[T]) stop() {
	it.done = true
	if it.act == nil {
		return
	}
	for _, s := range it.act.streams {
		if s != nil {
			_ = s.Close()
		}
	}
	if it.m.observer != nil {
		it.m.observer.ActivationEnded(it.m.pol.variant(), it.act.id, it.n)
	}
	if it.m.tracing {
		telemetry.EndActivation(it.ctx, it.n)
	}
	it.m.logger.Debug("mux deactivated",
		zap.String("activation_id", it.act.id),
		zap.Int64("items", it.n),
	)
	it.act = nil
}

func hasMass(v []float64) bool {
	for _, x := range v {
		if x > 0 {
			return true
		}
	}
	return false
}

func vectorSum(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum
}

func normalize(v []float64) {
	sum := vectorSum(v)
	if sum <= 0 {
		return
	}
	for i := range v {
		v[i] /= sum
	}
}

func anyTrue(v []bool) bool {
	for _, b := range v {
		if b {
			return true
		}
	}
	return false
}

func maxPositive(v []float64) float64 {
	var m float64
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}
