// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"github.com/shubhampachori12110095/pescador/internal/sampler"
	"github.com/shubhampachori12110095/pescador/streamer"
	"github.com/shubhampachori12110095/pescador/types"
)

// Mode selects how a stochastic mux treats pool members across activations.
type Mode string

const (
	// ModeWithReplacement samples members with replacement: one member may
	// be active in several slots simultaneously.
	ModeWithReplacement Mode = "with_replacement"

	// ModeSingleActive keeps each member active in at most one slot at a
	// time; exhausted members are revived for reselection.
	ModeSingleActive Mode = "single_active"

	// ModeExhaustive consumes each member at most once and never revisits
	// it.
	ModeExhaustive Mode = "exhaustive"
)

// DefaultRate is the default Poisson rate governing per-stream sample
// budgets.
const DefaultRate = 256.0

// NewPoisson creates a stochastic mux: k streams are held active at a time,
// each item is drawn from a weighted-random active slot, and every freshly
// activated stream receives a sample budget of 1 + Poisson(rate) items
// (unbounded when the rate is disabled via WithUnboundedRate).
func NewPoisson[T any](streamers []streamer.Streamer[T], k int, opts ...Option) (*Mux[T], error) {
	o := newOptions(opts)
	mode := ModeWithReplacement
	if o.mode != nil {
		mode = *o.mode
	}
	switch mode {
	case ModeWithReplacement, ModeSingleActive, ModeExhaustive:
	default:
		return nil, types.NewErrorf(types.ErrInvalidMode,
			"%q is not a valid mode for a poisson mux", mode)
	}

	rate, err := resolveRate(o)
	if err != nil {
		return nil, err
	}

	pol := &poissonPolicy[T]{name: "poisson", mode: mode, rate: rate}
	m, err := newMux(streamers, k, pol, o)
	if err != nil {
		return nil, err
	}
	pol.rng = m.rng
	return m, nil
}

func resolveRate(o *options) (*float64, error) {
	rate := new(float64)
	*rate = DefaultRate
	if o.rateUnbounded {
		return nil, nil
	}
	if o.rate != nil {
		if *o.rate <= 0 {
			return nil, types.NewErrorf(types.ErrInvalidRate,
				"rate must be > 0, got %v", *o.rate)
		}
		*rate = *o.rate
	}
	return rate, nil
}

// poissonPolicy implements the stochastic selection decisions shared by the
// poisson and shuffled variants.
type poissonPolicy[T any] struct {
	name string
	mode Mode
	rate *float64 // nil = unbounded sample budget
	rng  *sampler.RNG
}

func (p *poissonPolicy[T]) variant() string { return p.name }

func (p *poissonPolicy[T]) reset(a *activation[T]) {}

// nextStreamIndex draws a member from the current pool distribution.
func (p *poissonPolicy[T]) nextStreamIndex(a *activation[T], slot int) (int, bool) {
	idx, err := p.rng.Choice(a.distribution)
	if err != nil {
		return 0, false
	}
	return idx, true
}

// nextSampleSlot draws an active slot proportionally to the slot weights.
func (p *poissonPolicy[T]) nextSampleSlot(a *activation[T]) int {
	// The engine guarantees weightNorm > 0, so Choice cannot fail here.
	idx, _ := p.rng.Choice(a.streamWeights)
	return idx
}

func (p *poissonPolicy[T]) sampleBudget() int64 {
	if p.rate == nil {
		return 0
	}
	return 1 + p.rng.Poisson(*p.rate)
}

// onStreamActivated zeroes the member's distribution entry outside
// with-replacement mode, so it cannot be chosen again while active (or, in
// exhaustive mode, ever again unless revived).
func (p *poissonPolicy[T]) onStreamActivated(a *activation[T], poolIdx int) {
	if p.mode == ModeWithReplacement {
		return
	}
	a.distribution[poolIdx] = 0
	if hasMass(a.distribution) {
		normalize(a.distribution)
	}
}

// onStreamExhausted revives the member in single-active mode: its entry is
// restored to the current maximum positive value (or 1 if none remain) so
// it becomes eligible for reselection. Pruned members stay dead.
func (p *poissonPolicy[T]) onStreamExhausted(a *activation[T], slot int) {
	if p.mode != ModeSingleActive {
		return
	}
	poolIdx := a.streamIdx[slot]
	if !a.valid[poolIdx] {
		return
	}
	if hasMass(a.distribution) {
		a.distribution[poolIdx] = maxPositive(a.distribution)
	} else {
		a.distribution[poolIdx] = 1.0
	}
}
