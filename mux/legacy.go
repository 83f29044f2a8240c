// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"github.com/shubhampachori12110095/pescador/streamer"
)

// New creates a stochastic mux using the pre-policy-split configuration
// surface: WithReplacement and WithRevive instead of a mode. It is a thin
// mapping onto the poisson variant:
//
//	WithReplacement(true)                     -> ModeWithReplacement
//	WithReplacement(false) + WithRevive(true) -> ModeSingleActive
//	WithReplacement(false)                    -> ModeExhaustive
//
// New code should call NewPoisson with an explicit mode.
func New[T any](streamers []streamer.Streamer[T], k int, opts ...Option) (*Mux[T], error) {
	o := newOptions(opts)

	withReplacement := true
	if o.withReplacement != nil {
		withReplacement = *o.withReplacement
	}
	revive := false
	if o.revive != nil {
		revive = *o.revive
	}

	mode := ModeWithReplacement
	switch {
	case withReplacement:
		mode = ModeWithReplacement
	case revive:
		mode = ModeSingleActive
	default:
		mode = ModeExhaustive
	}
	o.mode = &mode

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
