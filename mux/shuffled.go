// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"github.com/shubhampachori12110095/pescador/streamer"
)

// NewShuffled creates a mux that keeps every pool member active exactly
// once at all times (subject to pruning), sampling from them in proportion
// to their weights. It is a fixed specialization of the poisson variant:
// k = pool size, unbounded sample budget, single-active mode, with each
// member revived immediately upon exhaustion.
func NewShuffled[T any](streamers []streamer.Streamer[T], opts ...Option) (*Mux[T], error) {
	o := newOptions(opts)

	// Sample budgets stay unbounded here regardless of WithRate: a member's
	// stream runs until natural exhaustion and is then revived.
	pol := &poissonPolicy[T]{name: "shuffled", mode: ModeSingleActive}
	m, err := newMux(streamers, len(streamers), pol, o)
	if err != nil {
		return nil, err
	}
	pol.rng = m.rng
	return m, nil
}
