// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"github.com/shubhampachori12110095/pescador/streamer"
)

// NewRoundRobin creates a mux that iterates over all pool members in strict
// order, one item from each in turn, regardless of their weights. Slot i is
// permanently bound to pool member i; an exhausted member is immediately
// reopened in its own slot unless it has been pruned, in which case the
// slot retires.
func NewRoundRobin[T any](streamers []streamer.Streamer[T], opts ...Option) (*Mux[T], error) {
	o := newOptions(opts)
	pol := &roundRobinPolicy[T]{k: len(streamers)}
	return newMux(streamers, len(streamers), pol, o)
}

type roundRobinPolicy[T any] struct {
	k      int
	cursor int
}

func (p *roundRobinPolicy[T]) variant() string { return "round_robin" }

func (p *roundRobinPolicy[T]) reset(a *activation[T]) { p.cursor = 0 }

// nextStreamIndex binds slot i to pool member i, permanently. A pruned
// member is never rebound; its slot retires instead.
func (p *roundRobinPolicy[T]) nextStreamIndex(a *activation[T], slot int) (int, bool) {
	return slot, a.valid[slot]
}

// nextSampleSlot rotates a single cursor over the slots, wrapping on every
// call. Weights play no part in the order.
func (p *roundRobinPolicy[T]) nextSampleSlot(a *activation[T]) int {
	idx := p.cursor
	p.cursor++
	if p.cursor >= p.k {
		p.cursor = 0
	}
	return idx
}

func (p *roundRobinPolicy[T]) sampleBudget() int64 { return 0 }

func (p *roundRobinPolicy[T]) onStreamActivated(a *activation[T], poolIdx int) {}

func (p *roundRobinPolicy[T]) onStreamExhausted(a *activation[T], slot int) {}
