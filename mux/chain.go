// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"github.com/shubhampachori12110095/pescador/streamer"
	"github.com/shubhampachori12110095/pescador/types"
)

// NewChain creates a mux that runs one stream at a time to exhaustion, then
// the next, in pool order. In ModeExhaustive (the default) the chain ends
// after every member has been consumed once; in ModeWithReplacement it
// restarts from the beginning and replays the pool forever.
func NewChain[T any](streamers []streamer.Streamer[T], opts ...Option) (*Mux[T], error) {
	o := newOptions(opts)
	mode := ModeExhaustive
	if o.mode != nil {
		mode = *o.mode
	}
	switch mode {
	case ModeExhaustive, ModeWithReplacement:
	default:
		return nil, types.NewErrorf(types.ErrInvalidMode,
			"%q is not a valid mode for a chain mux", mode)
	}

	pol := &chainPolicy[T]{n: len(streamers), mode: mode}
	return newMux(streamers, 1, pol, o)
}

type chainPolicy[T any] struct {
	n       int
	mode    Mode
	cursor  int
	started bool
}

func (p *chainPolicy[T]) variant() string { return "chain" }

func (p *chainPolicy[T]) reset(a *activation[T]) {
	p.cursor = 0
	p.started = false
}

// nextStreamIndex advances the cursor by one, wrapping modulo the pool
// size, starting at member 0 on first activation. Pruned members are
// skipped.
func (p *chainPolicy[T]) nextStreamIndex(a *activation[T], slot int) (int, bool) {
	for tries := 0; tries < p.n; tries++ {
		if !p.started {
			p.started = true
		} else {
			p.cursor++
			if p.cursor >= p.n {
				p.cursor = 0
			}
		}
		if a.valid[p.cursor] {
			return p.cursor, true
		}
	}
	return 0, false
}

// nextSampleSlot is constant: only one slot exists.
func (p *chainPolicy[T]) nextSampleSlot(a *activation[T]) int { return 0 }

func (p *chainPolicy[T]) sampleBudget() int64 { return 0 }

// onStreamActivated zeroes the member's entry in exhaustive mode, so the
// cursor never revisits it; once all members are consumed the weight norm
// reaches zero and the engine halts. In with-replacement mode the
// distribution is untouched and the cursor wraps indefinitely.
func (p *chainPolicy[T]) onStreamActivated(a *activation[T], poolIdx int) {
	if p.mode == ModeWithReplacement {
		return
	}
	a.distribution[poolIdx] = 0
	if hasMass(a.distribution) {
		normalize(a.distribution)
	}
}

func (p *chainPolicy[T]) onStreamExhausted(a *activation[T], slot int) {}
