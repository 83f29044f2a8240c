// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

/*
Package mux implements stream multiplexing: a Mux wraps a pool of streamers
and at every pull yields one item from one of its active sub-streams,
replacing exhausted streams according to a pluggable selection policy.

# Variants

  - NewPoisson: stochastic multiplexing with k active slots, weighted-random
    slot selection, and Poisson-distributed per-stream sample budgets, in
    three modes (ModeWithReplacement, ModeSingleActive, ModeExhaustive)
  - NewShuffled: every pool member active exactly once at all times, equal
    opportunity interleaving (a fixed specialization of Poisson)
  - NewRoundRobin: strict rotation over all pool members in fixed order
  - NewChain: one stream at a time, run to exhaustion, then the next
  - New: the pre-2.0 multiplexer surface, mapped onto the Poisson modes
    via WithReplacement and WithRevive

# Engine

All variants share one engine. An activation owns a probability
distribution over the pool, a validity mask, and k active slots; the
variant decides which pool member fills a free slot, which slot the next
item is pulled from, how many items a fresh stream may yield, and how the
distribution reacts to activation and exhaustion of a stream. Streamers
observed to produce zero items are pruned permanently when pruning is
enabled (the default).

Iterate returns an iterator that owns the activation: the per-activation
state is created on the first pull and released when the iterator is
closed, exhausts naturally, or reaches its item budget: teardown runs on
every exit path. A Mux is itself a streamer.Streamer, so muxes can be
nested as pool members of other muxes.

Given a fixed seed (WithSeed) and fixed sub-stream contents, the output
item order is fully deterministic.
*/
package mux
