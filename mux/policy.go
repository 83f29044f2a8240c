// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

// policy is the set of decisions that differentiate the mux variants.
// One implementation exists per variant; the shared engine consults it at
// every fill, pull, and exhaustion. Policies mutate activation state only
// through the engine-provided *activation and hold no per-activation state
// outside reset.
type policy[T any] interface {
	// variant names the policy for logs, metrics, and traces.
	variant() string

	// reset clears per-activation policy state (cursors). Called once at
	// the start of every activation, before any slot is filled.
	reset(a *activation[T])

	// nextStreamIndex chooses the pool member to bind to the given slot.
	// Returns false when no member can be bound, in which case the engine
	// retires the slot.
	nextStreamIndex(a *activation[T], slot int) (int, bool)

	// nextSampleSlot chooses the active slot to pull the next item from.
	// The engine guarantees the weight-normalization scalar is positive.
	nextSampleSlot(a *activation[T]) int

	// sampleBudget returns the maximum number of items a freshly opened
	// stream may yield, or 0 for unbounded.
	sampleBudget() int64

	// onStreamActivated applies the variant's distribution side effect
	// after the member has been bound and opened (e.g. zeroing the member
	// so it cannot be chosen again while active).
	onStreamActivated(a *activation[T], poolIdx int)

	// onStreamExhausted reacts to a slot's stream ending, after pruning
	// has been applied and before the slot is refilled (e.g. reviving the
	// member for reselection).
	onStreamExhausted(a *activation[T], slot int)
}
