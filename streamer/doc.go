// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

/*
Package streamer defines the producer side of the pescador pipeline: a
Streamer is a restartable, lazily-evaluated source of items that a
multiplexer can open, pull from, and reopen any number of times.

# Core interfaces

  - Streamer[T]: a restartable producer whose Open returns a fresh,
    independent iterator, optionally bounded to a fixed item count
  - Iterator[T]: a pull-based sequence whose Next yields the next item or
    ErrExhausted once the sequence ends

# Main capabilities

  - FromSlice / FromFactory / Empty: minimal Streamer implementations
  - Drain: collect an iterator to a slice, closing it on every exit path
  - Prefetch: decorator that pulls ahead on a background goroutine while
    preserving item order
  - Throttle: decorator that paces pulls with a token-bucket rate limit

Exhaustion is a signal, not a failure: iterators report end-of-stream with
ErrExhausted (match with errors.Is), while any other error from Next is a
genuine pull failure and propagates to the caller.
*/
package streamer
