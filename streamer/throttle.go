// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package streamer

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle decorates a Streamer so that pulls from opened iterators are
// paced by a token-bucket limiter: at most limit items per second with the
// given burst. Useful for pacing data loading against a shared resource.
//
// The context bounds the wait of each pull; cancelling it makes subsequent
// pulls fail with the context error.
func Throttle[T any](ctx context.Context, s Streamer[T], limit rate.Limit, burst int) Streamer[T] {
	return throttleStreamer[T]{
		inner:   s,
		ctx:     ctx,
		limiter: rate.NewLimiter(limit, burst),
	}
}

type throttleStreamer[T any] struct {
	inner   Streamer[T]
	ctx     context.Context
	limiter *rate.Limiter
}

func (t throttleStreamer[T]) Open(limit int64) Iterator[T] {
	return &throttleIterator[T]{
		inner:   t.inner.Open(limit),
		ctx:     t.ctx,
		limiter: t.limiter,
	}
}

type throttleIterator[T any] struct {
	inner   Iterator[T]
	ctx     context.Context
	limiter *rate.Limiter
}

func (it *throttleIterator[T]) Next() (T, error) {
	var zero T
	if err := it.limiter.Wait(it.ctx); err != nil {
		return zero, err
	}
	return it.inner.Next()
}

func (it *throttleIterator[T]) Close() error { return it.inner.Close() }
