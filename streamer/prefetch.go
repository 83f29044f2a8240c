// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package streamer

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Prefetch decorates a Streamer so that opened iterators pull ahead of the
// consumer on a background goroutine, buffering up to depth items. Item
// order is exactly the order of the underlying iterator, so a prefetched
// stream is observationally identical to a synchronous one.
//
// Close cancels the background pull and releases the underlying iterator.
func Prefetch[T any](s Streamer[T], depth int) Streamer[T] {
	if depth < 1 {
		depth = 1
	}
	return prefetchStreamer[T]{inner: s, depth: depth}
}

type prefetchStreamer[T any] struct {
	inner Streamer[T]
	depth int
}

func (p prefetchStreamer[T]) Open(limit int64) Iterator[T] {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	inner := p.inner.Open(limit)
	ch := make(chan prefetched[T], p.depth)

	g.Go(func() error {
		defer close(ch)
		defer inner.Close()
		for {
			item, err := inner.Next()
			select {
			case ch <- prefetched[T]{item: item, err: err}:
			case <-ctx.Done():
				return nil
			}
			if err != nil {
				// Exhaustion and pull errors both end the producer;
				// the consumer sees the error from the channel.
				return nil
			}
		}
	})

	return &prefetchIterator[T]{ch: ch, cancel: cancel, wait: g.Wait}
}

type prefetched[T any] struct {
	item T
	err  error
}

type prefetchIterator[T any] struct {
	ch     <-chan prefetched[T]
	cancel context.CancelFunc
	wait   func() error
	done   bool
}

func (it *prefetchIterator[T]) Next() (T, error) {
	var zero T
	if it.done {
		return zero, ErrExhausted
	}
	next, ok := <-it.ch
	if !ok {
		it.done = true
		return zero, ErrExhausted
	}
	if next.err != nil {
		if errors.Is(next.err, ErrExhausted) {
			it.done = true
		}
		return zero, next.err
	}
	return next.item, nil
}

func (it *prefetchIterator[T]) Close() error {
	it.done = true
	it.cancel()
	return it.wait()
}
