// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package streamer

import (
	"errors"
)

// ErrExhausted signals the end of a stream. It is a sentinel, not a failure:
// callers distinguish it from pull errors with errors.Is.
var ErrExhausted = errors.New("streamer: exhausted")

// Iterator is a pull-based sequence of items. After the sequence ends, Next
// returns ErrExhausted on every call. Close releases any resources held by
// the iterator; it is safe to call more than once.
type Iterator[T any] interface {
	Next() (T, error)
	Close() error
}

// Streamer is a restartable producer of items. Open returns a fresh,
// independent iterator each time it is called; the same streamer may be
// opened many times over its life, including concurrently from the caller's
// point of view (each iterator is still pulled by a single goroutine).
//
// If limit > 0 the returned iterator yields at most limit items before
// reporting exhaustion, regardless of the producer's natural length.
// limit <= 0 means unbounded.
type Streamer[T any] interface {
	Open(limit int64) Iterator[T]
}

// FromSlice returns a Streamer that replays the given items in order on
// every open. The slice is not copied; callers must not mutate it.
func FromSlice[T any](items []T) Streamer[T] {
	return sliceStreamer[T](items)
}

type sliceStreamer[T any] []T

func (s sliceStreamer[T]) Open(limit int64) Iterator[T] {
	return Bound[T](&sliceIterator[T]{items: s}, limit)
}

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) Next() (T, error) {
	var zero T
	if it.pos >= len(it.items) {
		return zero, ErrExhausted
	}
	item := it.items[it.pos]
	it.pos++
	return item, nil
}

func (it *sliceIterator[T]) Close() error { return nil }

// FromFactory returns a Streamer backed by an arbitrary generator: each open
// invokes the factory for a fresh iterator. The factory must return
// independent iterators on every call.
func FromFactory[T any](factory func() Iterator[T]) Streamer[T] {
	return factoryStreamer[T](factory)
}

type factoryStreamer[T any] func() Iterator[T]

func (f factoryStreamer[T]) Open(limit int64) Iterator[T] {
	return Bound(f(), limit)
}

// FromNextFunc returns a Streamer whose iterators are generated by a next
// function: each open invokes the factory, and the returned function is
// called once per pull until it reports ErrExhausted.
func FromNextFunc[T any](factory func() func() (T, error)) Streamer[T] {
	return FromFactory(func() Iterator[T] {
		return nextFuncIterator[T]{next: factory()}
	})
}

type nextFuncIterator[T any] struct {
	next func() (T, error)
}

func (it nextFuncIterator[T]) Next() (T, error) { return it.next() }
func (it nextFuncIterator[T]) Close() error     { return nil }

// Empty returns a Streamer that produces no items.
func Empty[T any]() Streamer[T] {
	return FromSlice[T](nil)
}

// Bound wraps an iterator so that it yields at most limit items.
// limit <= 0 returns the iterator unchanged.
func Bound[T any](it Iterator[T], limit int64) Iterator[T] {
	if limit <= 0 {
		return it
	}
	return &boundIterator[T]{inner: it, remaining: limit}
}

type boundIterator[T any] struct {
	inner     Iterator[T]
	remaining int64
}

func (it *boundIterator[T]) Next() (T, error) {
	var zero T
	if it.remaining <= 0 {
		return zero, ErrExhausted
	}
	item, err := it.inner.Next()
	if err != nil {
		return zero, err
	}
	it.remaining--
	return item, nil
}

func (it *boundIterator[T]) Close() error { return it.inner.Close() }

// Drain pulls an iterator to exhaustion and returns the collected items,
// closing it on every exit path. A pull error is returned alongside the
// items collected so far.
func Drain[T any](it Iterator[T]) ([]T, error) {
	defer it.Close()

	var items []T
	for {
		item, err := it.Next()
		if errors.Is(err, ErrExhausted) {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
}
