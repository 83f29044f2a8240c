// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

package mux

import (
	"strings"
	"sync"

	"github.com/shubhampachori12110095/pescador/streamer"
)

// chars returns a streamer yielding the characters of s, one per item.
func chars(s string) streamer.Streamer[string] {
	items := make([]string, 0, len(s))
	for _, r := range s {
		items = append(items, string(r))
	}
	return streamer.FromSlice(items)
}

func charPool(words ...string) []streamer.Streamer[string] {
	pool := make([]streamer.Streamer[string], len(words))
	for i, w := range words {
		pool[i] = chars(w)
	}
	return pool
}

func join(items []string) string {
	return strings.Join(items, "")
}

// countingStreamer wraps a streamer and counts how many times it is opened.
type countingStreamer[T any] struct {
	inner streamer.Streamer[T]
	mu    sync.Mutex
	opens int
}

func newCounting[T any](inner streamer.Streamer[T]) *countingStreamer[T] {
	return &countingStreamer[T]{inner: inner}
}

func (c *countingStreamer[T]) Open(limit int64) streamer.Iterator[T] {
	c.mu.Lock()
	c.opens++
	c.mu.Unlock()
	return c.inner.Open(limit)
}

func (c *countingStreamer[T]) Opens() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens
}

// trackingStreamer records every iterator it opens so tests can assert that
// each one was closed.
type trackingStreamer[T any] struct {
	inner  streamer.Streamer[T]
	opened []*trackedIterator[T]
}

func newTracking[T any](inner streamer.Streamer[T]) *trackingStreamer[T] {
	return &trackingStreamer[T]{inner: inner}
}

func (s *trackingStreamer[T]) Open(limit int64) streamer.Iterator[T] {
	it := &trackedIterator[T]{inner: s.inner.Open(limit)}
	s.opened = append(s.opened, it)
	return it
}

func (s *trackingStreamer[T]) allClosed() bool {
	for _, it := range s.opened {
		if !it.closed {
			return false
		}
	}
	return true
}

type trackedIterator[T any] struct {
	inner  streamer.Iterator[T]
	closed bool
}

func (it *trackedIterator[T]) Next() (T, error) { return it.inner.Next() }

func (it *trackedIterator[T]) Close() error {
	it.closed = true
	return it.inner.Close()
}

func sumOf(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}
