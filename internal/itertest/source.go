// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package itertest

import (
	"fmt"
	"io"
	"iter"
)

// Source is an instrumented single-pass source over a fixed list of items. It
// counts the pulls made against it and, if Log is set, logs each of them.
type Source[T any] struct {
	items []T
	pos   int
	// Pulls is the number of calls to Next.
	Pulls int
	// PastEnd is the number of calls to Next made after Next first returned
	// false.
	PastEnd int
	Log     io.Writer
}

// NewSource returns a Source that yields items in order.
func NewSource[T any](log io.Writer, items ...T) *Source[T] {
	return &Source[T]{items: items, Log: log}
}

// Next returns the next item, or false once all items have been returned.
func (s *Source[T]) Next() (T, bool) {
	s.Pulls++
	if s.pos >= len(s.items) {
		if s.pos > len(s.items) {
			s.PastEnd++
		}
		s.pos = len(s.items) + 1
		s.logf("pull -> EOF\n")
		var zero T
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	s.logf("pull -> %v\n", item)
	return item, true
}

// Seq returns the source as a push sequence. Items are counted and logged as
// they are yielded.
func (s *Source[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := s.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Remaining returns the number of items that have not been pulled.
func (s *Source[T]) Remaining() int {
	return max(len(s.items)-s.pos, 0)
}

func (s *Source[T]) logf(format string, args ...interface{}) {
	if s.Log != nil {
		fmt.Fprintf(s.Log, format, args...)
	}
}

// Counter is an infinite source yielding 0, 1, 2, ...
type Counter struct {
	n int
	// Pulls is the number of calls to Next.
	Pulls int
}

// Next returns the next integer.
func (c *Counter) Next() (int, bool) {
	c.Pulls++
	v := c.n
	c.n++
	return v, true
}
