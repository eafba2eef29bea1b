// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package spans splits a sequence into contiguous spans.
//
// Two consecutive items belong to the same span iff an adjacency predicate
// returns true for their keys:
//
//	s := spans.ByKey(slices.Values([]int{1, 2, 5, 6, 7, 11, 13, 14, 15}),
//		spans.Identity[int], spans.Consecutive[int])
//	defer s.Close()
//	for span := range s.All() {
//		fmt.Println("span =", span.Collect())
//	}
//
// prints
//
//	span = [1 2]
//	span = [5 6 7]
//	span = [11]
//	span = [13 14 15]
//
// Splitting is lazy: no item is pulled from the source until a consumer asks
// for it, and at most one item (the first item of the next span) is held by
// the Splitter at any time.
//
// The adjacency predicate is only ever applied to consecutive items. Spans
// are therefore formed greedily: items in the same span are not necessarily
// related to each other, only to their immediate predecessor.
package spans

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/spans/internal/invariants"
)

// A Splitter wraps a source sequence and provides progressive access to its
// contiguous spans. See ByKey.
//
// A Splitter owns all of the iteration state, including the item that ended
// the previous span. Spans returned by Next hold only a reference back to the
// Splitter. At most one Span is live at a time: advancing the Splitter ends
// the previous Span, discarding any of its items that were not read.
//
// A Splitter is not safe for concurrent use.
type Splitter[T, K any] struct {
	next     func() (T, bool)
	stop     func()
	key      func(T) K
	adjacent func(prev, next K) bool

	// pending holds an item pulled from the source that has not been emitted.
	// While a span is open, it holds the span's unread seed. Otherwise it
	// holds the item that ended the previous span, if any.
	pending struct {
		item  T
		key   K
		keyed bool
		ok    bool
	}
	// lastKey is the key of the last item emitted (or discarded) by the open
	// span.
	lastKey K
	// gen is the generation of the most recent span. A Span whose generation
	// differs has been superseded.
	gen uint64
	// open is true while the span of generation gen has not ended.
	open      bool
	exhausted bool
	closed    invariants.CloseChecker
}

// ByKey returns a Splitter over the items of seq.
//
// key transforms an item into the key used for comparison; it's called once
// per item. adjacent is given the key of the previous item of a span and the
// key of the item that follows it in seq, and returns true if that item
// continues the span. Neither function may have side effects, and adjacent
// need not be symmetric or transitive.
//
// ByKey converts seq into a pull iterator. The caller should Close the
// Splitter if it stops before the Splitter is exhausted.
func ByKey[T, K any](
	seq iter.Seq[T], key func(T) K, adjacent func(prev, next K) bool,
) *Splitter[T, K] {
	next, stop := iter.Pull(seq)
	s := New(next, key, adjacent)
	s.stop = stop
	return s
}

// New returns a Splitter that pulls items from next. next returns false once
// the source is exhausted; the Splitter never calls it again after that.
func New[T, K any](
	next func() (T, bool), key func(T) K, adjacent func(prev, next K) bool,
) *Splitter[T, K] {
	return &Splitter[T, K]{
		next:     next,
		key:      key,
		adjacent: adjacent,
	}
}

// Next returns the next span, or false if the source is exhausted. Once Next
// returns false, it returns false forever.
//
// If the previous span has not been read to its end, its remaining items are
// pulled from the source and discarded, and the previous span is ended. This
// differs from splitting with a plain peeking iterator, where the next span
// would begin at the first unread item of the abandoned one.
func (s *Splitter[T, K]) Next() (*Span[T, K], bool) {
	if s.open {
		s.discard()
	}
	if !s.pending.ok {
		item, ok := s.pull()
		if !ok {
			return nil, false
		}
		s.setPending(item)
	}
	s.gen++
	s.open = true
	return &Span[T, K]{s: s, gen: s.gen}, true
}

// All returns the sequence of remaining spans. Each span must be consumed
// (or abandoned) before the next one is requested; the sequence ends the
// previous span when advancing.
func (s *Splitter[T, K]) All() iter.Seq[*Span[T, K]] {
	return func(yield func(*Span[T, K]) bool) {
		for {
			span, ok := s.Next()
			if !ok || !yield(span) {
				return
			}
		}
	}
}

// Close releases the source and ends the open span. The Splitter returns no
// further spans after Close.
func (s *Splitter[T, K]) Close() {
	s.closed.Close()
	if s.stop != nil {
		s.stop()
	}
	var zero T
	s.pending.item = zero
	s.pending.ok = false
	s.open = false
	s.exhausted = true
}

// String implements fmt.Stringer.
func (s *Splitter[T, K]) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s *Splitter[T, K]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("gen=%d", redact.SafeUint(s.gen))
	if s.open {
		w.SafeString(" open")
	} else {
		w.SafeString(" ended")
	}
	if s.pending.ok {
		w.Printf(" pending=%v", s.pending.item)
	}
	if s.exhausted {
		w.SafeString(" exhausted")
	}
}

// pull returns the next item of the source, recording exhaustion.
func (s *Splitter[T, K]) pull() (T, bool) {
	if s.exhausted {
		var zero T
		return zero, false
	}
	item, ok := s.next()
	if !ok {
		s.exhausted = true
	}
	return item, ok
}

func (s *Splitter[T, K]) setPending(item T) {
	s.pending.item = item
	s.pending.keyed = false
	s.pending.ok = true
}

// takePending empties the pending slot, returning its item and making its
// key the last emitted key.
func (s *Splitter[T, K]) takePending() T {
	item := s.pending.item
	if s.pending.keyed {
		s.lastKey = s.pending.key
	} else {
		s.lastKey = s.key(item)
	}
	var zero T
	s.pending.item = zero
	s.pending.ok = false
	return item
}

// advance pulls the item following the last emitted one. It returns false if
// the item does not continue the open span, in which case the item is left
// in the pending slot and the span is ended.
func (s *Splitter[T, K]) advance() (T, bool) {
	if invariants.Enabled && s.pending.ok {
		panic(errors.AssertionFailedf("span %d advanced with a pending item", s.gen))
	}
	item, ok := s.pull()
	if !ok {
		s.open = false
		return item, false
	}
	k := s.key(item)
	if !s.adjacent(s.lastKey, k) {
		s.pending.item = item
		s.pending.key = k
		s.pending.keyed = true
		s.pending.ok = true
		s.open = false
		var zero T
		return zero, false
	}
	s.lastKey = k
	return item, true
}

// discard reads the open span to its end without emitting anything.
func (s *Splitter[T, K]) discard() {
	if s.pending.ok {
		s.takePending()
	}
	for s.open {
		s.advance()
	}
}

// spanNext implements Span.Next.
func (s *Splitter[T, K]) spanNext(sp *Span[T, K]) (T, bool) {
	if sp.gen != s.gen || !s.open {
		sp.done = true
		var zero T
		return zero, false
	}
	if s.pending.ok {
		// The seed is emitted without an adjacency check.
		return s.takePending(), true
	}
	item, ok := s.advance()
	if !ok {
		sp.done = true
	}
	return item, ok
}

// A Span is a contiguous run of items of its Splitter's source. A span is
// never empty: its first Next always returns an item, unless the Splitter
// has moved on to another span or been closed.
//
// Once Next returns false, it returns false forever.
type Span[T, K any] struct {
	s    *Splitter[T, K]
	gen  uint64
	done bool
}

// Next returns the next item of the span, or false at the end of the span.
func (sp *Span[T, K]) Next() (T, bool) {
	if sp.done {
		var zero T
		return zero, false
	}
	return sp.s.spanNext(sp)
}

// All returns the sequence of the span's remaining items.
func (sp *Span[T, K]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := sp.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Collect reads the span's remaining items into a slice.
func (sp *Span[T, K]) Collect() []T {
	var items []T
	for item, ok := sp.Next(); ok; item, ok = sp.Next() {
		items = append(items, item)
	}
	return items
}
