// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spans

import "iter"

// Seq splits seq into spans like ByKey, returning the spans as a sequence of
// sequences. The underlying pull iterator is released when the returned
// sequence ends or its consumer stops early.
//
// Each inner sequence must be consumed (or abandoned) before the outer
// sequence is advanced; advancing discards the unread items of the previous
// span. Inner sequences are invalid once the outer sequence has ended.
func Seq[T, K any](
	seq iter.Seq[T], key func(T) K, adjacent func(prev, next K) bool,
) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		s := ByKey(seq, key, adjacent)
		defer s.Close()
		for span := range s.All() {
			if !yield(span.All()) {
				return
			}
		}
	}
}

// Collect reads every remaining span of s into its own slice.
func Collect[T, K any](s *Splitter[T, K]) [][]T {
	var spans [][]T
	for span := range s.All() {
		spans = append(spans, span.Collect())
	}
	return spans
}
