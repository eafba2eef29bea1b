// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spans

import "golang.org/x/exp/constraints"

// Number is a constraint that permits any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Identity is a key function that uses the item itself as its key.
func Identity[T any](v T) T { return v }

// Len is a key function for strings that uses the string's length as its key.
func Len(s string) int { return len(s) }

// Equal continues a span while keys are equal.
func Equal[K comparable](prev, next K) bool { return prev == next }

// Consecutive continues a span while each key is one larger than the key
// before it. The largest value of K is never followed by the smallest.
func Consecutive[K constraints.Integer](prev, next K) bool {
	return prev < next && next-prev == 1
}

// Ascending continues a span while keys do not decrease.
func Ascending[K constraints.Ordered](prev, next K) bool { return prev <= next }

// Within returns an adjacency predicate that continues a span while each key
// differs from the key before it by at most d, in either direction.
//
// Keys are only compared to their predecessor, so the keys of a span may
// range much further than d from each other.
func Within[K Number](d K) func(prev, next K) bool {
	return func(prev, next K) bool {
		// A difference that overflows a signed K wraps to a negative value.
		if next >= prev {
			diff := next - prev
			return diff >= 0 && diff <= d
		}
		diff := prev - next
		return diff >= 0 && diff <= d
	}
}

// Not inverts an adjacency predicate.
func Not[K any](adjacent func(prev, next K) bool) func(prev, next K) bool {
	return func(prev, next K) bool { return !adjacent(prev, next) }
}
