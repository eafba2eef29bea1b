// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spans_test

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/spans"
)

func Example() {
	s := spans.ByKey(slices.Values([]int{1, 2, 5, 6, 7, 11, 13, 14, 15}),
		spans.Identity[int], spans.Consecutive[int])
	defer s.Close()

	for span := range s.All() {
		fmt.Println("span =", span.Collect())
	}
	// Output:
	// span = [1 2]
	// span = [5 6 7]
	// span = [11]
	// span = [13 14 15]
}

func ExampleSeq() {
	words := []string{"abc", "run", "tag", "go", "be", "ring", "zip", "zap", "put"}
	for span := range spans.Seq(slices.Values(words), spans.Len, spans.Equal[int]) {
		fmt.Println(slices.Collect(span))
	}
	// Output:
	// [abc run tag]
	// [go be]
	// [ring]
	// [zip zap put]
}

func ExampleSplitter_Next() {
	s := spans.ByKey(slices.Values([]int{3, 1, 4, 1, 5, 9, 2, 6}),
		spans.Identity[int], spans.Ascending[int])
	defer s.Close()

	for span, ok := s.Next(); ok; span, ok = s.Next() {
		// Only the first item of each span is read; the rest is skipped.
		first, _ := span.Next()
		fmt.Println(first)
	}
	// Output:
	// 3
	// 1
	// 1
	// 2
}
