// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package itertest provides facilities for testing span iterators.
package itertest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/errors"
)

// ItemIter is the interface of an iterator over the items of one span.
type ItemIter[T any] interface {
	Next() (T, bool)
}

// SpanIter is the interface of an iterator over spans of type S.
type SpanIter[T any, S ItemIter[T]] interface {
	Next() (S, bool)
	Close()
	fmt.Stringer
}

// RunOps runs the newline separated operations in input against s, writing
// one line of output per operation. Lines logged by an instrumented source
// sharing w are interleaved with the output, showing when each item is
// pulled.
//
// The supported operations are:
//
//	next-span      advance to the next span
//	next [i]       pull an item from span i (default: the latest span)
//	collect [i]    drain span i
//	spans          drain every remaining span
//	state          print the state of s
//	close          close s
func RunOps[T any, S ItemIter[T]](w io.Writer, input string, s SpanIter[T, S]) error {
	var spans []S
	span := func(fields []string) (S, int, error) {
		var zero S
		if len(spans) == 0 {
			return zero, 0, errors.New("no span")
		}
		i := len(spans)
		if len(fields) > 1 {
			var err error
			if i, err = strconv.Atoi(fields[1]); err != nil {
				return zero, 0, errors.Wrapf(err, "parsing span index %q", fields[1])
			}
			if i < 1 || i > len(spans) {
				return zero, 0, errors.Newf("span %d out of range", i)
			}
		}
		return spans[i-1], i, nil
	}

	for _, line := range crstrings.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "next-span":
			sp, ok := s.Next()
			if !ok {
				fmt.Fprintf(w, "next-span: .\n")
				continue
			}
			spans = append(spans, sp)
			fmt.Fprintf(w, "next-span: #%d\n", len(spans))
		case "next":
			sp, i, err := span(fields)
			if err != nil {
				return err
			}
			if item, ok := sp.Next(); ok {
				fmt.Fprintf(w, "next #%d: %v\n", i, item)
			} else {
				fmt.Fprintf(w, "next #%d: .\n", i)
			}
		case "collect":
			sp, i, err := span(fields)
			if err != nil {
				return err
			}
			items := drain[T](sp)
			fmt.Fprintf(w, "collect #%d: %v\n", i, items)
		case "spans":
			for {
				sp, ok := s.Next()
				if !ok {
					break
				}
				spans = append(spans, sp)
				fmt.Fprintf(w, "span = %v\n", drain[T](sp))
			}
			fmt.Fprintf(w, "spans: %d\n", len(spans))
		case "state":
			fmt.Fprintf(w, "state: %s\n", s)
		case "close":
			s.Close()
			fmt.Fprintf(w, "close\n")
		default:
			return errors.Newf("unknown op %q", fields[0])
		}
	}
	return nil
}

func drain[T any](sp ItemIter[T]) []T {
	items := []T{}
	for item, ok := sp.Next(); ok; item, ok = sp.Next() {
		items = append(items, item)
	}
	return items
}

// ParseInts parses whitespace separated integers.
func ParseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", f)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// ParseStrings parses whitespace separated strings. The token "<empty>"
// denotes the empty string.
func ParseStrings(s string) []string {
	fields := strings.Fields(s)
	for i := range fields {
		if fields[i] == "<empty>" {
			fields[i] = ""
		}
	}
	return fields
}
