// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the spans command line tools.
package tool

import "github.com/spf13/cobra"

// T is the container for all of the spans tools.
type T struct {
	Commands []*cobra.Command
	split    *splitT
	logger   Logger
}

// An Option configures a T.
type Option func(*T)

// WithLogger configures the logger used for verbose output. The default writes
// to stderr.
func WithLogger(l Logger) Option {
	return func(t *T) { t.logger = l }
}

// New creates a new set of spans tools.
func New(opts ...Option) *T {
	t := &T{logger: DefaultLogger{}}
	for _, opt := range opts {
		opt(t)
	}
	t.split = newSplit(t.logger)
	t.Commands = []*cobra.Command{
		t.split.Root,
	}
	return t
}
