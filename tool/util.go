// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spans"
)

var stdin = io.Reader(os.Stdin)
var stdout = io.Writer(os.Stdout)
var stderr = io.Writer(os.Stderr)
var osExit = os.Exit

// key is the comparison key of a line. Numeric keys compare by num, others
// by str.
type key struct {
	str     string
	num     int64
	numeric bool
}

func (k key) String() string {
	if k.numeric {
		return strconv.FormatInt(k.num, 10)
	}
	return strconv.Quote(k.str)
}

// keyFlag is a pflag.Value selecting how a line is turned into a key.
type keyFlag struct {
	spec    string
	numeric bool
	fn      func(line string) (key, error)
}

func (f *keyFlag) String() string {
	return f.spec
}

func (f *keyFlag) Type() string {
	return "key"
}

func (f *keyFlag) Set(spec string) error {
	name, arg, hasArg := strings.Cut(spec, ":")
	n := 0
	switch name {
	case "field", "prefix":
		if !hasArg {
			return errors.Newf("key %q requires an argument, as in %s:1", name, name)
		}
		var err error
		if n, err = strconv.Atoi(arg); err != nil || n < 1 {
			return errors.Newf("invalid argument %q to key %q", arg, name)
		}
	case "line", "len", "int":
		if hasArg {
			return errors.Newf("key %q takes no argument", name)
		}
	}
	switch name {
	case "line":
		f.numeric = false
		f.fn = func(line string) (key, error) {
			return key{str: line}, nil
		}
	case "len":
		f.numeric = true
		f.fn = func(line string) (key, error) {
			return key{num: int64(len(line)), numeric: true}, nil
		}
	case "int":
		f.numeric = true
		f.fn = func(line string) (key, error) {
			v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
			if err != nil {
				return key{}, err
			}
			return key{num: v, numeric: true}, nil
		}
	case "field":
		f.numeric = false
		f.fn = func(line string) (key, error) {
			fields := strings.Fields(line)
			if len(fields) < n {
				return key{}, nil
			}
			return key{str: fields[n-1]}, nil
		}
	case "prefix":
		f.numeric = false
		f.fn = func(line string) (key, error) {
			return key{str: line[:min(n, len(line))]}, nil
		}
	default:
		return errors.Newf("unknown key %q", spec)
	}
	f.spec = spec
	return nil
}

// adjacencyFlag is a pflag.Value selecting the adjacency predicate applied to
// the keys of consecutive lines.
type adjacencyFlag struct {
	spec string
	// numeric is true if the predicate is only defined on numeric keys.
	numeric bool
	fn      func(prev, next key) bool
}

func (f *adjacencyFlag) String() string {
	return f.spec
}

func (f *adjacencyFlag) Type() string {
	return "adjacency"
}

func (f *adjacencyFlag) Set(spec string) error {
	name, arg, hasArg := strings.Cut(spec, ":")
	if hasArg != (name == "within") {
		if hasArg {
			return errors.Newf("adjacency %q takes no argument", name)
		}
		return errors.Newf("adjacency %q requires an argument, as in within:1", name)
	}
	switch name {
	case "equal":
		f.numeric = false
		f.fn = spans.Equal[key]
	case "ascending":
		f.numeric = false
		f.fn = func(prev, next key) bool {
			if prev.numeric {
				return spans.Ascending(prev.num, next.num)
			}
			return spans.Ascending(prev.str, next.str)
		}
	case "consecutive":
		f.numeric = true
		f.fn = func(prev, next key) bool {
			return spans.Consecutive(prev.num, next.num)
		}
	case "within":
		d, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || d < 0 {
			return errors.Newf("invalid distance %q", arg)
		}
		within := spans.Within(d)
		f.numeric = true
		f.fn = func(prev, next key) bool {
			return within(prev.num, next.num)
		}
	default:
		return errors.Newf("unknown adjacency %q", spec)
	}
	f.spec = spec
	return nil
}

// formatFlag is a pflag.Value selecting how spans are printed.
type formatFlag string

const (
	formatLines formatFlag = "lines"
	formatTable formatFlag = "table"
	formatCount formatFlag = "count"
)

func (f *formatFlag) String() string {
	return string(*f)
}

func (f *formatFlag) Type() string {
	return "format"
}

func (f *formatFlag) Set(spec string) error {
	switch v := formatFlag(spec); v {
	case formatLines, formatTable, formatCount:
		*f = v
		return nil
	default:
		return errors.Newf("unknown format %q", spec)
	}
}
