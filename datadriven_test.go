// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package spans

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spans/internal/itertest"
)

func TestSplitterDataDriven(t *testing.T) {
	var ints []int
	var strs []string
	var definedStrings bool
	datadriven.RunTest(t, "testdata/splitter", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "define":
			var err error
			strs, definedStrings = nil, false
			if ints, err = itertest.ParseInts(td.Input); err != nil {
				return err.Error()
			}
			return ""
		case "define-strings":
			ints = nil
			strs, definedStrings = itertest.ParseStrings(td.Input), true
			return ""
		case "ops":
			var buf bytes.Buffer
			var log io.Writer = &buf
			keyName, adjacentName, d := "identity", "equal", 1
			for _, arg := range td.CmdArgs {
				switch arg.Key {
				case "key":
					keyName = arg.Vals[0]
				case "adjacent":
					adjacentName = arg.Vals[0]
				case "d":
					var err error
					if d, err = strconv.Atoi(arg.Vals[0]); err != nil {
						return err.Error()
					}
				case "quiet":
					log = nil
				default:
					return fmt.Sprintf("unknown argument %q", arg.Key)
				}
			}
			adjacent, err := parseAdjacency(adjacentName, d)
			if err != nil {
				return err.Error()
			}

			var pulls int
			if definedStrings {
				key, err := parseStringKey(keyName)
				if err != nil {
					return err.Error()
				}
				src := itertest.NewSource(log, strs...)
				err = itertest.RunOps[string, *Span[string, int]](&buf, td.Input, New(src.Next, key, adjacent))
				if err != nil {
					return err.Error()
				}
				pulls = src.Pulls
			} else {
				if keyName != "identity" {
					return fmt.Sprintf("unknown integer key %q", keyName)
				}
				src := itertest.NewSource(log, ints...)
				err = itertest.RunOps[int, *Span[int, int]](&buf, td.Input, New(src.Next, Identity[int], adjacent))
				if err != nil {
					return err.Error()
				}
				pulls = src.Pulls
			}
			fmt.Fprintf(&buf, "pulls: %d\n", pulls)
			return buf.String()
		default:
			return fmt.Sprintf("unknown command %q", td.Cmd)
		}
	})
}

func parseAdjacency(name string, d int) (func(prev, next int) bool, error) {
	switch name {
	case "equal":
		return Equal[int], nil
	case "consecutive":
		return Consecutive[int], nil
	case "ascending":
		return Ascending[int], nil
	case "within":
		return Within(d), nil
	default:
		return nil, errors.Newf("unknown adjacency %q", name)
	}
}

func parseStringKey(name string) (func(string) int, error) {
	switch name {
	case "len":
		return Len, nil
	case "first":
		return func(s string) int {
			if len(s) == 0 {
				return -1
			}
			return int(s[0])
		}, nil
	default:
		return nil, errors.Newf("unknown string key %q", name)
	}
}
