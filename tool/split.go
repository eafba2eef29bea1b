// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/spans"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// maxLineSize is the longest input line split accepts.
const maxLineSize = 16 << 20

// record is a line of input together with its key.
type record struct {
	line string
	key  key
}

func (r record) String() string { return r.line }

// lineSource reads records from a file one line at a time. Reading stops at
// the first line whose key cannot be computed; the error is retained in err.
type lineSource struct {
	name    string
	scanner *bufio.Scanner
	keyFn   func(line string) (key, error)
	lineNum int
	err     error
}

func (s *lineSource) next() (record, bool) {
	if s.err != nil {
		return record{}, false
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			s.err = errors.Wrapf(err, "reading %s", s.name)
		}
		return record{}, false
	}
	s.lineNum++
	line := s.scanner.Text()
	k, err := s.keyFn(line)
	if err != nil {
		s.err = errors.Wrapf(err, "%s:%d", s.name, s.lineNum)
		return record{}, false
	}
	return record{line: line, key: k}, true
}

// splitT implements the split tool.
type splitT struct {
	Root   *cobra.Command
	logger Logger

	// Flags.
	key      keyFlag
	adjacent adjacencyFlag
	format   formatFlag
	verbose  bool
}

func newSplit(logger Logger) *splitT {
	s := &splitT{logger: logger, format: formatLines}
	if err := s.key.Set("line"); err != nil {
		panic(err)
	}
	if err := s.adjacent.Set("equal"); err != nil {
		panic(err)
	}

	s.Root = &cobra.Command{
		Use:   "split [<file>...]",
		Short: "split lines into contiguous spans",
		Long: `
Split the lines of each file (or of stdin, if no files are given) into spans
of contiguous lines. A line continues the span of the line before it if the
adjacency predicate holds for the keys of the two lines. Only consecutive
lines are compared.

Keys:
  line       the whole line
  len        the length of the line in bytes
  int        the line parsed as a decimal integer
  field:N    the N-th whitespace separated field (empty if missing)
  prefix:N   the first N bytes of the line

Adjacency predicates:
  equal        the keys are equal
  ascending    the key does not decrease
  consecutive  the key is one larger than the previous key (numeric keys)
  within:D     the keys differ by at most D (numeric keys)

Lines longer than 16 MiB are rejected.
`,
		Run: s.run,
	}

	s.Root.Flags().Var(
		&s.key, "key", "how each line is turned into a key")
	s.Root.Flags().Var(
		&s.adjacent, "adjacent", "the adjacency predicate applied to consecutive keys")
	s.Root.Flags().Var(
		&s.format, "format", "output format: lines, table or count")
	s.Root.Flags().BoolVarP(
		&s.verbose, "verbose", "v", false, "log the splitter state after each span")
	return s
}

func (s *splitT) run(cmd *cobra.Command, args []string) {
	if s.adjacent.numeric && !s.key.numeric {
		fmt.Fprintf(stderr, "adjacency %q requires a numeric key (len or int)\n", s.adjacent.spec)
		osExit(1)
		return
	}

	if len(args) == 0 {
		if err := s.split(stdout, "stdin", stdin); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			osExit(1)
		}
		return
	}
	for _, path := range args {
		if len(args) > 1 {
			fmt.Fprintf(stdout, "%s\n", path)
		}
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			osExit(1)
			return
		}
		err = s.split(stdout, path, f)
		_ = f.Close()
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			osExit(1)
			return
		}
	}
}

// split reads r lazily, printing each span as soon as its last line has been
// read.
func (s *splitT) split(w io.Writer, name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)
	src := &lineSource{
		name:    name,
		scanner: scanner,
		keyFn:   s.key.fn,
	}
	splitter := spans.New(src.next, func(r record) key { return r.key }, s.adjacent.fn)
	defer splitter.Close()

	var tbl *tablewriter.Table
	if s.format == formatTable {
		tbl = tablewriter.NewWriter(w)
		tbl.SetHeader([]string{"span", "lines", "key", "first", "last"})
	}

	n := 0
	for span := range splitter.All() {
		n++
		switch s.format {
		case formatLines:
			var lines []string
			for rec := range span.All() {
				lines = append(lines, rec.line)
			}
			fmt.Fprintf(w, "span = %v\n", lines)
		case formatCount:
			count := 0
			for range span.All() {
				count++
			}
			fmt.Fprintf(w, "%d\n", count)
		case formatTable:
			first, _ := span.Next()
			last, count := first, 1
			for rec := range span.All() {
				last = rec
				count++
			}
			tbl.Append([]string{
				strconv.Itoa(n), strconv.Itoa(count), first.key.String(), first.line, last.line,
			})
		}
		if s.verbose {
			s.logger.Infof("%s: span %d: %s", name, n, splitter)
		}
	}
	if tbl != nil {
		tbl.Render()
	}
	return src.err
}
