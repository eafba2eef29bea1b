// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/spf13/cobra"
)

// runCommand runs the given tool command with its input on stdin, returning
// everything written to stdout, stderr and the log.
func runCommand(args []string, input string, opts ...Option) string {
	var buf bytes.Buffer
	stdin = strings.NewReader(input)
	stdout = &buf
	stderr = &buf
	osExit = func(int) {}
	defer func() {
		stdin = os.Stdin
		stdout = os.Stdout
		stderr = os.Stderr
		osExit = os.Exit
	}()

	c := &cobra.Command{}
	c.AddCommand(New(opts...).Commands...)
	c.SetArgs(args)
	c.SetOutput(&buf)
	if err := c.Execute(); err != nil {
		return err.Error()
	}
	return buf.String()
}

func TestTool(t *testing.T) {
	datadriven.RunTest(t, "testdata/split", func(t *testing.T, td *datadriven.TestData) string {
		args := []string{td.Cmd}
		for _, arg := range td.CmdArgs {
			args = append(args, "--"+arg.String())
		}
		input := td.Input
		if input != "" {
			input += "\n"
		}
		return runCommand(args, input)
	})
}
