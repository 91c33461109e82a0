// Copyright 2026 The Calg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd implements the calg command tree: eval, repl, version.
// Modeled on cmd/cue/cmd's Command wrapper over cobra.Command, scaled
// down to the handful of subcommands a constraint-algebra demo driver
// needs.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"calgebra.dev/go/internal/config"
	"calgebra.dev/go/internal/core/constraint"
)

// Command wraps the currently active *cobra.Command the way cmd/cue's
// Command does, so subcommand RunE functions get a stable type to hang
// shared state off (here: whether --stats was requested) without each
// one repeating cobra flag lookups.
type Command struct {
	*cobra.Command

	root      *cobra.Command
	showStats bool
}

type runFunction func(ctx context.Context, cmd *Command, args []string) error

// mkRunE adapts a runFunction into cobra's RunE signature, pointing the
// shared Command at whichever subcommand cobra just invoked so its
// OutOrStdout/OutOrStderr reflect the right *cobra.Command, and passing
// through cmd.Context() so a long-running scenario file can be
// cancelled the way cobra's own Command.ExecuteContext caller expects.
func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd

		cfg, err := config.Env()
		if err != nil {
			return err
		}
		cfg.Apply()

		err = f(cmd.Context(), c, args)
		if c.showStats {
			printStats(c.OutOrStderr())
		}
		return err
	}
}

func printStats(w io.Writer) {
	p := message.NewPrinter(message.MatchLanguage("en"))
	s := constraint.Snapshot()
	p.Fprintf(w, "superOf: %d  union: %d  intersection: %d  difference: %d  reduce: %d\n",
		s.SuperOf, s.Unions, s.Intersections, s.Differences, s.Reductions)
}

// New builds the top-level calg command with its subcommands wired in.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:           "calg",
		Short:         "calg evaluates set-theoretic constraint algebra scenarios",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	c := &Command{Command: root, root: root}

	root.PersistentFlags().BoolVar(&c.showStats, "stats", false, "print operation counters after running")

	for _, sub := range []*cobra.Command{
		newEvalCmd(c),
		newReplCmd(c),
		newVersionCmd(c),
	} {
		root.AddCommand(sub)
	}

	root.SetArgs(args)
	return c
}

// Main runs calg and returns a process exit code, the same shape as
// cmd/cue/cmd.Main. The context is cancelled on SIGINT/SIGTERM so a
// scenario file mid-evaluation (see runEval) can stop promptly instead
// of running to completion regardless of the interrupt.
func Main() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := New(os.Args[1:])
	if err := c.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
