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

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"calgebra.dev/go/internal/core/constraint"
	"calgebra.dev/go/internal/core/printer"
	"calgebra.dev/go/internal/scenario"
	"calgebra.dev/go/internal/xlog"
)

func newReplCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactively evaluate constraint expressions",
		Args:  cobra.NoArgs,
		RunE:  mkRunE(c, runRepl),
	}
}

func runRepl(ctx context.Context, c *Command, args []string) error {
	sessionID := uuid.NewString()
	env := map[string]constraint.Value{}
	out := c.OutOrStdout()
	fmt.Fprintf(out, "calg repl, session %s (type \"help\" for commands, \"exit\" to quit)\n", sessionID)

	scan := bufio.NewScanner(c.InOrStdin())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		if !scan.Scan() {
			break
		}
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if err := replEval(out, sessionID, env, line); err != nil {
			fmt.Fprintf(c.OutOrStderr(), "error: %v\n", err)
		}
	}
	if err := scan.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func replEval(out io.Writer, sessionID string, env map[string]constraint.Value, line string) error {
	tokens, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("tokenizing: %w", err)
	}
	if len(tokens) == 0 {
		return nil
	}

	if xlog.Enabled() {
		trace := xlog.Enter(fmt.Sprintf("repl[%s] %s", sessionID, tokens[0]))
		defer trace.Exit()
	}

	op := tokens[0]
	if op == "help" {
		fmt.Fprintln(out, "commands: let <name> <expr> | union|intersection|difference|superof|equals|refine <a> <b> | reduce <a> | exit")
		return nil
	}

	if op == "let" {
		if len(tokens) != 3 {
			return fmt.Errorf("usage: let <name> <expr>")
		}
		v, err := scenario.ParseExpr(tokens[2], env)
		if err != nil {
			return err
		}
		env[tokens[1]] = v
		fmt.Fprintf(out, "%s = %s\n", tokens[1], printer.Format(v))
		return nil
	}

	if op == "reduce" {
		if len(tokens) != 2 {
			return fmt.Errorf("usage: reduce <expr>")
		}
		a, err := scenario.ParseExpr(tokens[1], env)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, printer.Format(constraint.Reduce(a)))
		return nil
	}

	if len(tokens) != 3 {
		return fmt.Errorf("usage: %s <a> <b>", op)
	}
	a, err := scenario.ParseExpr(tokens[1], env)
	if err != nil {
		return err
	}
	b, err := scenario.ParseExpr(tokens[2], env)
	if err != nil {
		return err
	}

	switch op {
	case "union":
		fmt.Fprintln(out, printer.Format(constraint.Union(a, b)))
	case "intersection":
		fmt.Fprintln(out, printer.Format(constraint.Intersection(a, b)))
	case "difference":
		fmt.Fprintln(out, printer.Format(constraint.Subtract(a, b)))
	case "refine":
		fmt.Fprintln(out, printer.Format(constraint.Refine(a, b)))
	case "superof":
		fmt.Fprintln(out, constraint.SuperOf(a, b))
	case "equals":
		fmt.Fprintln(out, constraint.Equals(a, b))
	default:
		return fmt.Errorf("unknown command %q", op)
	}
	return nil
}
