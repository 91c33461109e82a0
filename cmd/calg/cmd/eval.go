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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"calgebra.dev/go/internal/core/printer"
	"calgebra.dev/go/internal/scenario"
)

func newEvalCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <scenario.yaml>",
		Short: "load a scenario file, evaluate its operations, and print the results",
		Args:  cobra.ExactArgs(1),
		RunE:  mkRunE(c, runEval),
	}
}

func runEval(ctx context.Context, c *Command, args []string) error {
	f, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	results, err := scenario.Run(ctx, f)
	if err != nil {
		return err
	}
	w := c.OutOrStdout()
	for _, r := range results {
		if r.IsBool {
			fmt.Fprintf(w, "%s = %t\n", r.Name, r.Bool)
			continue
		}
		fmt.Fprintf(w, "%s = %s\n", r.Name, printer.Format(r.Value))
	}
	return nil
}
