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
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version can be overridden at build time via -ldflags, mirroring
// cmd/cue/cmd's version.go.
var version string

func newVersionCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print calg version",
		Args:  cobra.NoArgs,
		RunE:  mkRunE(c, runVersion),
	}
}

func runVersion(ctx context.Context, c *Command, args []string) error {
	w := c.OutOrStdout()
	fmt.Fprintf(w, "calg version %s\n", moduleVersion())
	fmt.Fprintf(w, "go version %s\n", runtime.Version())
	return nil
}

func moduleVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}
