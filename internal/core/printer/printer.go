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

// Package printer renders both layers of the algebra for diagnostics:
// a flat constraint.Value tree, and a named graph.Graph. Indentation,
// inlining of short leaf-only enums (at most 3 alternatives), and
// once-per-render definition expansion follow the same layout rules in
// both cases; graph.Graph implements fmt.Stringer directly, since its
// Def-visited bookkeeping is internal to that package, so FormatGraph
// here is a thin pass-through kept for symmetry with Format.
package printer

import (
	"fmt"
	"strings"

	"calgebra.dev/go/internal/core/constraint"
	"calgebra.dev/go/internal/core/graph"
)

// Format renders v with indentation and inline short unions, unlike the
// single-line render used internally for xlog traces.
func Format(v constraint.Value) string {
	var b strings.Builder
	writeValue(&b, v, 0)
	return b.String()
}

// FormatGraph renders a constraint graph starting from its entry node.
func FormatGraph(g *graph.Graph) string {
	return g.String()
}

func writeValue(b *strings.Builder, v constraint.Value, indent int) {
	switch x := v.(type) {
	case constraint.Union:
		writeUnion(b, x.Members, indent)
	case constraint.Tuple:
		b.WriteString("(")
		for i, e := range x.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, e, indent)
		}
		b.WriteString(")")
	case constraint.Difference:
		writeValue(b, x.A, indent)
		b.WriteString(" \\ ")
		writeValue(b, x.B, indent)
	default:
		b.WriteString(constraint.Render(v))
	}
}

func writeUnion(b *strings.Builder, members []constraint.Value, indent int) {
	if len(members) <= 3 && allScalar(members) {
		b.WriteString("(")
		for i, m := range members {
			if i > 0 {
				b.WriteString(" | ")
			}
			writeValue(b, m, indent)
		}
		b.WriteString(")")
		return
	}
	b.WriteString("(\n")
	pad := strings.Repeat("  ", indent+1)
	for i, m := range members {
		b.WriteString(pad)
		if i > 0 {
			b.WriteString("| ")
		} else {
			b.WriteString("  ")
		}
		writeValue(b, m, indent+1)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(")")
}

func allScalar(members []constraint.Value) bool {
	for _, m := range members {
		switch m.(type) {
		case constraint.Union, constraint.Tuple, constraint.Difference:
			return false
		}
	}
	return true
}

// Must is a small test/demo helper: format a value, panicking if
// printer ever receives a nil Value (a programmer error, not a data
// condition callers should handle).
func Must(v constraint.Value) string {
	if v == nil {
		panic(fmt.Sprintf("printer: nil Value"))
	}
	return Format(v)
}
