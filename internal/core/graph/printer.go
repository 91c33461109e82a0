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

package graph

import (
	"fmt"
	"strings"
)

// String renders the graph's entry node. A named definition is expanded
// in full the first time it is reached and printed bare (just its name)
// on every subsequent reference, so a recursive schema prints as a
// finite tree instead of looping forever.
func (g *Graph) String() string {
	p := &printer{graph: g, visited: make(map[Name]bool)}
	p.write(g.Entry(), 0)
	return p.b.String()
}

type printer struct {
	b       strings.Builder
	graph   *Graph
	visited map[Name]bool
}

func (p *printer) write(n Node, indent int) {
	switch v := n.(type) {
	case T:
		p.b.WriteString("_")
	case F:
		p.b.WriteString("!")
	case Leaf:
		p.b.WriteString(v.Value.String())
	case Pair:
		p.b.WriteString("(")
		p.write(v.Left, indent)
		p.b.WriteString(", ")
		p.write(v.Right, indent)
		p.b.WriteString(")")
	case Enum:
		p.writeEnum(v, indent)
	case Def:
		p.writeDef(v, indent)
	}
}

// writeEnum inlines short, leaf-only alternatives on one line (matching
// a small atomic union's feel in the flat algebra's own printer) and
// otherwise lays one alternative per indented line.
func (p *printer) writeEnum(e Enum, indent int) {
	if len(e.Alts) <= 3 && allLeaves(e.Alts) {
		p.b.WriteString("(")
		for i, alt := range e.Alts {
			if i > 0 {
				p.b.WriteString(" | ")
			}
			p.write(alt, indent)
		}
		p.b.WriteString(")")
		return
	}
	p.b.WriteString("(\n")
	pad := strings.Repeat("  ", indent+1)
	for i, alt := range e.Alts {
		p.b.WriteString(pad)
		if i > 0 {
			p.b.WriteString("| ")
		} else {
			p.b.WriteString("  ")
		}
		p.write(alt, indent+1)
		p.b.WriteString("\n")
	}
	p.b.WriteString(strings.Repeat("  ", indent))
	p.b.WriteString(")")
}

func (p *printer) writeDef(d Def, indent int) {
	if p.visited[d.Name] {
		p.b.WriteString(fmt.Sprintf("#%s", d.Name))
		return
	}
	p.visited[d.Name] = true
	n, ok := p.graph.Resolve(d.Name)
	if !ok {
		p.b.WriteString(fmt.Sprintf("#%s(undefined)", d.Name))
		return
	}
	p.b.WriteString(fmt.Sprintf("#%s=", d.Name))
	p.write(n, indent)
}

func allLeaves(nodes []Node) bool {
	for _, n := range nodes {
		if _, ok := n.(Leaf); !ok {
			return false
		}
	}
	return true
}
