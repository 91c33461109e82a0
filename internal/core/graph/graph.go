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

import "fmt"

// Graph is a named collection of nodes, one of which (Entry) is the
// graph's own root. A Def(name) node resolves against this same map, so
// a Graph can describe an infinite set with finite storage: a recursive
// list schema is just a node that Pairs an element type with a Def
// pointing back at itself.
//
// A Graph is mutable only during construction, via Add. Once a
// subsumption query has run against it (freeze, called automatically by
// SuperOf/Equals/Refine), further Add calls panic: this mirrors the
// originating implementation's refusal to mutate a graph through a
// shared reference once other code may be relying on its shape.
type Graph struct {
	nodes  map[Name]Node
	entry  Name
	frozen bool
}

// New creates an empty graph with the given entry point name. The entry
// node itself need not exist yet; Add it before the graph is used.
func New(entry Name) *Graph {
	return &Graph{nodes: make(map[Name]Node), entry: entry}
}

// Add inserts or replaces a named node. It panics if the graph has
// already been used in a subsumption query.
func (g *Graph) Add(name Name, n Node) {
	if g.frozen {
		panic(fmt.Sprintf("graph: Add(%q) after graph was frozen by a query", name))
	}
	g.nodes[name] = n
}

// Entry returns the graph's root node, resolving its entry name.
func (g *Graph) Entry() Node {
	n, ok := g.nodes[g.entry]
	if !ok {
		panic(fmt.Sprintf("graph: entry %q has no node", g.entry))
	}
	return n
}

// EntryName returns the name of the graph's root definition.
func (g *Graph) EntryName() Name {
	return g.entry
}

// Resolve looks up a named node; the second return reports whether it
// exists.
func (g *Graph) Resolve(name Name) (Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Names returns the graph's defined names in no particular order.
func (g *Graph) Names() []Name {
	names := make([]Name, 0, len(g.nodes))
	for n := range g.nodes {
		names = append(names, n)
	}
	return names
}

func (g *Graph) freeze() {
	g.frozen = true
}
