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

	"calgebra.dev/go/internal/xlog"
)

// assumptions is the coinductive hypothesis set Γ: pairs of nodes
// currently being compared, keyed so a re-entrant comparison of the
// exact same pair (reached by unfolding a Def that cycles back on
// itself) is assumed true rather than recursing forever.
type assumptions map[string]bool

func pairKey(ga *Graph, a Node, gb *Graph, b Node) string {
	return fmt.Sprintf("%p:%s|%p:%s", ga, nodeKey(a), gb, nodeKey(b))
}

// SuperOf decides self ⊇ other over the two graphs' entry nodes. Both
// graphs are frozen as a side effect: their node maps must not change
// again for the lifetime of either graph, since a cached "already
// assumed" fact could otherwise go stale.
func SuperOf(self, other *Graph) bool {
	self.freeze()
	other.freeze()
	superOfCalls.Add(1)
	entered := xlog.Enabled()
	var trace xlog.Trace
	if entered {
		trace = logEnter("SuperOf", self.Entry(), other.Entry())
	}
	result := superOf(self, self.Entry(), other, other.Entry(), assumptions{})
	if entered {
		trace.Exit()
	}
	return result
}

// Equals is mutual subsumption: two graphs describe the same set iff
// each entry subsumes the other's.
func Equals(a, b *Graph) bool {
	return SuperOf(a, b) && SuperOf(b, a)
}

func superOf(ga *Graph, a Node, gb *Graph, b Node, gamma assumptions) bool {
	// rule: an assumption already covers this exact pair.
	key := pairKey(ga, a, gb, b)
	if gamma[key] {
		return true
	}

	// rule: T ⊇ x for any x.
	if _, aIsT := a.(T); aIsT {
		return true
	}
	// rule: x ⊇ F for any x.
	if _, bIsF := b.(F); bIsF {
		return true
	}
	// rule: F ⊇ x is false once x ≠ F is known (the case above already
	// caught x = F).
	if _, aIsF := a.(F); aIsF {
		return false
	}
	// rule: x ⊇ T is false once x ≠ T is known (the case above already
	// caught x = T).
	if _, bIsT := b.(T); bIsT {
		return false
	}

	// a's own Enum/Def cases dispatch regardless of what b is, since
	// both need to unwrap on the a side before any comparison with b
	// is meaningful.
	switch av := a.(type) {
	case Enum:
		switch bv := b.(type) {
		case Enum:
			// rule: Enum(A) ⊇ Enum(B): every alt of B subsumed by some
			// alt of A.
			for _, y := range bv.Alts {
				if !enumAdmits(ga, av.Alts, gb, y, gamma) {
					return false
				}
			}
			return true
		default:
			// rule: Enum(A) ⊇ y, y not itself an Enum: some alt of A
			// subsumes y.
			return enumAdmits(ga, av.Alts, gb, b, gamma)
		}

	case Def:
		switch bv := b.(type) {
		case Def:
			gamma[key] = true
			defer delete(gamma, key)
			an := resolveDef(ga, av.Name)
			bn := resolveDef(gb, bv.Name)
			return superOf(ga, an, gb, bn, gamma)
		default:
			gamma[key] = true
			defer delete(gamma, key)
			an := resolveDef(ga, av.Name)
			return superOf(ga, an, gb, b, gamma)
		}
	}

	// a is now known to be neither Enum nor Def. Before comparing it
	// against b concretely, b must still be unwrapped if it is itself
	// Def or Enum: otherwise a Leaf or Pair on the a side would never
	// match a b that happens to be an unexpanded Def or an Enum of one.
	if bv, ok := b.(Def); ok {
		gamma[key] = true
		defer delete(gamma, key)
		bn := resolveDef(gb, bv.Name)
		return superOf(ga, a, gb, bn, gamma)
	}

	if bv, ok := b.(Enum); ok {
		// rule: x ⊇ Enum(B), x not itself Enum or Def: every alt of B
		// subsumed by x.
		for _, y := range bv.Alts {
			if !superOf(ga, a, gb, y, gamma) {
				return false
			}
		}
		return true
	}

	switch av := a.(type) {
	case Leaf:
		bv, ok := b.(Leaf)
		return ok && av.Value.Equal(bv.Value)

	case Pair:
		bv, ok := b.(Pair)
		if !ok {
			return false
		}
		return superOf(ga, av.Left, gb, bv.Left, gamma) &&
			superOf(ga, av.Right, gb, bv.Right, gamma)
	}

	return false
}

// resolveDef looks up a Def's name in its originating graph. A miss means
// the graph is malformed, so it panics naming the missing definition.
func resolveDef(g *Graph, name Name) Node {
	n, ok := g.Resolve(name)
	if !ok {
		panic(fmt.Sprintf("graph: Def(%q) has no node in its graph", name))
	}
	return n
}

func enumAdmits(ga *Graph, alts []Node, gb *Graph, y Node, gamma assumptions) bool {
	for _, x := range alts {
		if superOf(ga, x, gb, y, gamma) {
			return true
		}
	}
	return false
}

// Refine narrows self by other: if self does not admit other, the
// result is the canonical empty graph; otherwise self is returned
// unchanged, since the node layer (unlike the flat algebra) carries no
// general intersection operator of its own.
func Refine(self, other *Graph) *Graph {
	if !SuperOf(self, other) {
		empty := New("root")
		empty.Add("root", F{})
		return empty
	}
	return self
}
