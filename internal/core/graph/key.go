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

import "strings"

// nodeKey renders a node into a canonical string, used only as a map key
// for the coinductive assumption set: two structurally equal nodes must
// render identically, and Def must render as itself rather than expand,
// since the whole point is to recognize "we've already assumed this
// pair" before recursing into the definition body again.
func nodeKey(n Node) string {
	var b strings.Builder
	writeNodeKey(&b, n)
	return b.String()
}

func writeNodeKey(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case T:
		b.WriteString("T")
	case F:
		b.WriteString("F")
	case Leaf:
		b.WriteString("Leaf(")
		b.WriteString(v.Value.String())
		b.WriteByte(')')
	case Enum:
		b.WriteString("Enum[")
		for i, alt := range v.Alts {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNodeKey(b, alt)
		}
		b.WriteByte(']')
	case Pair:
		b.WriteString("Pair(")
		writeNodeKey(b, v.Left)
		b.WriteByte(',')
		writeNodeKey(b, v.Right)
		b.WriteByte(')')
	case Def:
		b.WriteString("Def(")
		b.WriteString(string(v.Name))
		b.WriteByte(')')
	}
}
