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
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestStringInlinesShortLeafEnum(t *testing.T) {
	g := literalGraph(Enum{Alts: []Node{Leaf{Value: IntAtom(1)}, Leaf{Value: IntAtom(2)}}})
	s := g.String()
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "1 | 2")))
	qt.Assert(t, qt.IsFalse(strings.Contains(s, "\n")))
}

func TestStringExpandsDefOnceThenReferences(t *testing.T) {
	s := listSchema().String()
	qt.Assert(t, qt.Equals(strings.Count(s, "#list="), 1))
	qt.Assert(t, qt.Equals(strings.Count(s, "#list"), 2))
}

func TestStringPairAndLeaf(t *testing.T) {
	g := literalGraph(Pair{Left: Leaf{Value: IntAtom(1)}, Right: Leaf{Value: NilAtom()}})
	s := g.String()
	qt.Assert(t, qt.Equals(s, "(1, Nil)"))
}
