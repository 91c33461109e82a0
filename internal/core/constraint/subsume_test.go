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

package constraint

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func intBound(lo, hi int64) Value {
	return NewBound(IntInclusive(lo), IntInclusive(hi))
}

func TestSuperOfPrimitives(t *testing.T) {
	testCases := []struct {
		name  string
		self  Value
		other Value
		want  bool
	}{
		{"top over anything", Top{}, LiteralInt(5), true},
		{"anything over bottom", LiteralInt(5), Bottom{}, true},
		{"bottom over bottom only", Bottom{}, Bottom{}, true},
		{"bottom not over literal", Bottom{}, LiteralInt(5), false},
		{"nothing over top but top", LiteralInt(5), Top{}, false},
		{"int over literal", Int{}, LiteralInt(5), true},
		{"int over bound", Int{}, intBound(1, 10), true},
		{"int not over float", Int{}, LiteralFloat(1.5), false},
		{"float over literal int", Float{}, LiteralInt(42), true},
		{"float over bound", Float{}, intBound(1, 10), true},
		{"int not over literal float", Int{}, LiteralFloat(2.0), false},
		{"bool over literal", Bool{}, LiteralBool(true), true},
		{"string over literal", String{}, LiteralString("hi"), true},
		{"literal equality", LiteralInt(5), LiteralInt(5), true},
		{"literal inequality", LiteralInt(5), LiteralInt(6), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			qt.Assert(t, qt.Equals(SuperOf(tc.self, tc.other), tc.want))
		})
	}
}

func TestSuperOfTuple(t *testing.T) {
	a := MakeTuple([]Value{Int{}, String{}})
	b := MakeTuple([]Value{LiteralInt(1), LiteralString("x")})
	qt.Assert(t, qt.IsTrue(SuperOf(a, b)))

	c := MakeTuple([]Value{Int{}})
	qt.Assert(t, qt.IsFalse(SuperOf(a, c)), qt.Commentf("mismatched arity must not subsume"))
}

func TestSuperOfDifference(t *testing.T) {
	// Difference(Int, LiteralInt(5)) superOf LiteralInt(6): B ∩ x = Bottom, A ⊇ x.
	d := Difference{A: Int{}, B: LiteralInt(5)}
	qt.Assert(t, qt.IsTrue(superOf(d, LiteralInt(6))))
	qt.Assert(t, qt.IsFalse(superOf(d, LiteralInt(5))))

	// x ⊇ Difference(B, C) iff (x ∪ C) ⊇ B.
	qt.Assert(t, qt.IsTrue(superOf(Int{}, d)))
}

// S3 from the worked scenarios: union subsumption over literal sets.
func TestScenarioS3UnionSubsumption(t *testing.T) {
	set123 := MakeUnion([]Value{LiteralInt(1), LiteralInt(2), LiteralInt(3)})
	set13 := MakeUnion([]Value{LiteralInt(1), LiteralInt(3)})
	set14 := MakeUnion([]Value{LiteralInt(1), LiteralInt(4)})

	qt.Assert(t, qt.IsTrue(SuperOf(set123, set13)))
	qt.Assert(t, qt.IsFalse(SuperOf(set123, set14)))
}

func TestEquals(t *testing.T) {
	a := intBound(1, 10)
	b := MakeUnion([]Value{intBound(1, 5), intBound(5, 10)})
	qt.Assert(t, qt.IsTrue(Equals(a, b)), qt.Commentf("reduced union of adjacent bounds equals the merged bound"))
}
