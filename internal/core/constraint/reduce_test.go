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

// S1 and S2 from the worked scenarios.
func TestScenarioS1S2IntervalUnionLiteral(t *testing.T) {
	iv := intBound(1, 10)

	inside := Union(iv, LiteralInt(5))
	qt.Assert(t, qt.IsTrue(Equals(inside, iv)), qt.Commentf("S1: literal already inside the interval is absorbed"))

	outside := Union(iv, LiteralInt(15))
	want := MakeUnion([]Value{iv, LiteralInt(15)})
	qt.Assert(t, qt.IsTrue(Equals(outside, want)), qt.Commentf("S2: literal outside the interval stays a separate member"))
}

// S5: cross-domain int/float subsumption and intersection tightening.
func TestScenarioS5FloatIntCross(t *testing.T) {
	qt.Assert(t, qt.IsTrue(SuperOf(Float{}, LiteralInt(42))))

	fb := NewFloatBound(FloatNegInf(), FloatExclusive(10.5))
	got := Intersection(Int{}, fb)
	want := NewBound(IntNegInf(), IntInclusive(10))
	qt.Assert(t, qt.IsTrue(Equals(got, want)))
}

func lit(v int64) Value { return LiteralInt(v) }

// S6 and S7: tuple-based indexing via intersection and difference.
func TestScenarioS6S7TupleIndexing(t *testing.T) {
	pair0 := MakePair(lit(0), NewLiteralFloat(2))
	pair1 := MakePair(lit(1), NewLiteralFloat(3.14))
	pair3 := MakePair(lit(3), LiteralString("hello"))
	tbl := MakeUnion([]Value{pair0, pair1, pair3})

	idx := MakePair(lit(0), Top{})
	got := Intersection(tbl, idx)
	qt.Assert(t, qt.IsTrue(Equals(got, pair0)), qt.Commentf("S6: intersection with Pair(0, Top) selects the row keyed 0"))

	removed := Subtract(tbl, MakePair(lit(1), Top{}))
	want := MakeUnion([]Value{pair0, pair3})
	qt.Assert(t, qt.IsTrue(Equals(removed, want)), qt.Commentf("S7: difference removes only the row keyed 1"))
}

func TestUnionAbsorbsSubsumedMember(t *testing.T) {
	small := intBound(1, 5)
	big := intBound(0, 10)
	got := Union(small, big)
	qt.Assert(t, qt.IsTrue(Equals(got, big)))
}

func TestReduceCollapsesEmptyInterval(t *testing.T) {
	empty := Bound{IntInclusive(10), IntInclusive(1)}
	got := Reduce(empty)
	_, isBottom := got.(Bottom)
	qt.Assert(t, qt.IsTrue(isBottom))
}

func TestDifferenceLazyWhenNoPositiveForm(t *testing.T) {
	got := Subtract(Int{}, LiteralInt(5))
	d, ok := got.(Difference)
	qt.Assert(t, qt.IsTrue(ok), qt.Commentf("Int \\ {5} has no finite positive union form"))
	qt.Assert(t, qt.IsTrue(Equals(d.A, Int{})))
	qt.Assert(t, qt.IsTrue(Equals(d.B, LiteralInt(5))))
}

func TestDifferenceOfDifference(t *testing.T) {
	// (A - B) - C ≡ A - (B ∪ C)
	a := Subtract(Int{}, LiteralInt(5))
	got := Subtract(a, LiteralInt(6))
	qt.Assert(t, qt.IsTrue(SuperOf(Int{}, got)))
	qt.Assert(t, qt.IsFalse(SuperOf(got, LiteralInt(5))))
	qt.Assert(t, qt.IsFalse(SuperOf(got, LiteralInt(6))))
	qt.Assert(t, qt.IsTrue(SuperOf(got, LiteralInt(7))))
}
