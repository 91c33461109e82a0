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

import "reflect"

// SuperOf decides self ⊇ other: every element of other is an element of
// self. The rules below keep the component design's numbering but not its
// order: rule 1 (Top/Bottom) runs first, then the Union and Difference
// rules 7-10, and only then the primitive-kind/literal/interval/tuple
// rules 2-6, which therefore only see an other that is neither Union nor
// Difference. The first rule that applies decides.
func SuperOf(self, other Value) bool {
	trace := logOp("SuperOf", self, other)
	defer trace.done()
	superOfCount.Add(1)
	return superOf(self, other)
}

func superOf(self, other Value) bool {
	// Reflexivity shortcut: a structurally identical value is always its
	// own superset. This matters beyond pure optimization for lazy
	// Difference nodes, where rule 9 would otherwise try to reprove an
	// identity (Union(A, B) ⊇ C from Difference(C, B)) that rules 7/8's
	// per-member domination test cannot see through.
	if reflect.DeepEqual(self, other) {
		return true
	}

	// rule 1: Top/Bottom.
	switch {
	case isTop(self):
		return true
	case isBottom(other):
		return true
	case isBottom(self):
		return isBottom(other)
	case isTop(other):
		return false
	}

	// rule 7: Union(A) ⊇ x: flatten x, every member subsumed by some
	// member of A. Handled before the primitive/tuple switch below since
	// it only applies when self itself is a Union.
	if a, ok := self.(Union); ok {
		for _, x := range members(other) {
			if !unionAdmits(a.Members, x) {
				return false
			}
		}
		return true
	}

	// rule 8: x ⊇ Union(B), x not itself a Union: every member of B
	// subsumed by x.
	if b, ok := other.(Union); ok {
		for _, x := range b.Members {
			if !superOf(self, x) {
				return false
			}
		}
		return true
	}

	// rule 9: x ⊇ Difference(B, C) iff (x ∪ C) ⊇ B. This is checked
	// before rule 10, so a Difference ⊇ Difference query is decided by
	// this general rule rather than by unwrapping self first; it already
	// covers that case without a dedicated specialization.
	if b, ok := other.(Difference); ok {
		return superOf(Union(self, b.B), b.A)
	}

	// rule 10: Difference(A, B) ⊇ x iff B ∩ x = Bottom and A ⊇ x.
	if a, ok := self.(Difference); ok {
		if _, isBot := Intersection(a.B, other).(Bottom); !isBot {
			return false
		}
		return superOf(a.A, other)
	}

	// rules 2, 4, 5: primitive kinds and intervals containing literals
	// and each other, via the interval kernel where intervals are
	// involved. other is known, past this point, to be neither Union nor
	// Difference, so a non-match here is conclusively rule 11's false.
	switch a := self.(type) {
	case Int:
		switch other.(type) {
		case Int, LiteralInt, Bound:
			return true
		}
		return false
	case Float:
		switch other.(type) {
		case Float, Int, LiteralFloat, FloatBound, LiteralInt, Bound:
			return true
		}
		return false
	case Bool:
		switch other.(type) {
		case Bool, LiteralBool:
			return true
		}
		return false
	case String:
		switch other.(type) {
		case String, LiteralString:
			return true
		}
		return false

	case Bound:
		switch b := other.(type) {
		case Bound:
			return a.interval().containsInterval(b.interval())
		case LiteralInt:
			return a.interval().containsValue(int64(b))
		}
		return false

	case FloatBound:
		switch b := other.(type) {
		case FloatBound:
			return a.interval().containsInterval(b.interval())
		case LiteralFloat:
			return a.interval().containsValue(float64(b))
		case LiteralInt:
			// rule 5: FloatBound may contain a LiteralInt.
			return a.interval().containsValue(float64(b))
		}
		return false

	// rule 3: literal equality for same-kind literals.
	case LiteralInt:
		b, ok := other.(LiteralInt)
		return ok && a == b
	case LiteralFloat:
		b, ok := other.(LiteralFloat)
		return ok && a == b
	case LiteralBool:
		b, ok := other.(LiteralBool)
		return ok && a == b
	case LiteralString:
		b, ok := other.(LiteralString)
		return ok && a == b

	// rule 6: Tuple componentwise, same arity.
	case Tuple:
		b, ok := other.(Tuple)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !superOf(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	}

	// rule 11: otherwise false.
	return false
}

func unionAdmits(members []Value, x Value) bool {
	for _, m := range members {
		if superOf(m, x) {
			return true
		}
	}
	return false
}

func isTop(v Value) bool {
	_, ok := v.(Top)
	return ok
}

func isBottom(v Value) bool {
	_, ok := v.(Bottom)
	return ok
}

// Equals is structural/semantic equality: super_of in both directions.
// Callers must never compare constraint.Value with ==/reflect.DeepEqual;
// equivalent forms (e.g. Bound(1,10) and a reduced Union that happens to
// cover exactly [1,10]) are equal under this definition but not under Go
// struct equality.
func Equals(a, b Value) bool {
	return superOf(a, b) && superOf(b, a)
}
