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

import "math"

// directUnion merges two atoms (neither Union nor Difference) into a
// single atom, or reports that no direct merge exists. A dominated pair
// (one super_of's the other) always merges to the dominator; the only
// other mergeable atoms are same-kind intervals that the interval kernel
// judges overlapping or adjacent.
func directUnion(a, b Value) (Value, bool) {
	if superOf(a, b) {
		return a, true
	}
	if superOf(b, a) {
		return b, true
	}
	if x, ok := a.(Bound); ok {
		if y, ok := b.(Bound); ok {
			if r := x.interval().union(y.interval()); r.ok {
				return boundFromInterval(r.merged), true
			}
		}
	}
	if x, ok := a.(FloatBound); ok {
		if y, ok := b.(FloatBound); ok {
			if r := x.interval().union(y.interval()); r.ok {
				return floatBoundFromInterval(r.merged), true
			}
		}
	}
	return nil, false
}

// directIntersection computes the intersection of two atoms. It is total:
// specialized cases cover the pairings the component design calls out;
// anything else falls back to the algebraic identity
// A ∩ B = refine(A, B) ∪ refine(B, A), tried with both argument orders
// via tryIntersect's own a,b / b,a attempts.
func directIntersection(a, b Value) Value {
	if v, ok := tryIntersect(a, b); ok {
		return v
	}
	if v, ok := tryIntersect(b, a); ok {
		return v
	}
	return Union(Refine(a, b), Refine(b, a))
}

// tryIntersect covers the specialized pairings with a on the "left" as
// named in the component design (e.g. "Int ∩ LiteralInt"); the caller
// tries both (a,b) and (b,a) since intersection is commutative.
func tryIntersect(a, b Value) (Value, bool) {
	switch x := a.(type) {
	case Top:
		return b, true
	case Bottom:
		return Bottom{}, true
	case Int:
		switch y := b.(type) {
		case Int:
			return Int{}, true
		case LiteralInt:
			return y, true
		case Bound:
			return y, true
		case LiteralFloat:
			v := float64(y)
			if v == math.Trunc(v) {
				return LiteralInt(int64(v)), true
			}
			return Bottom{}, true
		case FloatBound:
			return tightenFloatBoundToInt(y), true
		}
	case Float:
		switch y := b.(type) {
		case Float:
			return Float{}, true
		case LiteralFloat:
			return y, true
		case FloatBound:
			return y, true
		case Int:
			return Int{}, true
		case LiteralInt:
			return LiteralFloat(float64(y)), true
		case Bound:
			return liftBoundToFloat(y), true
		}
	case Bool:
		switch y := b.(type) {
		case Bool:
			return Bool{}, true
		case LiteralBool:
			return y, true
		}
	case String:
		switch y := b.(type) {
		case String:
			return String{}, true
		case LiteralString:
			return y, true
		}
	case Bound:
		switch y := b.(type) {
		case Bound:
			r := x.interval().intersect(y.interval())
			if r.isEmpty() {
				return Bottom{}, true
			}
			return boundFromInterval(r), true
		case LiteralInt:
			if x.interval().containsValue(int64(y)) {
				return y, true
			}
			return Bottom{}, true
		}
	case FloatBound:
		switch y := b.(type) {
		case FloatBound:
			r := x.interval().intersect(y.interval())
			if r.isEmpty() {
				return Bottom{}, true
			}
			return floatBoundFromInterval(r), true
		case LiteralFloat:
			if x.interval().containsValue(float64(y)) {
				return y, true
			}
			return Bottom{}, true
		case LiteralInt:
			v := float64(y)
			if x.interval().containsValue(v) {
				return y, true
			}
			return Bottom{}, true
		}
	}
	return nil, false
}

func boundFromInterval(iv intInterval) Value {
	if iv.isEmpty() {
		return Bottom{}
	}
	return Bound{iv.lo, iv.hi}
}

func floatBoundFromInterval(iv floatInterval) Value {
	if iv.isEmpty() {
		return Bottom{}
	}
	return FloatBound{iv.lo, iv.hi}
}

func liftBoundToFloat(b Bound) FloatBound {
	lift := func(e IntEndpoint) FloatEndpoint {
		switch {
		case e.NegInf():
			return FloatNegInf()
		case e.PosInf():
			return FloatPosInf()
		case e.Open():
			return FloatExclusive(float64(e.Value()))
		default:
			return FloatInclusive(float64(e.Value()))
		}
	}
	return FloatBound{lift(b.Lo), lift(b.Hi)}
}

// tightenFloatBoundToInt narrows a real interval to the tightest integer
// interval it encloses: ceil for an inclusive lower bound, floor+1 for an
// exclusive one, and symmetrically floor / ceil-1 on the upper bound.
func tightenFloatBoundToInt(fb FloatBound) Value {
	var lo IntEndpoint
	switch {
	case fb.Lo.NegInf():
		lo = IntNegInf()
	case fb.Lo.Open():
		lo = IntInclusive(int64(math.Floor(fb.Lo.Value())) + 1)
	default:
		lo = IntInclusive(int64(math.Ceil(fb.Lo.Value())))
	}
	var hi IntEndpoint
	switch {
	case fb.Hi.PosInf():
		hi = IntPosInf()
	case fb.Hi.Open():
		hi = IntInclusive(int64(math.Ceil(fb.Hi.Value())) - 1)
	default:
		hi = IntInclusive(int64(math.Floor(fb.Hi.Value())))
	}
	return boundFromInterval(intInterval{lo, hi})
}

// directDifference computes a \ b for two atoms, or reports that a - b
// has no simple positive representation (the caller wraps the result as
// a lazy Difference in that case). Per the component design, any pair not
// covered by the Top/Bottom/superset rules is treated as disjoint and a
// is returned as-is; this intentionally does not attempt to decompose a
// partially-overlapping interval pair into a positive union (see
// DESIGN.md).
func directDifference(a, b Value) (Value, bool) {
	if isTop(b) {
		return Bottom{}, true
	}
	if isBottom(a) {
		return Bottom{}, true
	}
	if isBottom(b) {
		return a, true
	}
	if superOf(b, a) {
		return Bottom{}, true
	}
	if superOf(a, b) {
		return nil, false
	}
	return a, true
}
