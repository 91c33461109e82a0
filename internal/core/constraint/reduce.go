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

// Union returns the set-union of a and b, reduced to canonical form.
func Union(a, b Value) Value {
	trace := logOp("Union", a, b)
	defer trace.done()
	unionCount.Add(1)

	if superOf(a, b) {
		return a
	}
	if superOf(b, a) {
		return b
	}
	return reduceUnion(append(members(a), members(b)...))
}

// Intersection returns a ∩ b, reduced to canonical form.
func Intersection(a, b Value) Value {
	trace := logOp("Intersection", a, b)
	defer trace.done()
	intersectionCount.Add(1)

	if superOf(a, b) {
		return b
	}
	if superOf(b, a) {
		return a
	}
	ax, bx := members(a), members(b)
	parts := make([]Value, 0, len(ax)*len(bx))
	for _, x := range ax {
		for _, y := range bx {
			parts = append(parts, directIntersection(x, y))
		}
	}
	return reduceUnion(parts)
}

// Subtract returns the lazy-or-positive a \ b, reduced as far as
// possible per reduceDifference.
func Subtract(a, b Value) Value {
	trace := logOp("Difference", a, b)
	defer trace.done()
	differenceCount.Add(1)

	return reduceDifference(a, b)
}

// Reduce transforms v into its canonical minimal form: idempotent on
// already-reduced input, it recursively normalizes Union, Difference, and
// Tuple, and collapses any empty interval to Bottom.
func Reduce(v Value) Value {
	trace := logOp1("Reduce", v)
	defer trace.done()
	reductionCount.Add(1)

	switch x := v.(type) {
	case Union:
		return reduceUnion(x.Members)
	case Difference:
		return reduceDifference(Reduce(x.A), Reduce(x.B))
	case Tuple:
		elems := make([]Value, len(x.Elems))
		for i, e := range x.Elems {
			elems[i] = Reduce(e)
		}
		return Tuple{Elems: elems}
	case Bound:
		if x.interval().isEmpty() {
			return Bottom{}
		}
		return x
	case FloatBound:
		if x.interval().isEmpty() {
			return Bottom{}
		}
		return x
	default:
		return v
	}
}

// reduceUnion implements the union-reduction algorithm of the component
// design: pop candidates off a work queue, discard anything subsumed by
// what has already been kept, evict anything the candidate subsumes,
// merge with a directUnion-mergeable neighbor when one exists, and
// otherwise keep the candidate as a new member.
func reduceUnion(es []Value) Value {
	queue := make([]Value, 0, len(es))
	for _, e := range es {
		queue = append(queue, members(e)...)
	}

	var kept []Value
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if isBottom(c) {
			continue
		}

		subsumed := false
		for _, u := range kept {
			if superOf(u, c) {
				subsumed = true
				break
			}
		}
		if subsumed {
			continue
		}

		survivors := kept[:0:0]
		for _, u := range kept {
			if !superOf(c, u) {
				survivors = append(survivors, u)
			}
		}
		kept = survivors

		merged := false
		for i := len(kept) - 1; i >= 0; i-- {
			if m, ok := directUnion(c, kept[i]); ok {
				kept = append(kept[:i], kept[i+1:]...)
				queue = append([]Value{m}, queue...)
				merged = true
				break
			}
		}
		if merged {
			continue
		}

		kept = append(kept, c)
	}

	switch len(kept) {
	case 0:
		return Bottom{}
	case 1:
		return Reduce(kept[0])
	default:
		members := make([]Value, len(kept))
		for i, u := range kept {
			members[i] = Reduce(u)
		}
		return Union{Members: members}
	}
}

// reduceDifference implements the difference-reduction algorithm of the
// component design.
func reduceDifference(a, b Value) Value {
	switch x := a.(type) {
	case Difference:
		// (A - B) - C ≡ A - (B ∪ C)
		return reduceDifference(x.A, Union(x.B, b))
	case Union:
		// Union(Ai) - C ≡ union of (Ai - C)
		parts := make([]Value, len(x.Members))
		for i, m := range x.Members {
			parts[i] = reduceDifference(m, b)
		}
		return reduceUnion(parts)
	}

	if bu, ok := b.(Union); ok {
		current := a
		var residual []Value
		for _, bj := range bu.Members {
			next := reduceDifference(current, bj)
			if _, stillLazy := next.(Difference); stillLazy {
				residual = append(residual, bj)
			} else {
				current = next
			}
		}
		if len(residual) == 0 {
			return current
		}
		return Difference{A: current, B: reduceUnion(residual)}
	}

	if bd, ok := b.(Difference); ok {
		// a − Difference(B, C) ≡ (a − B) ∪ (a ∩ C)
		return Union(reduceDifference(a, bd.A), Intersection(a, bd.B))
	}

	if v, ok := directDifference(a, b); ok {
		return v
	}
	return Difference{A: a, B: b}
}
