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

// Value is the closed set of constraint expression variants described by
// the data model: Top, Bottom, the four literal kinds, the four primitive
// kinds, the two interval kinds, Tuple, Union, and Difference. isValue is
// unexported so the set cannot be extended outside this package — every
// operation in this package may exhaustively type-switch over Value
// without a default case that silently does the wrong thing.
//
// Values are immutable once constructed. Operations never mutate a
// receiver; they return a freshly built Value, sharing subtrees by
// ordinary Go reference semantics (slices, and Go's garbage collector
// standing in for the "shared reference counting" of the value model).
type Value interface {
	Kind() Kind
	isValue()
}

// Top is the universe: the superset of every value, including itself.
type Top struct{}

func (Top) Kind() Kind { return TopKind }
func (Top) isValue()   {}

// Bottom is the empty set: the subset of every value. Nothing but Bottom
// is a subset of Bottom.
type Bottom struct{}

func (Bottom) Kind() Kind { return BottomKind }
func (Bottom) isValue()   {}

// LiteralInt is the singleton set containing exactly one int64.
type LiteralInt int64

func (LiteralInt) Kind() Kind { return IntKind }
func (LiteralInt) isValue()   {}

// LiteralFloat is the singleton set containing exactly one float64.
type LiteralFloat float64

func (LiteralFloat) Kind() Kind { return FloatKind }
func (LiteralFloat) isValue()   {}

// LiteralBool is the singleton set containing exactly one bool.
type LiteralBool bool

func (LiteralBool) Kind() Kind { return BoolKind }
func (LiteralBool) isValue()   {}

// LiteralString is the singleton set containing exactly one string.
type LiteralString string

func (LiteralString) Kind() Kind { return StringKind }
func (LiteralString) isValue()   {}

// Int is the full set of integers.
type Int struct{}

func (Int) Kind() Kind { return IntKind }
func (Int) isValue()   {}

// Float is the full set of reals. Float is a superset of Int by design:
// integers are a subset of reals in this algebra.
type Float struct{}

func (Float) Kind() Kind { return FloatKind }
func (Float) isValue()   {}

// Bool is the full set of booleans ({true, false}).
type Bool struct{}

func (Bool) Kind() Kind { return BoolKind }
func (Bool) isValue()   {}

// String is the full set of strings.
type String struct{}

func (String) Kind() Kind { return StringKind }
func (String) isValue()   {}

// Bound is an integer interval: the set of integer literals it covers.
type Bound struct {
	Lo, Hi IntEndpoint
}

func (Bound) Kind() Kind { return BoundKind }
func (Bound) isValue()   {}

func (b Bound) interval() intInterval { return intInterval{b.Lo, b.Hi} }

// FloatBound is a real interval.
type FloatBound struct {
	Lo, Hi FloatEndpoint
}

func (FloatBound) Kind() Kind { return FloatBoundKind }
func (FloatBound) isValue()   {}

func (b FloatBound) interval() floatInterval { return floatInterval{b.Lo, b.Hi} }

// Tuple is an ordered, fixed-arity sequence of constraints. It denotes the
// set of concrete n-tuples whose i-th component lies in Elems[i]; it is
// not a Cartesian product operator over those sets as a single combined
// object, only as a membership predicate (see SuperOf rule 6).
type Tuple struct {
	Elems []Value
}

func (Tuple) Kind() Kind { return TupleKind }
func (Tuple) isValue()   {}

// Union is the set-union of its members. A Union returned by any
// operation in this package is always stored in reduced form: no member
// subsumes or is subsumed by another, no member is Bottom, no member is
// itself a Union, and no two members are mergeable by directUnion. Hand
// constructing a Union literal that violates these invariants is allowed
// by the type system but every operation here assumes Reduce has been
// applied; use MakeUnion rather than a literal when in doubt.
type Union struct {
	Members []Value
}

func (Union) Kind() Kind { return UnionKind }
func (Union) isValue()   {}

// Difference is the lazy representation of A \ B, used only when A - B
// has no finite positive representation as a reduced union of atoms.
type Difference struct {
	A, B Value
}

func (Difference) Kind() Kind { return DifferenceKind }
func (Difference) isValue()   {}
