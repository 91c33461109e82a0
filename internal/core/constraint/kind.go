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

// Package constraint implements the flat constraint algebra: the value
// domain of atomic literals, intervals, tuples, and the union/difference
// compound forms, together with the subsumption decision procedure and
// the canonical-form reducer.
package constraint

// Kind is a coarse classification of a Value, as returned by Value.Kind.
// The rules in subsume.go and direct.go dispatch by type switch, not by
// Kind. It is a bitmask so a caller can test for "any number" with
// IntKind|FloatKind the way cue/types.go does.
type Kind uint16

const (
	TopKind Kind = 1 << iota
	BottomKind
	IntKind
	FloatKind
	BoolKind
	StringKind
	BoundKind
	FloatBoundKind
	TupleKind
	UnionKind
	DifferenceKind

	NumberKind = IntKind | FloatKind
)

func (k Kind) String() string {
	switch k {
	case TopKind:
		return "Top"
	case BottomKind:
		return "Bottom"
	case IntKind:
		return "Int"
	case FloatKind:
		return "Float"
	case BoolKind:
		return "Bool"
	case StringKind:
		return "String"
	case BoundKind:
		return "Bound"
	case FloatBoundKind:
		return "FloatBound"
	case TupleKind:
		return "Tuple"
	case UnionKind:
		return "Union"
	case DifferenceKind:
		return "Difference"
	default:
		return "Kind(?)"
	}
}
