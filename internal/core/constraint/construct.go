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

// NewBound builds an integer interval, collapsing it to Bottom
// immediately if it is empty rather than letting an empty Bound ever
// escape into a caller's hands.
func NewBound(lo, hi IntEndpoint) Value {
	return boundFromInterval(intInterval{lo, hi})
}

// NewFloatBound builds a real interval, collapsing it to Bottom if empty.
func NewFloatBound(lo, hi FloatEndpoint) Value {
	return floatBoundFromInterval(floatInterval{lo, hi})
}

// NewLiteralFloat builds a LiteralFloat, applying the same NaN policy as
// the float endpoint constructors (see StrictFloats).
func NewLiteralFloat(v float64) Value {
	return LiteralFloat(checkFloat(v))
}

// MakeUnion builds the reduced union of a list of constraints.
func MakeUnion(vs []Value) Value {
	return reduceUnion(vs)
}

// MakePair builds the 2-tuple Tuple([k, v]).
func MakePair(k, v Value) Value {
	return Tuple{Elems: []Value{k, v}}
}

// MakeTuple builds a fixed-arity Tuple over the given elements.
func MakeTuple(vs []Value) Value {
	return Tuple{Elems: vs}
}

// MakeDifference builds a \ b, reduced as far as reduceDifference allows.
func MakeDifference(a, b Value) Value {
	return Subtract(a, b)
}
