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

// MakePair is a small convenience constructor, used heavily by tests
// that build list-shaped schemas out of nested Pair/Leaf/Def nodes.
func MakePair(left, right Node) Node {
	return Pair{Left: left, Right: right}
}

// MakeEnum builds an Enum from its alternatives.
func MakeEnum(alts ...Node) Node {
	return Enum{Alts: alts}
}
