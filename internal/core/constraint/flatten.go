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

// members returns v's constituent set as a flat list: a Union's members,
// Bottom's empty list, or v itself as a singleton for anything atomic.
// This is the "flatten x into its member list" step used throughout
// super_of and the compound reducers.
func members(v Value) []Value {
	switch x := v.(type) {
	case Union:
		return x.Members
	case Bottom:
		return nil
	default:
		return []Value{v}
	}
}
