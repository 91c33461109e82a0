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

func TestNewBoundCollapsesEmpty(t *testing.T) {
	got := NewBound(IntInclusive(10), IntInclusive(1))
	_, ok := got.(Bottom)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestNewFloatBoundCollapsesEmpty(t *testing.T) {
	got := NewFloatBound(FloatExclusive(5), FloatExclusive(5))
	_, ok := got.(Bottom)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestMakePairAndTuple(t *testing.T) {
	p := MakePair(LiteralInt(1), LiteralString("x"))
	tup, ok := p.(Tuple)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(len(tup.Elems), 2))

	tr := MakeTuple([]Value{LiteralInt(1), LiteralInt(2), LiteralInt(3)})
	tr2, ok := tr.(Tuple)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(len(tr2.Elems), 3))
}
