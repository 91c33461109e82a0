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

package config

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestParseEmpty(t *testing.T) {
	c, err := Parse("")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c, Default()))
}

func TestParseExplicitBooleanFalse(t *testing.T) {
	c, err := Parse("strict=0")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(c.Strict))
}

func TestParseLogEvalAndEpsilon(t *testing.T) {
	c, err := Parse("logeval=2,epsilon=0.5")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(c.LogEval, 2))
	qt.Assert(t, qt.Equals(c.EpsilonOverride, 0.5))
	qt.Assert(t, qt.IsTrue(c.Strict), qt.Commentf("unrelated keys keep the default"))
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse("bogus=1")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestParseMalformedValue(t *testing.T) {
	_, err := Parse("logeval=notanumber")
	qt.Assert(t, qt.IsNotNil(err))
}
