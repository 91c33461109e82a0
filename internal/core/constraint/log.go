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

import "calgebra.dev/go/internal/xlog"

// opTrace wraps xlog.Trace so that logOp's callers can always `defer
// trace.done()` unconditionally; done is a no-op when logging was never
// entered, which keeps every operation's entry point uniform regardless
// of whether xlog.Enabled().
type opTrace struct {
	t       xlog.Trace
	entered bool
}

func (o opTrace) done() {
	if o.entered {
		o.t.Exit()
	}
}

// logOp logs entry into a two-argument operation (SuperOf, Union,
// Intersection, Difference) at xlog verbosity > 0. Checking Enabled()
// before formatting args avoids paying for fmt.Sprintf/interface boxing
// when logging is off, matching adt.Logf's guard.
func logOp(name string, a, b Value) opTrace {
	if !xlog.Enabled() {
		return opTrace{}
	}
	return opTrace{t: xlog.Enter(name, render(a), render(b)), entered: true}
}

func logOp1(name string, a Value) opTrace {
	if !xlog.Enabled() {
		return opTrace{}
	}
	return opTrace{t: xlog.Enter(name, render(a)), entered: true}
}
