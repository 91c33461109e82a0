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

// Package xlog is a small nesting, verbosity-gated diagnostic logger for
// the algebra packages, modeled on cuelang.org/go/internal/core/adt's
// OpContext.Logf/Indentf: a disabled logger must cost nothing beyond a
// single integer comparison, because the hot path (Reduce, SuperOf) calls
// it on every recursive step.
package xlog

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

func init() {
	log.SetFlags(0)
}

// Level is the current verbosity: 0 disables logging entirely, 1 traces
// operation entry/exit. It is a package-level atomic, set once during
// process startup by internal/config, mirroring cuedebug.Flags.LogEval
// being a plain package var rather than something threaded through every
// call.
var Level int32

func Enabled() bool { return atomic.LoadInt32(&Level) > 0 }

var nest atomic.Int32

// Trace is returned by Enter and must have Exit called on it, typically
// via defer, to restore the nesting level. Callers on the hot path must
// guard the call to Enter itself with Enabled(), the same way adt.Logf's
// callers guard with c.LogEval == 0, because even a no-op call with
// variadic arguments allocates on the Go compiler as of recent releases.
type Trace struct {
	name string
}

// Enter logs "name(args...)" indented to the current nesting depth and
// increases it. Only call this when Enabled() is true.
func Enter(name string, args ...any) Trace {
	depth := nest.Load()
	var b strings.Builder
	b.WriteString(strings.Repeat("... ", int(depth)))
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", a)
	}
	b.WriteByte(')')
	log.Output(2, b.String())
	nest.Add(1)
	return Trace{name: name}
}

// Exit restores the nesting level. It decrements the depth
// unconditionally, so call it only on a Trace that Enter returned; when
// logging is disabled and Enter is skipped, skip Exit too (typically via
// a defer guarded by the same Enabled() check).
func (t Trace) Exit() {
	nest.Add(-1)
}
