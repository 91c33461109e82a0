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

import (
	"sync/atomic"

	"calgebra.dev/go/internal/xlog"
)

var superOfCalls atomic.Int64

// Counts mirrors calgebra.dev/go/internal/core/constraint.Counts for
// this package's one observable operation.
type Counts struct {
	SuperOf int64
}

func Snapshot() Counts {
	return Counts{SuperOf: superOfCalls.Load()}
}

func ResetStats() {
	superOfCalls.Store(0)
}

func logEnter(name string, a, b Node) xlog.Trace {
	return xlog.Enter(name, nodeKey(a), nodeKey(b))
}
