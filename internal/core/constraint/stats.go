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

import "sync/atomic"

// Counts holds counters for key algebra operations, for diagnostic
// reporting by the CLI (calg eval --stats), mirroring the shape of
// cuelang.org/go/cue/stats.Counts: plain int64 fields, incremented
// unconditionally regardless of xlog verbosity, since counting is cheap
// and independent from tracing.
type Counts struct {
	SuperOf      int64
	Unions       int64
	Intersections int64
	Differences  int64
	Reductions   int64
}

var (
	superOfCount      atomic.Int64
	unionCount        atomic.Int64
	intersectionCount atomic.Int64
	differenceCount   atomic.Int64
	reductionCount    atomic.Int64
)

// Snapshot returns the current global operation counts.
func Snapshot() Counts {
	return Counts{
		SuperOf:       superOfCount.Load(),
		Unions:        unionCount.Load(),
		Intersections: intersectionCount.Load(),
		Differences:   differenceCount.Load(),
		Reductions:    reductionCount.Load(),
	}
}

// ResetStats zeroes the global operation counts; mainly useful in tests
// and between independent CLI scenario runs.
func ResetStats() {
	superOfCount.Store(0)
	unionCount.Store(0)
	intersectionCount.Store(0)
	differenceCount.Store(0)
	reductionCount.Store(0)
}
