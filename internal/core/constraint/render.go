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
	"fmt"
	"strconv"
	"strings"
)

// Render is the compact single-line leaf form, exported for
// calgebra.dev/go/internal/core/printer to build on for its
// indentation-aware, multi-line rendering of the compound variants
// (Union, Tuple, Difference).
func Render(v Value) string {
	return render(v)
}

// render is the unexported implementation, also used directly for
// xlog traces where the compact single-line form is all that's wanted
// even for compound values.
func render(v Value) string {
	switch x := v.(type) {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case LiteralInt:
		return strconv.FormatInt(int64(x), 10)
	case LiteralFloat:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case LiteralBool:
		return strconv.FormatBool(bool(x))
	case LiteralString:
		return strconv.Quote(string(x))
	case Bound:
		return renderIntInterval(x.interval())
	case FloatBound:
		return renderFloatInterval(x.interval())
	case Tuple:
		parts := make([]string, len(x.Elems))
		for i, e := range x.Elems {
			parts[i] = render(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case Union:
		parts := make([]string, len(x.Members))
		for i, m := range x.Members {
			parts[i] = render(m)
		}
		return strings.Join(parts, " | ")
	case Difference:
		return render(x.A) + " \\ " + render(x.B)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func renderIntInterval(iv intInterval) string {
	lo := "-inf"
	if !iv.lo.NegInf() {
		if iv.lo.PosInf() {
			lo = "+inf"
		} else {
			lo = strconv.FormatInt(iv.lo.Value(), 10)
		}
	}
	hi := "+inf"
	if !iv.hi.PosInf() {
		if iv.hi.NegInf() {
			hi = "-inf"
		} else {
			hi = strconv.FormatInt(iv.hi.Value(), 10)
		}
	}
	open := "["
	if iv.lo.Open() {
		open = "("
	}
	close := "]"
	if iv.hi.Open() {
		close = ")"
	}
	return open + lo + ", " + hi + close
}

func renderFloatInterval(iv floatInterval) string {
	lo := "-inf"
	if !iv.lo.NegInf() {
		if iv.lo.PosInf() {
			lo = "+inf"
		} else {
			lo = strconv.FormatFloat(iv.lo.Value(), 'g', -1, 64)
		}
	}
	hi := "+inf"
	if !iv.hi.PosInf() {
		if iv.hi.NegInf() {
			hi = "-inf"
		} else {
			hi = strconv.FormatFloat(iv.hi.Value(), 'g', -1, 64)
		}
	}
	open := "["
	if iv.lo.Open() {
		open = "("
	}
	close := "]"
	if iv.hi.Open() {
		close = ")"
	}
	return open + lo + ", " + hi + close
}
