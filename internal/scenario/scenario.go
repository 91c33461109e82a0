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

// Package scenario loads a small YAML-driven expression language for
// building constraint.Values from text, so the calg CLI's eval and repl
// commands have something to drive besides Go literals. The expression
// grammar is a handful of constructor calls (Bound(1,10), Literal(5),
// Union(Literal(1), Literal(2)), ...) plus references to values named earlier in the
// same file, the textual analogue of what cmd/cue/cmd's load step does
// for CUE source, scaled down to this algebra's closed value set.
package scenario

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"calgebra.dev/go/internal/core/constraint"
)

// Op names the algebraic operation an Operation step invokes.
type Op string

const (
	OpUnion        Op = "union"
	OpIntersection Op = "intersection"
	OpDifference   Op = "difference"
	OpSuperOf      Op = "superof"
	OpEquals       Op = "equals"
	OpRefine       Op = "refine"
	OpReduce       Op = "reduce"
)

// Operation is one step of a scenario: apply Op to Left (and Right,
// where the operation is binary) and record the result under Name.
type Operation struct {
	Name  string `yaml:"name"`
	Op    Op     `yaml:"op"`
	Left  string `yaml:"left"`
	Right string `yaml:"right,omitempty"`
}

// File is the on-disk YAML shape: a set of named value expressions,
// evaluated in file order so later values may reference earlier ones,
// followed by a sequence of operations over them.
type File struct {
	Values     map[string]string `yaml:"values"`
	ValueOrder []string          `yaml:"-"`
	Operations []Operation       `yaml:"operations"`
}

// rawFile exists only so we can recover map key order from the YAML
// node tree: Go's map iteration order is randomized, but a scenario
// author's value definitions may intentionally reference earlier ones,
// so Load walks the mapping node directly instead of decoding straight
// into a Go map.
type rawFile struct {
	Values     yaml.Node   `yaml:"values"`
	Operations []Operation `yaml:"operations"`
}

// Load reads and parses a scenario file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes scenario YAML from memory.
func Parse(data []byte) (*File, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	f := &File{
		Values:     make(map[string]string),
		Operations: raw.Operations,
	}
	if raw.Values.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(raw.Values.Content); i += 2 {
			name := raw.Values.Content[i].Value
			expr := raw.Values.Content[i+1].Value
			f.Values[name] = expr
			f.ValueOrder = append(f.ValueOrder, name)
		}
	}
	return f, nil
}

// Result is one named, evaluated outcome: either a constraint.Value (for
// union/intersection/difference/refine/reduce) or a boolean (for
// superof/equals), never both.
type Result struct {
	Name    string
	Value   constraint.Value
	Bool    bool
	IsBool  bool
}

// Run evaluates every declared value, then every operation in order,
// returning the operations' results. Value definitions are always
// available to operations by name; so are the results of value-producing
// operations (not of superof/equals, whose booleans are not stored), so a
// scenario can chain "define a and b, union them into c, then refine c
// by d" in a single file. ctx is checked between steps so a scenario
// file with many operations can be cancelled from the CLI without
// waiting for it to run to completion; the algebra operations
// themselves are synchronous and take no Context, since none of them
// can block (see package constraint).
func Run(ctx context.Context, f *File) ([]Result, error) {
	env := map[string]constraint.Value{}
	for _, name := range f.ValueOrder {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := ParseExpr(f.Values[name], env)
		if err != nil {
			return nil, fmt.Errorf("scenario: value %q: %w", name, err)
		}
		env[name] = v
	}

	var results []Result
	for _, op := range f.Operations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		left, ok := env[op.Left]
		if !ok {
			return nil, fmt.Errorf("scenario: operation %q: unknown value %q", op.Name, op.Left)
		}
		var right constraint.Value
		if op.Right != "" {
			right, ok = env[op.Right]
			if !ok {
				return nil, fmt.Errorf("scenario: operation %q: unknown value %q", op.Name, op.Right)
			}
		}

		r := Result{Name: op.Name}
		switch op.Op {
		case OpUnion:
			r.Value = constraint.Union(left, right)
		case OpIntersection:
			r.Value = constraint.Intersection(left, right)
		case OpDifference:
			r.Value = constraint.Subtract(left, right)
		case OpRefine:
			r.Value = constraint.Refine(left, right)
		case OpReduce:
			r.Value = constraint.Reduce(left)
		case OpSuperOf:
			r.IsBool = true
			r.Bool = constraint.SuperOf(left, right)
		case OpEquals:
			r.IsBool = true
			r.Bool = constraint.Equals(left, right)
		default:
			return nil, fmt.Errorf("scenario: operation %q: unknown op %q", op.Name, op.Op)
		}
		if !r.IsBool {
			env[op.Name] = r.Value
		}
		results = append(results, r)
	}
	return results, nil
}
