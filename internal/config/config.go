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

// Package config reads process-wide debug settings from a single
// CALG_DEBUG environment variable, modeled on
// cuelang.org/go/internal/cuedebug's envflag-tag-driven Config: each
// exported field carries an `envflag` struct tag naming the key a user
// writes in the comma-separated value, e.g. CALG_DEBUG=logeval=1,strict.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"calgebra.dev/go/internal/core/constraint"
	"calgebra.dev/go/internal/xlog"
)

// Config holds the settings CALG_DEBUG can toggle. Default() gives the
// zero-CALG_DEBUG behavior; the Go zero value of Config is not itself
// meaningful, since Strict's default (true, matching
// constraint.StrictFloats) is not Go's bool zero value.
type Config struct {
	// LogEval sets internal/xlog's verbosity. 0 disables tracing.
	LogEval int `envflag:"logeval"`

	// Strict makes NaN float inputs panic. True by default;
	// CALG_DEBUG=strict=0 relaxes it so NaN values are kept as they are
	// (not turned into Bottom) and admit nothing in containment checks.
	Strict bool `envflag:"strict"`

	// EpsilonOverride replaces the float interval kernel's built-in
	// coincidence tolerance when nonzero.
	EpsilonOverride float64 `envflag:"epsilon"`
}

// Default returns the configuration in effect when CALG_DEBUG is unset.
func Default() Config {
	return Config{Strict: true}
}

// Env reads and parses CALG_DEBUG, returning Default() if unset.
func Env() (Config, error) {
	return Parse(os.Getenv("CALG_DEBUG"))
}

// Parse decodes a comma-separated "name[=value]" list, the same shape
// cuedebug.Parse reads for CUE_DEBUG. Boolean fields may be named bare
// (equivalent to "=1"); all other fields require an explicit value.
func Parse(s string) (Config, error) {
	c := Default()
	if s == "" {
		return c, nil
	}
	fields := fieldsByTag(&c)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, hasValue := strings.Cut(part, "=")
		f, ok := fields[name]
		if !ok {
			return c, fmt.Errorf("config: unknown CALG_DEBUG key %q", name)
		}
		if !hasValue {
			if f.Kind() != reflect.Bool {
				return c, fmt.Errorf("config: CALG_DEBUG key %q needs a value", name)
			}
			value = "1"
		}
		if err := setField(f, value); err != nil {
			return c, fmt.Errorf("config: CALG_DEBUG key %q: %w", name, err)
		}
	}
	return c, nil
}

func fieldsByTag(c *Config) map[string]reflect.Value {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()
	out := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("envflag")
		if tag == "" {
			continue
		}
		out[tag] = v.Field(i)
	}
	return out
}

func setField(f reflect.Value, value string) error {
	switch f.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		f.SetInt(int64(n))
	case reflect.Float64:
		fv, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		f.SetFloat(fv)
	default:
		return fmt.Errorf("unsupported field kind %s", f.Kind())
	}
	return nil
}

// Apply wires a parsed Config into the package-level state it governs:
// xlog's verbosity and the constraint kernel's strictness/epsilon. This
// is the one place process-wide mutable state is touched outside of
// tests, called once from cmd/calg's root command setup.
func (c Config) Apply() {
	xlog.Level = int32(c.LogEval)
	constraint.StrictFloats = c.Strict
	if c.EpsilonOverride != 0 {
		constraint.FloatEpsilon = c.EpsilonOverride
	}
}
