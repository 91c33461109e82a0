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

package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"calgebra.dev/go/internal/core/constraint"
)

// ParseExpr evaluates one scenario expression, such as "Bound(1, 10)" or
// "Union(Literal(1), Literal(2))" or a bare reference to a name already
// present in env.
func ParseExpr(s string, env map[string]constraint.Value) (constraint.Value, error) {
	p := &exprParser{input: s, env: env}
	p.skipSpace()
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected trailing input %q", p.input[p.pos:])
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
	env   map[string]constraint.Value
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *exprParser) parseIdent() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '(' || c == ')' || c == ',' || c == ' ' || c == '\t' {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *exprParser) parseArgs() ([]string, error) {
	var args []string
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return args, nil
	}
	for {
		depth := 0
		start := p.pos
		for p.pos < len(p.input) {
			switch p.input[p.pos] {
			case '(':
				depth++
			case ')':
				if depth == 0 {
					goto doneArg
				}
				depth--
			case ',':
				if depth == 0 {
					goto doneArg
				}
			}
			p.pos++
		}
	doneArg:
		args = append(args, strings.TrimSpace(p.input[start:p.pos]))
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if p.peek() == ')' {
			p.pos++
			return args, nil
		}
		return nil, fmt.Errorf("unterminated argument list in %q", p.input)
	}
}

func (p *exprParser) parseExpr() (constraint.Value, error) {
	name := p.parseIdent()
	if name == "" {
		return nil, fmt.Errorf("expected identifier at %q", p.input[p.pos:])
	}

	if p.peek() != '(' {
		return p.resolveBare(name)
	}
	p.pos++ // consume '('
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return p.build(name, args)
}

func (p *exprParser) resolveBare(name string) (constraint.Value, error) {
	switch name {
	case "Top":
		return constraint.Top{}, nil
	case "Bottom":
		return constraint.Bottom{}, nil
	case "Int":
		return constraint.Int{}, nil
	case "Float":
		return constraint.Float{}, nil
	case "Bool":
		return constraint.Bool{}, nil
	case "String":
		return constraint.String{}, nil
	}
	v, ok := p.env[name]
	if !ok {
		return nil, fmt.Errorf("unknown name %q", name)
	}
	return v, nil
}

func (p *exprParser) build(name string, args []string) (constraint.Value, error) {
	switch name {
	case "Literal":
		if len(args) != 1 {
			return nil, fmt.Errorf("Literal takes exactly one argument")
		}
		return parseLiteral(args[0])

	case "Bound":
		return buildBound(args, false)
	case "BoundEx":
		return buildBound(args, true)

	case "FloatBound":
		return buildFloatBound(args, false)
	case "FloatBoundEx":
		return buildFloatBound(args, true)

	case "Union":
		vs, err := p.evalEach(args)
		if err != nil {
			return nil, err
		}
		return constraint.MakeUnion(vs), nil

	case "Tuple":
		vs, err := p.evalEach(args)
		if err != nil {
			return nil, err
		}
		return constraint.MakeTuple(vs), nil

	case "Pair":
		if len(args) != 2 {
			return nil, fmt.Errorf("Pair takes exactly two arguments")
		}
		vs, err := p.evalEach(args)
		if err != nil {
			return nil, err
		}
		return constraint.MakePair(vs[0], vs[1]), nil

	case "Difference":
		if len(args) != 2 {
			return nil, fmt.Errorf("Difference takes exactly two arguments")
		}
		vs, err := p.evalEach(args)
		if err != nil {
			return nil, err
		}
		return constraint.MakeDifference(vs[0], vs[1]), nil
	}
	return nil, fmt.Errorf("unknown constructor %q", name)
}

func (p *exprParser) evalEach(args []string) ([]constraint.Value, error) {
	vs := make([]constraint.Value, len(args))
	for i, a := range args {
		sub := &exprParser{input: a, env: p.env}
		sub.skipSpace()
		v, err := sub.parseExpr()
		if err != nil {
			return nil, err
		}
		sub.skipSpace()
		if sub.pos != len(sub.input) {
			return nil, fmt.Errorf("unexpected trailing input %q", sub.input[sub.pos:])
		}
		vs[i] = v
	}
	return vs, nil
}

func parseLiteral(s string) (constraint.Value, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return constraint.LiteralString(s[1 : len(s)-1]), nil
	}
	if s == "true" || s == "false" {
		return constraint.LiteralBool(s == "true"), nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return constraint.LiteralInt(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return constraint.NewLiteralFloat(f), nil
	}
	return nil, fmt.Errorf("cannot parse literal %q", s)
}

func buildBound(args []string, exclusive bool) (constraint.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("Bound takes exactly two arguments")
	}
	lo, err := parseIntEndpoint(args[0], exclusive)
	if err != nil {
		return nil, err
	}
	hi, err := parseIntEndpoint(args[1], exclusive)
	if err != nil {
		return nil, err
	}
	return constraint.NewBound(lo, hi), nil
}

func parseIntEndpoint(s string, exclusive bool) (constraint.IntEndpoint, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "-inf":
		return constraint.IntNegInf(), nil
	case "+inf":
		return constraint.IntPosInf(), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return constraint.IntEndpoint{}, fmt.Errorf("invalid integer endpoint %q: %w", s, err)
	}
	if exclusive {
		return constraint.IntExclusive(n), nil
	}
	return constraint.IntInclusive(n), nil
}

func buildFloatBound(args []string, exclusive bool) (constraint.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("FloatBound takes exactly two arguments")
	}
	lo, err := parseFloatEndpoint(args[0], exclusive)
	if err != nil {
		return nil, err
	}
	hi, err := parseFloatEndpoint(args[1], exclusive)
	if err != nil {
		return nil, err
	}
	return constraint.NewFloatBound(lo, hi), nil
}

func parseFloatEndpoint(s string, exclusive bool) (constraint.FloatEndpoint, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "-inf":
		return constraint.FloatNegInf(), nil
	case "+inf":
		return constraint.FloatPosInf(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return constraint.FloatEndpoint{}, fmt.Errorf("invalid float endpoint %q: %w", s, err)
	}
	if exclusive {
		return constraint.FloatExclusive(f), nil
	}
	return constraint.FloatInclusive(f), nil
}
