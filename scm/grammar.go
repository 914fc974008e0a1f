/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"

	packrat "github.com/launix-de/go-packrat/v2"
)

// Grammar is a compiled packrat parser together with the environment it
// was built in and the optional generator expression run against the
// captured variables once a parse succeeds.
type Grammar struct {
	root      packrat.Parser
	generator Value
	env       *Env
}

// variableCapture marks a (define name sub) node so its match can be
// bound into the generator's environment by name.
type variableCapture struct {
	sub  packrat.Parser
	name Symbol
}

func (v *variableCapture) Match(s *packrat.Scanner) *packrat.Node {
	m := v.sub.Match(s)
	if m == nil {
		return nil
	}
	return &packrat.Node{Matched: m.Matched, Start: m.Start, Parser: v, Children: []*packrat.Node{m}}
}

func init() {
	Declare(&Builtin{
		Name: "parser",
		Desc: "(parser syntax [generator]) compiles a grammar into a reusable parser value",
		Min:  1, Max: 2, Special: true,
		Fn: biParser,
	})
	Declare(&Builtin{
		Name: "parse",
		Desc: "(parse parser-value text) runs a compiled parser against text",
		Min:  2, Max: 2,
		Fn: biParse,
	})
}

func biParser(args []Value, env *Env) Value {
	g := &Grammar{env: env}
	g.root = compileSyntax(args[0], env)
	if len(args) == 2 {
		g.generator = args[1]
	}
	return g
}

func biParse(args []Value, env *Env) Value {
	g, ok := Eval(args[0], env).(*Grammar)
	if !ok {
		throwRuntime("parse: first argument must be a parser value")
	}
	text, ok := Eval(args[1], env).(Symbol)
	if !ok {
		throwRuntime("parse: second argument must be text (given as a symbol)")
	}
	scanner := packrat.NewScanner(string(text), packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse(g.root, scanner)
	if err != nil {
		throwRuntime("parse: " + err.Error())
	}
	if g.generator == nil {
		return extractValue(node)
	}
	call := g.env.Child(g.env.Frame)
	findCaptures(node, call)
	return Eval(g.generator, call)
}

// compileSyntax turns a syntax description written in the language
// itself into a packrat.Parser, mirroring the grammar DSL: symbols
// reference a previously-bound parser (or the special names $ and empty),
// and lists dispatch on their head symbol; literal text appears only as
// the symbol argument of (atom text) or (regex text).
func compileSyntax(syntax Value, env *Env) packrat.Parser {
	switch n := syntax.(type) {
	case Symbol:
		switch n {
		case "$":
			return packrat.NewEndParser(true)
		case "empty":
			return packrat.NewEmptyParser()
		default:
			g, ok := env.lookup(n).(*Grammar)
			if !ok {
				throwSyntax("parser: " + string(n) + " is not a parser value")
			}
			return g.root
		}
	case *Pair:
		return compilePairSyntax(n, env)
	default:
		throwSyntax(fmt.Sprintf("parser: unsupported syntax element %v", syntax))
		return nil
	}
}

func compilePairSyntax(n *Pair, env *Env) packrat.Parser {
	if n.Empty() {
		throwSyntax("parser: empty syntax list")
	}
	head, ok := n.Car.(Symbol)
	if !ok {
		throwSyntax("parser: syntax list must start with an identifier")
	}
	rest := collect(n.Cdr)
	switch head {
	case "atom":
		return packrat.NewAtomParser(literalText(rest[0], env), false, true)
	case "regex":
		return packrat.NewRegexParser(literalText(rest[0], env), false, true)
	case "list", "and":
		return packrat.NewAndParser(compileEach(rest, env)...)
	case "or":
		return packrat.NewOrParser(compileEach(rest, env)...)
	case "*":
		return packrat.NewKleeneParser(compileSyntax(rest[0], env), optionalSep(rest, env))
	case "+":
		return packrat.NewManyParser(compileSyntax(rest[0], env), optionalSep(rest, env))
	case "?":
		if len(rest) == 1 {
			return packrat.NewMaybeParser(compileSyntax(rest[0], env))
		}
		return packrat.NewMaybeParser(packrat.NewAndParser(compileEach(rest, env)...))
	case "define":
		name, ok := rest[0].(Symbol)
		if !ok {
			throwSyntax("parser: define's first argument must be an identifier")
		}
		return &variableCapture{sub: compileSyntax(rest[1], env), name: name}
	default:
		throwSyntax("parser: unknown syntax keyword " + string(head))
		return nil
	}
}

func optionalSep(rest []Value, env *Env) packrat.Parser {
	if len(rest) > 1 {
		return compileSyntax(rest[1], env)
	}
	return packrat.NewEmptyParser()
}

func compileEach(vs []Value, env *Env) []packrat.Parser {
	out := make([]packrat.Parser, len(vs))
	for i, v := range vs {
		out[i] = compileSyntax(v, env)
	}
	return out
}

func literalText(v Value, env *Env) string {
	if s, ok := v.(Symbol); ok {
		return string(s)
	}
	throwSyntax("parser: expected a literal atom/regex text")
	return ""
}

// extractValue walks a matched parse tree back into a Value. It does not
// run a generator; biParse does that after findCaptures has bound the
// captured variables in a fresh child frame.
func extractValue(n *packrat.Node) Value {
	switch n.Parser.(type) {
	case *variableCapture:
		return extractValue(n.Children[0])
	case *packrat.OrParser:
		return extractValue(n.Children[0])
	case *packrat.KleeneParser, *packrat.ManyParser:
		result := EmptyPair()
		var tail *Pair
		for i := 0; i < len(n.Children); i += 2 {
			cell := NewPair(extractValue(n.Children[i]), EmptyPair())
			if tail == nil {
				result = cell
			} else {
				tail.Cdr = cell
			}
			tail = cell
		}
		return result
	case *packrat.MaybeParser:
		if len(n.Children) > 0 {
			return extractValue(n.Children[0])
		}
		return EmptyPair()
	default:
		return Symbol(n.Matched)
	}
}

func findCaptures(n *packrat.Node, call *Env) {
	if cap, ok := n.Parser.(*variableCapture); ok {
		call.define(cap.name, extractValue(n.Children[0]))
	}
	for _, c := range n.Children {
		findCaptures(c, call)
	}
}
