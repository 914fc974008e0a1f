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

// Value is any runtime value the evaluator works with: an int64 (Integer),
// a bool (Boolean), a Symbol, a *Pair, a *Builtin or a *Closure. Eval
// dispatches on the dynamic type with a type switch.
type Value interface{}

// Symbol is an unresolved identifier; it is looked up in the environment
// on evaluation, unlike every other self-evaluating Value variant.
type Symbol string

// Pair is a shared, mutable cons cell. Car == nil marks the distinguished
// empty pair (). Two Values built from the same *Pair alias each other:
// set-car!/set-cdr! mutate in place and the mutation is visible through
// every reference to that pointer.
type Pair struct {
	Car, Cdr   Value
	properList bool // cached at construction time, see DESIGN.md open question 1
}

// EmptyPair is a fresh instance of the canonical (). Pair identity is not
// required to be a singleton: any *Pair with Car == nil is empty.
func EmptyPair() *Pair {
	return &Pair{properList: true}
}

// NewPair conses first onto second, computing the proper-list cache at
// construction time: a pair is a proper list if its cdr is nil (the
// empty pair) or a proper list itself.
func NewPair(first, second Value) *Pair {
	p := &Pair{Car: first, Cdr: second}
	if tail, ok := second.(*Pair); ok {
		p.properList = tail.properList
	} else if second == nil {
		p.properList = true
	}
	return p
}

// Empty reports whether p is the empty pair ().
func (p *Pair) Empty() bool {
	return p == nil || p.Car == nil
}

// ProperList reports the construction-time proper-list cache; mutation
// via set-cdr! does not recompute it (see DESIGN.md).
func (p *Pair) ProperList() bool {
	if p == nil {
		return true
	}
	return p.properList
}

// Builtin is a procedure implemented by the interpreter itself. Every
// builtin shares one contract: Fn receives the unevaluated argument
// expressions and the calling environment, and decides for itself
// whether/how to evaluate them.
type Builtin struct {
	Name    string
	Desc    string
	Min     int // minimum argument count, -1 = no arity check at all (Max is ignored too)
	Max     int // maximum argument count, -1 = unbounded
	Special bool // true: special form that evaluates its args selectively; false: eager procedure (informational, Apply does not read it)
	Fn      func(args []Value, env *Env) Value
}

// Closure is a user-defined procedure: parameters, a body of one or more
// forms, and the environment frame captured at creation time.
type Closure struct {
	Params []Symbol
	Body   []Value
	Env    *Frame
}
