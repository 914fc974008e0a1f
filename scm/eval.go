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

import "fmt"

// Eval is the one recursive evaluate(value, env) -> value operation,
// dispatching on the dynamic type of v.
func Eval(v Value, env *Env) Value {
	switch e := v.(type) {
	case int64, bool, *Builtin, *Closure:
		return e
	case Symbol:
		return env.lookup(e)
	case *Pair:
		if e.Empty() {
			throwRuntime("cannot evaluate the empty application ()")
		}
		proc := Eval(e.Car, env)
		return Apply(proc, collect(e.Cdr), env)
	default:
		throwRuntime(fmt.Sprintf("unevaluable value of type %T", v))
		return nil
	}
}

// Apply dispatches a procedure value over its unevaluated argument
// expressions. Eval hands over whatever the head evaluated to; any value
// other than a *Builtin or *Closure raises a RuntimeError here.
func Apply(proc Value, argExprs []Value, env *Env) Value {
	switch p := proc.(type) {
	case *Builtin:
		return applyBuiltin(p, argExprs, env)
	case *Closure:
		return applyClosure(p, argExprs, env)
	default:
		throwRuntime(fmt.Sprintf("cannot apply non-procedure value of type %T", proc))
		return nil
	}
}

func applyBuiltin(b *Builtin, args []Value, env *Env) Value {
	if b.Min >= 0 {
		if len(args) < b.Min || (b.Max >= 0 && len(args) > b.Max) {
			throwRuntime(fmt.Sprintf("%s: wrong number of arguments (got %d)", b.Name, len(args)))
		}
	}
	return b.Fn(args, env)
}

// applyClosure implements closure application: evaluate every actual
// argument in the caller's env, allocate a fresh frame whose parent is
// the captured frame (not the caller's), bind the parameters, then
// evaluate the body forms in sequence and return the last one.
func applyClosure(c *Closure, argExprs []Value, env *Env) Value {
	if len(argExprs) != len(c.Params) {
		throwRuntime(fmt.Sprintf("closure expected %d arguments, got %d", len(c.Params), len(argExprs)))
	}
	args := evalEach(argExprs, env)

	call := env.Child(c.Env)
	for i, p := range c.Params {
		call.define(p, args[i])
	}

	var result Value
	for _, form := range c.Body {
		result = Eval(form, call)
	}
	return result
}

// evalEach evaluates every argument expression left-to-right in env, the
// shared helper eager builtins call before doing their own work.
func evalEach(exprs []Value, env *Env) []Value {
	out := make([]Value, len(exprs))
	for i, e := range exprs {
		out[i] = Eval(e, env)
	}
	return out
}

// truthy applies the one falsy rule every conditional form shares: only
// the boolean false is false, every other value (including 0, the empty
// pair and symbols) counts as true.
func truthy(v Value) bool {
	b, ok := v.(bool)
	return !ok || b
}

// collect walks the spine of an argument list tail, which must be a
// proper list, returning its unevaluated elements. Any improper spine is
// a RuntimeError.
func collect(tail Value) []Value {
	var out []Value
	for {
		p, ok := tail.(*Pair)
		if !ok {
			throwRuntime("argument list is not a proper list")
		}
		if p.Empty() {
			return out
		}
		out = append(out, p.Car)
		tail = p.Cdr
	}
}
