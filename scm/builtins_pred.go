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

func init() {
	Declare(&Builtin{Name: "boolean?", Min: 1, Max: 1, Fn: pred(isBoolean)})
	Declare(&Builtin{Name: "number?", Min: 1, Max: 1, Fn: pred(isNumber)})
	Declare(&Builtin{Name: "symbol?", Min: 1, Max: 1, Fn: pred(isSymbol)})
	Declare(&Builtin{Name: "pair?", Min: 1, Max: 1, Fn: pred(isPair)})
	Declare(&Builtin{Name: "null?", Min: 1, Max: 1, Fn: pred(isNull)})
	Declare(&Builtin{Name: "list?", Min: 1, Max: 1, Fn: pred(isList)})
	Declare(&Builtin{Name: "not", Min: 1, Max: 1, Fn: biNot})
}

// pred adapts a one-argument Go predicate into an eager one-argument
// builtin that evaluates its argument and wraps the result as a Boolean.
func pred(f func(Value) bool) func([]Value, *Env) Value {
	return func(args []Value, env *Env) Value {
		return f(Eval(args[0], env))
	}
}

func isBoolean(v Value) bool {
	_, ok := v.(bool)
	return ok
}

func isNumber(v Value) bool {
	_, ok := v.(int64)
	return ok
}

func isSymbol(v Value) bool {
	_, ok := v.(Symbol)
	return ok
}

// isPair reports true only for a non-empty pair; the empty list is not a
// pair, matching the distinction null? relies on.
func isPair(v Value) bool {
	p, ok := v.(*Pair)
	return ok && !p.Empty()
}

func isNull(v Value) bool {
	p, ok := v.(*Pair)
	return ok && p.Empty()
}

func isList(v Value) bool {
	p, ok := v.(*Pair)
	return ok && p.ProperList()
}

func biNot(args []Value, env *Env) Value {
	return !truthy(Eval(args[0], env))
}
