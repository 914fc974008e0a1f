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
	Declare(&Builtin{Name: "+", Min: 0, Max: -1, Fn: fold(0, func(a, b int64) int64 { return a + b })})
	Declare(&Builtin{Name: "*", Min: 0, Max: -1, Fn: fold(1, func(a, b int64) int64 { return a * b })})
	Declare(&Builtin{Name: "-", Min: 2, Max: -1, Fn: foldNoIdentity(func(a, b int64) int64 { return a - b })})
	Declare(&Builtin{Name: "/", Min: 2, Max: -1, Fn: foldNoIdentity(divide)})
	Declare(&Builtin{Name: "min", Min: 1, Max: -1, Fn: foldNoIdentity(minInt)})
	Declare(&Builtin{Name: "max", Min: 1, Max: -1, Fn: foldNoIdentity(maxInt)})
	Declare(&Builtin{Name: "abs", Min: 1, Max: 1, Fn: biAbs})

	Declare(&Builtin{Name: "=", Min: 0, Max: -1, Fn: compare(func(a, b int64) bool { return a == b })})
	Declare(&Builtin{Name: "<", Min: 0, Max: -1, Fn: compare(func(a, b int64) bool { return a < b })})
	Declare(&Builtin{Name: ">", Min: 0, Max: -1, Fn: compare(func(a, b int64) bool { return a > b })})
	Declare(&Builtin{Name: "<=", Min: 0, Max: -1, Fn: compare(func(a, b int64) bool { return a <= b })})
	Declare(&Builtin{Name: ">=", Min: 0, Max: -1, Fn: compare(func(a, b int64) bool { return a >= b })})
}

func asInteger(v Value) int64 {
	n, ok := v.(int64)
	if !ok {
		throwRuntime("expected a number")
	}
	return n
}

func divide(a, b int64) int64 {
	if b == 0 {
		throwRuntime("division by zero")
	}
	return a / b
}

func minInt(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// fold evaluates every argument and combines them left to right starting
// from identity, so zero or one arguments are always well-formed.
func fold(identity int64, op func(a, b int64) int64) func([]Value, *Env) Value {
	return func(args []Value, env *Env) Value {
		result := identity
		for _, a := range args {
			result = op(result, asInteger(Eval(a, env)))
		}
		return result
	}
}

// foldNoIdentity requires at least one argument (the minimum itself is
// enforced by the builtin's Min: 2 for - and /, 1 for min and max),
// combining them left to right with no identity element.
func foldNoIdentity(op func(a, b int64) int64) func([]Value, *Env) Value {
	return func(args []Value, env *Env) Value {
		result := asInteger(Eval(args[0], env))
		for _, a := range args[1:] {
			result = op(result, asInteger(Eval(a, env)))
		}
		return result
	}
}

func biAbs(args []Value, env *Env) Value {
	n := asInteger(Eval(args[0], env))
	if n < 0 {
		return -n
	}
	return n
}

// compare evaluates every argument and checks that adjacent pairs satisfy
// cmp. With 0 or 1 arguments there is nothing to compare, so the result
// is vacuously true.
func compare(cmp func(a, b int64) bool) func([]Value, *Env) Value {
	return func(args []Value, env *Env) Value {
		nums := make([]int64, len(args))
		for i, a := range args {
			nums[i] = asInteger(Eval(a, env))
		}
		for i := 1; i < len(nums); i++ {
			if !cmp(nums[i-1], nums[i]) {
				return false
			}
		}
		return true
	}
}
