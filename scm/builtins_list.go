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
	Declare(&Builtin{Name: "cons", Min: 2, Max: 2, Fn: biCons})
	Declare(&Builtin{Name: "car", Min: 1, Max: 1, Fn: biCar})
	Declare(&Builtin{Name: "cdr", Min: 1, Max: 1, Fn: biCdr})
	Declare(&Builtin{Name: "list", Min: 0, Max: -1, Fn: biList})
	Declare(&Builtin{Name: "list-ref", Min: 2, Max: 2, Fn: biListRef})
	Declare(&Builtin{Name: "list-tail", Min: 2, Max: 2, Fn: biListTail})
}

func biCons(args []Value, env *Env) Value {
	return NewPair(Eval(args[0], env), Eval(args[1], env))
}

func asNonEmptyPair(v Value, who string) *Pair {
	p, ok := v.(*Pair)
	if !ok || p.Empty() {
		throwRuntime(who + ": argument is not a pair")
	}
	return p
}

func biCar(args []Value, env *Env) Value {
	return asNonEmptyPair(Eval(args[0], env), "car").Car
}

func biCdr(args []Value, env *Env) Value {
	return asNonEmptyPair(Eval(args[0], env), "cdr").Cdr
}

func biList(args []Value, env *Env) Value {
	if len(args) == 0 {
		return EmptyPair()
	}
	head := NewPair(Eval(args[0], env), EmptyPair())
	tail := head
	for _, a := range args[1:] {
		cell := NewPair(Eval(a, env), EmptyPair())
		tail.Cdr = cell
		tail = cell
	}
	return head
}

func biListRef(args []Value, env *Env) Value {
	list := asNonEmptyPair(Eval(args[0], env), "list-ref")
	index := asInteger(Eval(args[1], env))
	for i := int64(0); i < index; i++ {
		list = asNonEmptyPair(list.Cdr, "list-ref")
	}
	return list.Car
}

func biListTail(args []Value, env *Env) Value {
	list, ok := Eval(args[0], env).(*Pair)
	if !ok {
		throwRuntime("list-tail: argument is not a pair")
	}
	index := asInteger(Eval(args[1], env))
	var v Value = list
	for i := int64(0); i < index; i++ {
		v = asNonEmptyPair(v, "list-tail").Cdr
	}
	return v
}
