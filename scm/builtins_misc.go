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
	Declare(&Builtin{Name: "builtins", Desc: "lists every registered procedure name", Min: 0, Max: 0, Fn: biBuiltins})
}

// biBuiltins returns a proper list of symbols, one per registered
// procedure, sorted by name. Useful from a REPL to discover what is
// callable without reading documentation.
func biBuiltins(args []Value, env *Env) Value {
	names := BuiltinNames()
	if len(names) == 0 {
		return EmptyPair()
	}
	head := NewPair(Symbol(names[0]), EmptyPair())
	tail := head
	for _, n := range names[1:] {
		cell := NewPair(Symbol(n), EmptyPair())
		tail.Cdr = cell
		tail = cell
	}
	return head
}
