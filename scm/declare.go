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
	nlrm "github.com/launix-de/NonLockingReadMap"
)

// builtinEntry adapts *Builtin to NonLockingReadMap's KeyGetter/Sizable
// contract. The table is written once per process (every Declare call
// happens from an init()) and read afterwards only when NewArena binds
// every builtin into a root frame and by the (builtins) procedure;
// symbols resolve through the environment, not through this table. That
// is the read-mostly, write-once access pattern this map is built for,
// unlike per-call-mutated frame vars (which stay a plain Go map, see
// DESIGN.md).
type builtinEntry struct {
	name string
	b    *Builtin
}

func (e *builtinEntry) GetKey() string { return e.name }

func (e *builtinEntry) ComputeSize() uint {
	return uint(len(e.name)) + 48
}

var builtinTable = nlrm.New[*builtinEntry, string]()

// Declare registers a builtin under its own Name. Every builtin's Fn
// takes (unevaluated args, env) and decides for itself whether/how to
// evaluate them, so special forms and eager procedures share one
// registration path.
func Declare(b *Builtin) {
	builtinTable.Set(&builtinEntry{b.Name, b})
}

// LookupBuiltin returns the builtin registered under name, or nil.
func LookupBuiltin(name string) *Builtin {
	if e := builtinTable.Get(name); e != nil {
		return (*e).b
	}
	return nil
}

// BuiltinNames returns every registered builtin name, sorted, backing the
// (builtins) introspection procedure declared in builtins_misc.go.
func BuiltinNames() []string {
	all := builtinTable.GetAll()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = (*e).name
	}
	// NonLockingReadMap keeps its backing slice sorted by key already
	// (see third_party/NonLockingReadMap/main.go Set()), so this is
	// already in order; no extra sort needed.
	return names
}
