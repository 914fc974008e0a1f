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
	"sync"

	"github.com/google/btree"
)

// frameEntry is the btree element: frames are ordered by allocation id so
// a Clear() sweep produces deterministic, reproducible traces.
type frameEntry struct {
	id    int64
	frame *Frame
}

func lessFrameEntry(a, b frameEntry) bool { return a.id < b.id }

// Arena owns every frame ever allocated, including the root. Allocation
// returns a stable pointer; the only way to free frames back is Clear().
// Frames are indexed in a github.com/google/btree BTreeG keyed by
// allocation id, so a Clear() sweep removes arbitrary frame ids without
// compacting a big slice.
type Arena struct {
	mu     sync.Mutex
	frames *btree.BTreeG[frameEntry]
	nextID int64
	root   *Frame
}

// NewArena creates an arena with a single live root frame that has no
// parent and every registered procedure already bound by name. The root
// frame is permanent: Clear() always keeps it regardless of reachability.
func NewArena() *Arena {
	a := &Arena{frames: btree.NewG(32, lessFrameEntry)}
	a.root = a.allocate(nil)
	for _, name := range BuiltinNames() {
		a.root.define(Symbol(name), LookupBuiltin(name))
	}
	return a
}

// Root returns an *Env bound to the arena's permanent root frame.
func (a *Arena) Root() *Env {
	return newEnv(a.root, a)
}

func (a *Arena) allocate(parent *Frame) *Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	f := &Frame{id: a.nextID, vars: make(map[Symbol]Value), parent: parent}
	a.frames.ReplaceOrInsert(frameEntry{f.id, f})
	return f
}

// Clear performs a reachability sweep: seed the keep-set with the root,
// then for every kept frame's bound Closures add their captured frame,
// to a fixpoint; drop everything else. Clear must only be called between
// top-level forms, never during an active evaluation — that timing
// contract is the caller's responsibility.
func (a *Arena) Clear() (cleared int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	keep := map[int64]bool{a.root.id: true}
	queue := []*Frame{a.root}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, v := range f.vars {
			if c, ok := v.(*Closure); ok && c.Env != nil {
				if !keep[c.Env.id] {
					keep[c.Env.id] = true
					queue = append(queue, c.Env)
				}
			}
		}
	}

	fresh := btree.NewG(32, lessFrameEntry)
	total := 0
	a.frames.Ascend(func(e frameEntry) bool {
		total++
		if keep[e.id] {
			fresh.ReplaceOrInsert(e)
		}
		return true
	})
	cleared = total - fresh.Len()
	a.frames = fresh
	return cleared
}

// Live returns the number of frames currently tracked by the arena,
// exposed for tests of the reclaimer's reachability property.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames.Len()
}

// Has reports whether a frame with the given id is still tracked.
func (a *Arena) Has(id int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.frames.Get(frameEntry{id: id})
	return ok
}
