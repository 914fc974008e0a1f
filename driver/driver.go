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

// Package driver wires the reader and the evaluator into a single
// top-level Run call, the boundary where panics raised during evaluation
// get classified into ordinary Go errors.
package driver

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/launix-de/goscm/reader"
	"github.com/launix-de/goscm/scm"
)

// Session is one long-lived root environment: definitions made by one
// Run call are visible to the next, the way a REPL or a loaded script
// behaves. The zero value is not usable; call NewSession. A Session's
// Run is safe to call from multiple goroutines: a mutex serializes
// requests so a network front end attached to the same Session never
// evaluates two programs concurrently against the shared arena.
type Session struct {
	mu    sync.Mutex
	arena *scm.Arena
	env   *scm.Env
	trace *Tracer
}

func NewSession() *Session {
	a := scm.NewArena()
	return &Session{arena: a, env: a.Root()}
}

// WithTracer attaches a Tracer that records the number of live frames
// before and after every call to Run.
func (s *Session) WithTracer(t *Tracer) *Session {
	s.trace = t
	return s
}

// Run parses exactly one expression from source, evaluates it in the
// session's root environment, reclaims unreachable frames and returns
// the printed result. Empty or whitespace-only source returns "".
func (s *Session) Run(source string) (result string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	before := s.arena.Live()

	v, perr := reader.Parse(source)
	if perr != nil {
		s.logRun(id, source, false, perr.Error(), before, before)
		return "", scm.SyntaxError{Msg: perr.Error()}
	}
	if v == nil {
		s.logRun(id, source, true, "", before, before)
		return "", nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = classify(r)
			s.arena.Clear()
			s.logRun(id, source, false, err.Error(), before, s.arena.Live())
		}
	}()

	val := scm.Eval(v, s.env)
	s.arena.Clear()
	result = scm.Repr(val)
	s.logRun(id, source, true, "", before, s.arena.Live())
	return result, nil
}

// classify turns a recovered panic into one of the three typed errors,
// wrapping anything unrecognized as a RuntimeError rather than letting
// an internal invariant violation escape as a bare interface{}.
func classify(r interface{}) error {
	switch e := r.(type) {
	case scm.SyntaxError:
		return e
	case scm.RuntimeError:
		return e
	case scm.NameError:
		return e
	case error:
		return scm.RuntimeError{Msg: e.Error()}
	default:
		return scm.RuntimeError{Msg: fmt.Sprintf("%v", e)}
	}
}
