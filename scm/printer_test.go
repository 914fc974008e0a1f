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

import "testing"

func TestReprAtoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{int64(0), "0"},
		{int64(42), "42"},
		{int64(-7), "-7"},
		{true, "#t"},
		{false, "#f"},
		{Symbol("foo?"), "foo?"},
		{EmptyPair(), "()"},
	}
	for _, c := range cases {
		if got := Repr(c.v); got != c.want {
			t.Errorf("Repr(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestReprConsCell(t *testing.T) {
	p := NewPair(int64(1), int64(2))
	if got := Repr(p); got != "(1 . 2)" {
		t.Errorf("Repr(cons 1 2) = %q, want (1 . 2)", got)
	}
}

func TestReprProperList(t *testing.T) {
	l := list(int64(1), int64(2), int64(3))
	if got := Repr(l); got != "(1 2 3)" {
		t.Errorf("Repr(list 1 2 3) = %q, want (1 2 3)", got)
	}
}

func TestReprConsOntoNestedQuotedEmpty(t *testing.T) {
	// (cons 1 (cons 2 '())) -> (1 2)
	inner := NewPair(int64(2), EmptyPair())
	outer := NewPair(int64(1), inner)
	if got := Repr(outer); got != "(1 2)" {
		t.Errorf("Repr = %q, want (1 2)", got)
	}
}

func TestReprClosureIsOpaque(t *testing.T) {
	c := &Closure{Body: []Value{int64(1)}}
	if got := Repr(c); got != "unknown lambda" {
		t.Errorf("Repr(closure) = %q, want %q", got, "unknown lambda")
	}
}

func TestReprBuiltinIsItsName(t *testing.T) {
	b := LookupBuiltin("car")
	if b == nil {
		t.Fatal("car is not registered")
	}
	if got := Repr(b); got != "car" {
		t.Errorf("Repr(car builtin) = %q, want car", got)
	}
}
