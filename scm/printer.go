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
	"strconv"
	"strings"
)

// Repr is the total printer over every Value variant. There is no string
// value type here that could make a result large enough to warrant an
// io.Writer-streamed printer, so a strings.Builder keeps this simple.
func Repr(v Value) string {
	var b strings.Builder
	writeRepr(&b, v)
	return b.String()
}

func writeRepr(b *strings.Builder, v Value) {
	switch e := v.(type) {
	case int64:
		b.WriteString(strconv.FormatInt(e, 10))
	case bool:
		if e {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case Symbol:
		b.WriteString(string(e))
	case *Builtin:
		b.WriteString(e.Name)
	case *Closure:
		b.WriteString("unknown lambda")
	case *Grammar:
		b.WriteString("#<parser>")
	case *Pair:
		writePairRepr(b, e)
	default:
		b.WriteString("#<unknown>")
	}
}

// writePairRepr implements the pair-printing rule: nested pairs in cdr
// position elide their own parens (one space separator), a non-pair
// non-empty cdr prints as " . cdr)", and the empty pair closes the list.
func writePairRepr(b *strings.Builder, p *Pair) {
	if p.Empty() {
		b.WriteString("()")
		return
	}
	b.WriteString("(")
	writeRepr(b, p.Car)
	cur := p.Cdr
	for {
		switch tail := cur.(type) {
		case *Pair:
			if tail.Empty() {
				b.WriteString(")")
				return
			}
			b.WriteString(" ")
			writeRepr(b, tail.Car)
			cur = tail.Cdr
		default:
			b.WriteString(" . ")
			writeRepr(b, cur)
			b.WriteString(")")
			return
		}
	}
}
