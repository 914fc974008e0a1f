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

// Package reader turns a token slice into a single value tree: a
// recursive-descent parser that pops tokens off the front of a slice,
// the same shape as a classic readFrom(tokens *[]Token).
package reader

import (
	"fmt"

	"github.com/launix-de/goscm/lexer"
	"github.com/launix-de/goscm/scm"
)

// Parse reads exactly one expression from src and reports an error if
// anything is left over afterwards.
func Parse(src string) (scm.Value, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	v, rest, err := readOne(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("unexpected trailing input starting at %s", rest[0])
	}
	return v, nil
}

func readOne(tokens []lexer.Token) (scm.Value, []lexer.Token, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("unexpected end of input")
	}
	tok := tokens[0]
	rest := tokens[1:]
	switch tok.Kind {
	case lexer.Int:
		return tok.Int, rest, nil
	case lexer.Sym:
		switch tok.Text {
		case "#t":
			return true, rest, nil
		case "#f":
			return false, rest, nil
		default:
			return scm.Symbol(tok.Text), rest, nil
		}
	case lexer.Quote:
		inner, rest2, err := readOne(rest)
		if err != nil {
			return nil, nil, err
		}
		return scm.NewPair(scm.Symbol("quote"), scm.NewPair(inner, scm.EmptyPair())), rest2, nil
	case lexer.Open:
		return readList(rest)
	case lexer.Close:
		return nil, nil, fmt.Errorf("unexpected )")
	case lexer.Dot:
		return nil, nil, fmt.Errorf("unexpected .")
	default:
		return nil, nil, fmt.Errorf("unrecognized token %s", tok)
	}
}

// readList consumes tokens after an already-seen opening paren, up to
// and including its matching close, building a proper list unless a dot
// introduces an improper tail.
func readList(tokens []lexer.Token) (scm.Value, []lexer.Token, error) {
	var elems []scm.Value
	for {
		if len(tokens) == 0 {
			return nil, nil, fmt.Errorf("unterminated list")
		}
		switch tokens[0].Kind {
		case lexer.Close:
			return buildList(elems, scm.EmptyPair()), tokens[1:], nil
		case lexer.Dot:
			if len(elems) == 0 {
				return nil, nil, fmt.Errorf("dot cannot start a list")
			}
			tail, rest, err := readOne(tokens[1:])
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 || rest[0].Kind != lexer.Close {
				return nil, nil, fmt.Errorf("expected ) after dotted tail")
			}
			return buildList(elems, tail), rest[1:], nil
		default:
			v, rest, err := readOne(tokens)
			if err != nil {
				return nil, nil, err
			}
			elems = append(elems, v)
			tokens = rest
		}
	}
}

func buildList(elems []scm.Value, tail scm.Value) scm.Value {
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = scm.NewPair(elems[i], result)
	}
	return result
}
