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

// The three classified failure kinds. Evaluation raises them by
// panicking, unwinding the recursive Eval/Apply call stack; driver.Run
// recovers and reports them, and nothing here catches its own panics
// mid-evaluation.

// SyntaxError signals that the program is structurally malformed.
type SyntaxError struct{ Msg string }

func (e SyntaxError) Error() string { return "SyntaxError: " + e.Msg }

// RuntimeError signals a valid-looking program reaching an invalid
// operation: arity mismatch, type mismatch, car/cdr of non-pair, division
// by zero, applying a non-procedure, empty application.
type RuntimeError struct{ Msg string }

func (e RuntimeError) Error() string { return "RuntimeError: " + e.Msg }

// NameError signals that identifier lookup failed in every enclosing frame.
type NameError struct{ Msg string }

func (e NameError) Error() string { return "NameError: " + e.Msg }

func throwSyntax(msg string) { panic(SyntaxError{msg}) }
func throwRuntime(msg string) { panic(RuntimeError{msg}) }
func throwName(msg string) { panic(NameError{msg}) }
