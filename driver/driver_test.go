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
package driver

import (
	"testing"

	"github.com/launix-de/goscm/scm"
)

func kindOf(err error) string {
	switch err.(type) {
	case scm.SyntaxError:
		return "SyntaxError"
	case scm.RuntimeError:
		return "RuntimeError"
	case scm.NameError:
		return "NameError"
	default:
		return "unknown"
	}
}

func mustRun(t *testing.T, s *Session, src string) string {
	t.Helper()
	result, err := s.Run(src)
	if err != nil {
		t.Fatalf("Run(%q): unexpected error: %v", src, err)
	}
	return result
}

func mustError(t *testing.T, s *Session, src string) error {
	t.Helper()
	_, err := s.Run(src)
	if err == nil {
		t.Fatalf("Run(%q): expected an error, got none", src)
	}
	return err
}

func TestEmptySourceReturnsEmptyString(t *testing.T) {
	s := NewSession()
	got := mustRun(t, s, "")
	if got != "" {
		t.Errorf("Run(\"\") = %q, want \"\"", got)
	}
	got = mustRun(t, s, "   \n\t  ")
	if got != "" {
		t.Errorf("Run(whitespace) = %q, want \"\"", got)
	}
}

func TestAtomPrintingRoundTrip(t *testing.T) {
	s := NewSession()
	for _, in := range []string{"0", "1", "-1", "42", "-999", "#t", "#f"} {
		if got := mustRun(t, s, in); got != in {
			t.Errorf("Run(%q) = %q, want %q", in, got, in)
		}
	}
}

func TestQuoteIdentity(t *testing.T) {
	s := NewSession()
	cases := map[string]string{
		"'1":         "1",
		"'x":         "x",
		"'(1 2 3)":   "(1 2 3)",
		"'(1 . 2)":   "(1 . 2)",
		"'()":        "()",
		"(quote 5)":  "5",
		"(quote () )": "()",
	}
	for in, want := range cases {
		if got := mustRun(t, s, in); got != want {
			t.Errorf("Run(%q) = %q, want %q", in, got, want)
		}
	}
}

// Scenario 1: (and 1 2 'c '(f g)) -> (f g)
func TestScenarioAnd(t *testing.T) {
	s := NewSession()
	if got := mustRun(t, s, "(and 1 2 'c '(f g))"); got != "(f g)" {
		t.Errorf("got %q, want (f g)", got)
	}
}

// Scenario 2: (or #f (< 2 1)) -> #f
func TestScenarioOr(t *testing.T) {
	s := NewSession()
	if got := mustRun(t, s, "(or #f (< 2 1))"); got != "#f" {
		t.Errorf("got %q, want #f", got)
	}
}

// Scenario 3: (list-tail '(1 2 3) 1) -> (2 3)
func TestScenarioListTail(t *testing.T) {
	s := NewSession()
	if got := mustRun(t, s, "(list-tail '(1 2 3) 1)"); got != "(2 3)" {
		t.Errorf("got %q, want (2 3)", got)
	}
}

// Scenario 4: closure capture by reference to the defining frame, not by
// copy. range closes over x; each call to my-range mutates that same x.
func TestScenarioClosureCaptureByReference(t *testing.T) {
	s := NewSession()
	mustRun(t, s, "(define x 1)")
	mustRun(t, s, "(define range (lambda (x) (lambda () (set! x (+ x 1)) x)))")
	mustRun(t, s, "(define my-range (range 10))")
	if got := mustRun(t, s, "(my-range)"); got != "11" {
		t.Errorf("1st call = %q, want 11", got)
	}
	if got := mustRun(t, s, "(my-range)"); got != "12" {
		t.Errorf("2nd call = %q, want 12", got)
	}
	if got := mustRun(t, s, "(my-range)"); got != "13" {
		t.Errorf("3rd call = %q, want 13", got)
	}
	if got := mustRun(t, s, "x"); got != "1" {
		t.Errorf("top-level x = %q, want 1 (range's parameter shadows it)", got)
	}
}

// Scenario 5: (define (fib x) (if (< x 3) 1 (+ (fib (- x 1)) (fib (- x 2))))) (fib 7) -> 13
func TestScenarioFib(t *testing.T) {
	s := NewSession()
	mustRun(t, s, "(define (fib x) (if (< x 3) 1 (+ (fib (- x 1)) (fib (- x 2)))))")
	if got := mustRun(t, s, "(fib 7)"); got != "13" {
		t.Errorf("got %q, want 13", got)
	}
}

// Scenario 6: a later top-level `(define foo ...)` must not clobber a
// closure that already captured foo's earlier defining frame.
func TestScenarioShadowingDoesNotAffectCapturedClosure(t *testing.T) {
	s := NewSession()
	mustRun(t, s, "(define (foo x) (define (bar) (set! x (+ (* x 2) 2)) x) bar)")
	mustRun(t, s, "(define my-foo (foo 20))")
	mustRun(t, s, "(define foo 1543)")
	if got := mustRun(t, s, "(my-foo)"); got != "42" {
		t.Errorf("got %q, want 42", got)
	}
}

func TestShortCircuitAndStopsAtFirstFalse(t *testing.T) {
	s := NewSession()
	mustRun(t, s, "(define touched #f)")
	mustRun(t, s, "(and #f (set! touched #t))")
	if got := mustRun(t, s, "touched"); got != "#f" {
		t.Errorf("and evaluated past its first false value: touched = %q", got)
	}
}

func TestShortCircuitOrStopsAtFirstTrue(t *testing.T) {
	s := NewSession()
	mustRun(t, s, "(define touched #f)")
	mustRun(t, s, "(or 1 (set! touched #t))")
	if got := mustRun(t, s, "touched"); got != "#f" {
		t.Errorf("or evaluated past its first true value: touched = %q", got)
	}
}

func TestPairAliasingThroughSetCar(t *testing.T) {
	s := NewSession()
	mustRun(t, s, "(define x (cons 1 2))")
	mustRun(t, s, "(set-car! x 5)")
	if got := mustRun(t, s, "(car x)"); got != "5" {
		t.Errorf("(car x) = %q, want 5", got)
	}
	if got := mustRun(t, s, "(cdr x)"); got != "2" {
		t.Errorf("(cdr x) = %q, want 2", got)
	}
}

func TestListPredicateHonesty(t *testing.T) {
	s := NewSession()
	if got := mustRun(t, s, "(list? '())"); got != "#t" {
		t.Errorf("(list? '()) = %q, want #t", got)
	}
	if got := mustRun(t, s, "(list? '(1 2 3))"); got != "#t" {
		t.Errorf("(list? '(1 2 3)) = %q, want #t", got)
	}
	if got := mustRun(t, s, "(list? '(1 . 2))"); got != "#f" {
		t.Errorf("(list? '(1 . 2)) = %q, want #f", got)
	}
}

func TestReclaimerPreservesReachableClosureFrame(t *testing.T) {
	s := NewSession()
	mustRun(t, s, "(define (make-counter) (define n 0) (lambda () (set! n (+ n 1)) n))")
	mustRun(t, s, "(define counter (make-counter))")
	mustRun(t, s, "(define make-counter 0)") // drop the only other reference
	if got := mustRun(t, s, "(counter)"); got != "1" {
		t.Errorf("(counter) after dropping make-counter = %q, want 1", got)
	}
	if got := mustRun(t, s, "(counter)"); got != "2" {
		t.Errorf("(counter) second call = %q, want 2", got)
	}
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind string
	}{
		{"unbound identifier", "totally-unbound-name", "NameError"},
		{"set! of unbound", "(set! totally-unbound-name 1)", "NameError"},
		{"empty application", "()", "RuntimeError"},
		{"apply non-procedure", "(1 2 3)", "RuntimeError"},
		{"division by zero", "(/ 1 0)", "RuntimeError"},
		{"car of empty", "(car '())", "RuntimeError"},
		{"if with one arg", "(if #t)", "SyntaxError"},
		{"if with four args", "(if #t 1 2 3)", "SyntaxError"},
		{"trailing tokens", "1 2", "SyntaxError"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSession()
			err := mustError(t, s, c.src)
			if got := kindOf(err); got != c.kind {
				t.Errorf("Run(%q) error kind = %s, want %s (%v)", c.src, got, c.kind, err)
			}
		})
	}
}
