// Package fibonacci generates the Fibonacci sequence iteratively.
//
// Terms are 1-indexed: Term(1) = 0, Term(2) = 1. Arithmetic is fixed-width
// uint64 and wraps silently once the sequence leaves the representable range.
package fibonacci

import "iter"

// Term is a single Fibonacci number.
type Term uint64

const (
	FirstTerm  Term = 0
	SecondTerm Term = 1
)

// Emitter receives every generated term in sequence order.
type Emitter interface {
	Emit(Term)
}

// EmitterFunc adapts a plain function to Emitter.
type EmitterFunc func(Term)

func (f EmitterFunc) Emit(t Term) { f(t) }

// Terms yields (position, term) for positions 1..n. Nothing is yielded for
// n <= 0.
//
// Recursion is avoided so the generator runs in constant stack space.
func Terms(n int) iter.Seq2[int, Term] {
	return func(yield func(int, Term) bool) {
		prevPrev, prev := FirstTerm, SecondTerm
		for i := 1; i <= n; i++ {
			var t Term
			switch i {
			case 1:
				t = FirstTerm
			case 2:
				t = SecondTerm
			default:
				t = prev + prevPrev
				prevPrev, prev = prev, t
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// Generate calculates the first n terms, handing each to emit when emit is
// non-nil, and returns the n-th term. n <= 0 returns 0 and emits nothing.
func Generate(n int, emit Emitter) Term {
	var last Term
	for _, t := range Terms(n) {
		if emit != nil {
			emit.Emit(t)
		}
		last = t
	}
	return last
}

// Nth returns the n-th term without emitting anything.
func Nth(n int) Term {
	return Generate(n, nil)
}
