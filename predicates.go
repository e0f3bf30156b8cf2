package listsplit

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Predicate tests a single element of a sequence.
type Predicate[E any] func(E) bool

// Predicates is an ordered list of predicates. A delimiter matches at position
// p of a sequence s, if
//
//   preds[0](s[p]) && preds[1](s[p+1]) && … && preds[k-1](s[p+k-1])
//
// with k being the width of the predicate list and p+k <= len(s).
type Predicates[E any] []Predicate[E]

// Width is the number of consecutive elements a single delimiter match consumes.
func (preds Predicates[E]) Width() int {
	return len(preds)
}

// When creates a predicate list of width 1, matching elements for which
// fn is true.
func When[E any](fn func(E) bool) Predicates[E] {
	return Predicates[E]{fn}
}

// Equal creates a predicate which tests for equality with e.
func Equal[E comparable](e E) Predicate[E] {
	return func(x E) bool {
		return x == e
	}
}

// OneOfRunes creates a predicate list of width 1, matching any of the runes
// in candidates. Membership is tested against a range table, which pays off
// for larger sets of candidates.
func OneOfRunes(candidates string) Predicates[rune] {
	rt := rangetable.New([]rune(candidates)...)
	return Predicates[rune]{
		func(r rune) bool {
			return unicode.Is(rt, r)
		},
	}
}

// --- Predicate builders of a splitter --------------------------------------

// When creates a predicate list of width 1, matching elements for which
// fn is true. Same as package level function When.
func (sp *Splitter[S, E]) When(fn func(E) bool) Predicates[E] {
	return When(fn)
}

// OneOf creates a predicate list of width 1, matching any element which
// occurs in candidates.
func (sp *Splitter[S, E]) OneOf(candidates S) Predicates[E] {
	seq := sp.seq
	return Predicates[E]{
		func(e E) bool {
			return seq.IndexOf(candidates, e) != -1
		},
	}
}

// OnSubsequence creates a predicate list matching the literal pattern, one
// predicate per element of pattern. The width of the list is the length
// of pattern; an empty pattern results in an invalid predicate list.
func (sp *Splitter[S, E]) OnSubsequence(pattern S) Predicates[E] {
	seq := sp.seq
	l := seq.Len(pattern)
	preds := make(Predicates[E], l)
	for i := 0; i < l; i++ {
		unit := seq.Slice(pattern, i, i+1)
		preds[i] = func(e E) bool { // equality expressed by the capability
			return seq.IndexOf(unit, e) == 0
		}
	}
	return preds
}
