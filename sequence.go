package listsplit

// Sequence is the capability a type S has to provide to be splittable.
// S is a finite, randomly indexable sequence of elements of type E.
//
// Implementations are expected to be stateless; the same capability value is
// used for all the sequences of a Splitter, possibly concurrently.
//
// Invariants:
//
//   Concat(Empty(), x) == x == Concat(x, Empty())
//   Len(Slice(s, i, j)) == j - i    for 0 <= i <= j <= Len(s)
//
type Sequence[S, E any] interface {
	At(s S, i int) E             // element at position i
	Slice(s S, start, end int) S // sub-sequence [start:end]; end < 0 means 'to the end'
	Concat(a, b S) S             // a followed by b, without modifying either
	Len(s S) int                 // number of elements
	IndexOf(s S, e E) int        // position of the first e in s, or -1
	Empty() S                    // the zero-length sequence
}

// Map applies fn to every element of s, in sequence.
//
// Methods cannot have type parameters of their own, therefore mapping is
// done by a function on top of a capability.
func Map[S, E, R any](seq Sequence[S, E], s S, fn func(E) R) []R {
	l := seq.Len(s)
	r := make([]R, l)
	for i := 0; i < l; i++ {
		r[i] = fn(seq.At(s, i))
	}
	return r
}

// --- Slices ----------------------------------------------------------------

// Slices is the sequence capability for slices of comparable elements.
type Slices[E comparable] struct{}

var _ Sequence[[]int, int] = Slices[int]{}

// At is part of interface Sequence.
func (Slices[E]) At(s []E, i int) E {
	return s[i]
}

// Slice is part of interface Sequence. The result shares memory with s.
func (Slices[E]) Slice(s []E, start, end int) []E {
	if end < 0 {
		end = len(s)
	}
	return s[start:end:end]
}

// Concat is part of interface Sequence. It always returns fresh memory
// unless one of the operands is empty.
func (Slices[E]) Concat(a, b []E) []E {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	c := make([]E, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}

// Len is part of interface Sequence.
func (Slices[E]) Len(s []E) int {
	return len(s)
}

// IndexOf is part of interface Sequence.
func (Slices[E]) IndexOf(s []E, e E) int {
	for i, x := range s {
		if x == e {
			return i
		}
	}
	return -1
}

// Empty is part of interface Sequence.
func (Slices[E]) Empty() []E {
	return []E{}
}

// --- Runes -----------------------------------------------------------------

// Runes is the sequence capability for text, represented as a slice of
// Unicode code-points.
type Runes struct {
	Slices[rune]
}

var _ Sequence[[]rune, rune] = Runes{}
