package listsplit

import (
	"github.com/npillmayer/listsplit/segment"
)

// A Splitter bundles the breaker, the predicate builders, the transforms and
// the split functions for one type of sequence. Splitters are created for a
// Sequence capability and are safe for concurrent use.
//
//   sp := listsplit.New[[]rune, rune](listsplit.Runes{})
//   parts, err := sp.SplitOneOf([]rune(",."), []rune("ab,cd.ef"))
//
type Splitter[S, E any] struct {
	seq      Sequence[S, E] // capability for sequences of type S
	scanners *scannerPool   // breaking state
}

// New creates a Splitter for sequences with capability seq.
// New panics if seq is nil.
func New[S, E any](seq Sequence[S, E]) *Splitter[S, E] {
	if seq == nil {
		panic("listsplit.New: sequence capability may not be nil")
	}
	return &Splitter[S, E]{
		seq:      seq,
		scanners: newScannerPool(seq),
	}
}

// ForRunes creates a Splitter for text, represented as rune slices.
func ForRunes() *Splitter[[]rune, rune] {
	return New[[]rune, rune](Runes{})
}

// ForSlices creates a Splitter for slices of comparable elements.
func ForSlices[E comparable]() *Splitter[[]E, E] {
	return New[[]E, E](Slices[E]{})
}

// Sequence returns the sequence capability of a splitter.
func (sp *Splitter[S, E]) Sequence() Sequence[S, E] {
	return sp.seq
}

// Break finds every position in input where preds match, and partitions the
// input into alternating text and delimiter segments.
//
// The result ends with a text segment, which may be empty. Consecutive
// delimiters are not separated by blank text segments. A text run of length 1
// immediately in front of a delimiter is not reported; an empty text run is
// reported only at the start of the input.
//
// Break returns ErrInvalidPredicates if preds is empty.
func (sp *Splitter[S, E]) Break(preds Predicates[E], input S) ([]segment.Segment[S], error) {
	if preds.Width() == 0 {
		return nil, ErrInvalidPredicates
	}
	sc := borrowScanner(sp.scanners, sp.seq, preds, input)
	defer sc.releaseInto(sp.scanners)
	CT().Debugf("break: width = %d, input length = %d", preds.Width(), sc.length)
	segs := sc.scan()
	CT().Debugf("break: %d segments", len(segs))
	return segs, nil
}
