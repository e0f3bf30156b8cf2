package listsplit

import (
	"github.com/npillmayer/listsplit/segment"
)

// SplitFunc splits an input sequence into a list of sub-sequences. SplitFuncs
// are created with a fixed delimiter and may be called repeatedly.
type SplitFunc[S any] func(input S) ([]S, error)

// Split breaks input at preds, post-processes the segments with post and
// returns the bodies of the remaining segments. A nil post leaves the
// segments untouched.
func (sp *Splitter[S, E]) Split(post Transform[S], preds Predicates[E], input S) ([]S, error) {
	segs, err := sp.Break(preds, input)
	if err != nil {
		return nil, err
	}
	if post != nil {
		segs = post(segs)
	}
	return segment.Bodies(segs), nil
}

// SplitFuncFor binds post and preds, returning a function awaiting the input.
func (sp *Splitter[S, E]) SplitFuncFor(post Transform[S], preds Predicates[E]) SplitFunc[S] {
	return func(input S) ([]S, error) {
		return sp.Split(post, preds, input)
	}
}

// SplitOneOf splits input at every element which occurs in pattern.
// Delimiters are dropped.
//
//   SplitOneOf(",.", "ab,cd.ef")  =>  ["ab", "cd", "ef"]
//
func (sp *Splitter[S, E]) SplitOneOf(pattern S, input S) ([]S, error) {
	return sp.Split(sp.DropDelims, sp.OneOf(pattern), input)
}

// SplitOneOfFunc is the partially applied form of SplitOneOf.
func (sp *Splitter[S, E]) SplitOneOfFunc(pattern S) SplitFunc[S] {
	return sp.SplitFuncFor(sp.DropDelims, sp.OneOf(pattern))
}

// SplitOn splits input at every occurrence of the literal sub-sequence
// pattern. Delimiters are dropped. An empty pattern is an error.
func (sp *Splitter[S, E]) SplitOn(pattern S, input S) ([]S, error) {
	return sp.Split(sp.DropDelims, sp.OnSubsequence(pattern), input)
}

// SplitOnFunc is the partially applied form of SplitOn.
func (sp *Splitter[S, E]) SplitOnFunc(pattern S) SplitFunc[S] {
	return sp.SplitFuncFor(sp.DropDelims, sp.OnSubsequence(pattern))
}

// SplitWhen splits input at every element for which fn is true.
// Delimiters are dropped.
//
//   SplitWhen(x%3 == 0, [1 2 3 4 5 6 7 8])  =>  [[1 2] [4 5] [7 8]]
//
func (sp *Splitter[S, E]) SplitWhen(fn func(E) bool, input S) ([]S, error) {
	return sp.Split(sp.DropDelims, When(fn), input)
}

// SplitWhenFunc is the partially applied form of SplitWhen.
func (sp *Splitter[S, E]) SplitWhenFunc(fn func(E) bool) SplitFunc[S] {
	return sp.SplitFuncFor(sp.DropDelims, When(fn))
}
