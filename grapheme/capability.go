package grapheme

import (
	"github.com/npillmayer/listsplit"
	"github.com/npillmayer/listsplit/segment"
)

// Capability is the sequence capability for grapheme strings.
// Elements of a grapheme string are its graphemes, represented as Go strings.
type Capability struct{}

var _ listsplit.Sequence[String, string] = Capability{}

// At is part of interface listsplit.Sequence.
func (Capability) At(s String, i int) string {
	return s.Nth(i)
}

// Slice is part of interface listsplit.Sequence.
func (Capability) Slice(s String, start, end int) String {
	gstr := asGString(s)
	if end < 0 {
		end = gstr.Len()
	}
	return gstr.slice(start, end)
}

// Concat is part of interface listsplit.Sequence.
func (Capability) Concat(a, b String) String {
	return asGString(a).concat(asGString(b))
}

// Len is part of interface listsplit.Sequence.
func (Capability) Len(s String) int {
	if s == nil {
		return 0
	}
	return s.Len()
}

// IndexOf is part of interface listsplit.Sequence.
func (Capability) IndexOf(s String, g string) int {
	for i := 0; i < s.Len(); i++ {
		if s.Nth(i) == g {
			return i
		}
	}
	return -1
}

// Empty is part of interface listsplit.Sequence.
func (Capability) Empty() String {
	return empty
}

// NewSplitter creates a splitter for grapheme strings.
func NewSplitter() *listsplit.Splitter[String, string] {
	return listsplit.New[String, string](Capability{})
}

// splitter serves the package level helpers.
var splitter = NewSplitter()

// SplitOneOf splits a Go string at any of the graphemes contained in pattern.
// In contrast to listsplit.SplitStringOneOf, combining marks or emoji
// modifiers are never torn apart from their base characters.
func SplitOneOf(pattern, input string) ([]string, error) {
	return toStrings(splitter.SplitOneOf(StringFromString(pattern), StringFromString(input)))
}

// SplitOn splits a Go string at every occurrence of the grapheme sequence
// pattern. An empty pattern is an error.
func SplitOn(pattern, input string) ([]string, error) {
	return toStrings(splitter.SplitOn(StringFromString(pattern), StringFromString(input)))
}

// Break breaks a Go string into segments, matching graphemes with preds.
func Break(preds listsplit.Predicates[string], input string) ([]segment.Segment[string], error) {
	segs, err := splitter.Break(preds, StringFromString(input))
	if err != nil {
		return nil, err
	}
	strsegs := make([]segment.Segment[string], len(segs))
	for i, seg := range segs {
		strsegs[i] = segment.Segment[string]{Kind: seg.Kind, Body: seg.Body.String()}
	}
	return strsegs, nil
}

func toStrings(parts []String, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = p.String()
	}
	return strs, nil
}
