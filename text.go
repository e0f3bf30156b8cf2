package listsplit

import (
	"github.com/npillmayer/listsplit/segment"
)

// runeSplitter serves the string helpers. Splitters are safe for concurrent use.
var runeSplitter = ForRunes()

// BreakString breaks a Go string at preds. Positions are counted in runes,
// i.e. every predicate is tested against a single code-point.
func BreakString(preds Predicates[rune], s string) ([]segment.Segment[string], error) {
	segs, err := runeSplitter.Break(preds, []rune(s))
	if err != nil {
		return nil, err
	}
	return StringSegments(segs), nil
}

// StringSegments converts segments of rune slices into segments of strings.
func StringSegments(segs []segment.Segment[[]rune]) []segment.Segment[string] {
	strsegs := make([]segment.Segment[string], len(segs))
	for i, seg := range segs {
		strsegs[i] = segment.Segment[string]{Kind: seg.Kind, Body: string(seg.Body)}
	}
	return strsegs
}

// SplitStringOneOf splits input at every rune contained in pattern.
func SplitStringOneOf(pattern, input string) ([]string, error) {
	return splitString(OneOfRunes(pattern), input)
}

// SplitStringOn splits input at every occurrence of pattern.
// An empty pattern is an error.
func SplitStringOn(pattern, input string) ([]string, error) {
	return splitString(runeSplitter.OnSubsequence([]rune(pattern)), input)
}

// SplitStringWhen splits input at every rune for which fn is true.
func SplitStringWhen(fn func(rune) bool, input string) ([]string, error) {
	return splitString(When(fn), input)
}

func splitString(preds Predicates[rune], input string) ([]string, error) {
	parts, err := runeSplitter.Split(runeSplitter.DropDelims, preds, []rune(input))
	if err != nil {
		return nil, err
	}
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = string(p)
	}
	return strs, nil
}
