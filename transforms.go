package listsplit

import (
	"slices"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/listsplit/segment"
)

// Transform post-processes a list of segments.
//
// Transforms never modify the list they are handed; they return a list of
// their own, which may share segments (values) with the input list.
type Transform[S any] func([]segment.Segment[S]) []segment.Segment[S]

// Compose chains transforms, applying them from left to right.
// Composing no transforms at all results in the identity transform.
func Compose[S any](ts ...Transform[S]) Transform[S] {
	chain := slices.Clone(ts)
	return func(segs []segment.Segment[S]) []segment.Segment[S] {
		for _, t := range chain {
			if t != nil {
				segs = t(segs)
			}
		}
		return segs
	}
}

// DropInitialBlank removes the first segment, if it is an empty text segment.
func (sp *Splitter[S, E]) DropInitialBlank(segs []segment.Segment[S]) []segment.Segment[S] {
	if len(segs) > 0 && sp.isBlank(segs[0]) {
		return slices.Clone(segs[1:])
	}
	return slices.Clone(segs)
}

// DropFinalBlank removes the last segment, if it is an empty text segment.
func (sp *Splitter[S, E]) DropFinalBlank(segs []segment.Segment[S]) []segment.Segment[S] {
	if l := len(segs); l > 0 && sp.isBlank(segs[l-1]) {
		return slices.Clone(segs[:l-1])
	}
	return slices.Clone(segs)
}

// InsertBlanks inserts an empty text segment between any two adjacent
// delimiter segments. After InsertBlanks, no two delimiters are adjacent.
func (sp *Splitter[S, E]) InsertBlanks(segs []segment.Segment[S]) []segment.Segment[S] {
	list := arraylist.New()
	for _, seg := range segs {
		list.Add(seg)
	}
	cnt := 0
	for i := list.Size() - 1; i > 0; i-- { // right to left, so insertions do not shift what's left to do
		cur, _ := list.Get(i)
		prev, _ := list.Get(i - 1)
		if cur.(segment.Segment[S]).IsDelimiter() && prev.(segment.Segment[S]).IsDelimiter() {
			list.Insert(i, segment.NewText(sp.seq.Empty()))
			cnt++
		}
	}
	CT().Debugf("insert blanks: %d blank(s) inserted", cnt)
	result := make([]segment.Segment[S], 0, list.Size())
	list.Each(func(_ int, v interface{}) {
		result = append(result, v.(segment.Segment[S]))
	})
	return result
}

// DropDelims keeps text segments only.
func (sp *Splitter[S, E]) DropDelims(segs []segment.Segment[S]) []segment.Segment[S] {
	result := make([]segment.Segment[S], 0, len(segs)/2+1)
	for _, seg := range segs {
		if seg.IsText() {
			result = append(result, seg)
		}
	}
	return result
}

// Condense collapses runs of consecutive delimiter segments into a single
// delimiter, with the bodies concatenated. Text segments are never merged.
func (sp *Splitter[S, E]) Condense(segs []segment.Segment[S]) []segment.Segment[S] {
	result := make([]segment.Segment[S], 0, len(segs))
	for _, cur := range segs {
		l := len(result)
		if l == 0 || cur.IsText() || result[l-1].IsText() {
			result = append(result, cur)
			continue
		}
		result[l-1] = segment.NewDelimiter(sp.seq.Concat(result[l-1].Body, cur.Body))
	}
	return result
}

// MergeDelimsLeft lets every delimiter absorb the text segment immediately
// in front of it. The merged segment is a text segment. Delimiters without
// text to their left stay delimiters.
//
//   Text"ab" Delim";" Text"cd" Delim";" Delim";" Text"ef"
//   => Text"ab;" Text"cd;" Delim";" Text"ef"
//
func (sp *Splitter[S, E]) MergeDelimsLeft(segs []segment.Segment[S]) []segment.Segment[S] {
	// fold from the right; result is collected in reverse order
	result := make([]segment.Segment[S], 0, len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		cur := segs[i]
		if l := len(result); l > 0 && result[l-1].IsDelimiter() && cur.IsText() {
			result[l-1] = segment.NewText(sp.seq.Concat(cur.Body, result[l-1].Body))
			continue
		}
		result = append(result, cur)
	}
	slices.Reverse(result)
	return result
}

// MergeDelimsRight lets every delimiter absorb the text segment immediately
// following it. The merged segment is a text segment. Delimiters without
// text to their right stay delimiters.
func (sp *Splitter[S, E]) MergeDelimsRight(segs []segment.Segment[S]) []segment.Segment[S] {
	result := make([]segment.Segment[S], 0, len(segs))
	for _, cur := range segs {
		if l := len(result); l > 0 && result[l-1].IsDelimiter() && cur.IsText() {
			result[l-1] = segment.NewText(sp.seq.Concat(result[l-1].Body, cur.Body))
			continue
		}
		result = append(result, cur)
	}
	return result
}

func (sp *Splitter[S, E]) isBlank(seg segment.Segment[S]) bool {
	return seg.IsText() && sp.seq.Len(seg.Body) == 0
}
