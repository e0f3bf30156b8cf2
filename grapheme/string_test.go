package grapheme

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/listsplit"
	"github.com/npillmayer/listsplit/segment"
)

func TestString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "Hello World"
	s := StringFromString(input)
	if s == nil {
		t.Fatalf("resulting grapheme string should not be nil")
	}
	t.Logf("breaks at %v", s.(*gstring).breaks)
	x := s.Nth(2)
	if x != "l" {
		t.Errorf("expected s.Nth(2) to be 'l', is %#v", x)
	}
	if l := s.Len(); l != 11 {
		t.Errorf("expected s.Len() to be 11, is %d", l)
	}
}

func TestChineseString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "世界"
	s := StringFromString(input)
	if l := s.Len(); l != 2 {
		t.Errorf("expected \"%s\".Len() to be 2, is %d", input, l)
	}
	x := s.Nth(1)
	t.Logf("number of bytes for 2nd grapheme: %d", len(x)) // => 3
	if x != "界" {
		t.Errorf("expected s.Nth(1) to be '界', is %s", x)
	}
}

func TestEmojiString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s := StringFromString("a👍🏽é")
	if l := s.Len(); l != 3 {
		t.Errorf("expected 3 graphemes, have %d", l)
	}
	if s.Nth(1) != "👍🏽" {
		t.Errorf("expected thumbs-up with skin tone as a single grapheme, is %q", s.Nth(1))
	}
	if s.Nth(2) != "é" {
		t.Errorf("expected e + combining acute as a single grapheme, is %q", s.Nth(2))
	}
	if StringFromString("").Len() != 0 {
		t.Errorf("expected empty grapheme string to have length 0")
	}
}

func TestCapability(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var seq listsplit.Sequence[String, string] = Capability{}
	s := StringFromString("ab👍🏽cd")
	sub := seq.Slice(s, 1, 4)
	if sub.String() != "b👍🏽c" || seq.Len(sub) != 3 {
		t.Errorf("expected slice [1:4] to be 'b👍🏽c' of length 3, is %q of length %d", sub.String(), seq.Len(sub))
	}
	if rest := seq.Slice(s, 2, -1); rest.String() != "👍🏽cd" {
		t.Errorf("expected slice [2:] to be '👍🏽cd', is %q", rest.String())
	}
	c := seq.Concat(seq.Slice(s, 0, 2), seq.Slice(s, 2, 5))
	if c.String() != s.String() || seq.Len(c) != 5 {
		t.Errorf("expected concatenation to restore %q, have %q", s.String(), c.String())
	}
	if seq.Concat(seq.Empty(), s) != s || seq.Concat(s, seq.Empty()) != s {
		t.Errorf("expected empty grapheme string to be the identity for Concat")
	}
	if i := seq.IndexOf(s, "👍🏽"); i != 2 {
		t.Errorf("expected index of thumbs-up to be 2, is %d", i)
	}
	if i := seq.IndexOf(s, "👍"); i != -1 {
		t.Errorf("expected thumbs-up without modifier not to be found, is at %d", i)
	}
}

func TestSplitGraphemes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	parts, err := SplitOneOf("👍🏽", "ab👍🏽cd👍🏽ef")
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 3 || parts[0] != "ab" || parts[1] != "cd" || parts[2] != "ef" {
		t.Errorf("expected [ab cd ef], have %q", parts)
	}
	// a bare thumbs-up is not the same grapheme as one with skin tone
	parts, _ = SplitOneOf("👍", "ab👍🏽cd")
	if len(parts) != 1 {
		t.Errorf("expected no split at thumbs-up with modifier, have %q", parts)
	}
	parts, _ = SplitOn("éé", "xyééz")
	if len(parts) != 2 || parts[0] != "xy" || parts[1] != "z" {
		t.Errorf("expected [xy z], have %q", parts)
	}
	if _, err = SplitOn("", "abc"); !errors.Is(err, listsplit.ErrInvalidPredicates) {
		t.Errorf("expected error for empty pattern, have %v", err)
	}
}

func TestBreakGraphemes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	isSpace := func(g string) bool { return g == " " }
	segs, err := Break(listsplit.When(isSpace), "Hi ❤️❤️ Go")
	if err != nil {
		t.Fatal(err)
	}
	want := []segment.Segment[string]{
		segment.NewText("Hi"), segment.NewDelimiter(" "), segment.NewText("❤️❤️"),
		segment.NewDelimiter(" "), segment.NewText("Go"),
	}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, have %v", len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("expected segment #%d to be %v, is %v", i, want[i], segs[i])
		}
	}
}
