package grapheme

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// “user perceived characters” as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes from a string (or array of bytes) is an operation with
// runtime complexiy O(N). Clients should not convert large texts into grapheme
// strings in one go, but rather operate on manageable fragments.
//
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
	String() string // the underlying Go string
}

// StringFromString creates a grapheme string from a Go string.
func StringFromString(s string) String {
	gstr := &gstring{content: s, breaks: make([]int, 1, len(s)/2+1)}
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		gstr.breaks = append(gstr.breaks, to)
	}
	tracer().Debugf("grapheme string %q has %d graphemes", s, gstr.Len())
	return gstr
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private copy
// of the input.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

// gstring holds the content together with the byte positions of grapheme
// boundaries. breaks[0] is always 0, breaks[Len()] is len(content).
type gstring struct {
	content string
	breaks  []int
}

var empty = &gstring{breaks: []int{0}}

func (gstr *gstring) Nth(n int) string {
	if n < 0 || n >= gstr.Len() {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, gstr.Len()))
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *gstring) Len() int {
	return len(gstr.breaks) - 1
}

func (gstr *gstring) String() string {
	return gstr.content
}

// slice returns graphemes [from:to] as a new grapheme string.
// Boundaries are kept, not re-calculated.
func (gstr *gstring) slice(from, to int) *gstring {
	if from < 0 || to > gstr.Len() || from > to {
		panic(fmt.Sprintf("grapheme string slice bounds out of range, [%d:%d] in [0:%d]",
			from, to, gstr.Len()))
	}
	offset := gstr.breaks[from]
	sub := &gstring{
		content: gstr.content[offset:gstr.breaks[to]],
		breaks:  make([]int, to-from+1),
	}
	for i := range sub.breaks {
		sub.breaks[i] = gstr.breaks[from+i] - offset
	}
	return sub
}

// concat appends other to gstr. Graphemes at the seam are not merged, i.e.
// the length of the result is the sum of the lengths.
func (gstr *gstring) concat(other *gstring) *gstring {
	if gstr.Len() == 0 {
		return other
	}
	if other.Len() == 0 {
		return gstr
	}
	l := len(gstr.content)
	c := &gstring{
		content: gstr.content + other.content,
		breaks:  make([]int, 0, len(gstr.breaks)+len(other.breaks)-1),
	}
	c.breaks = append(c.breaks, gstr.breaks...)
	for _, b := range other.breaks[1:] {
		c.breaks = append(c.breaks, b+l)
	}
	return c
}

// asGString gets the internal representation for any implementation of String.
func asGString(s String) *gstring {
	if s == nil {
		return empty
	}
	if gstr, ok := s.(*gstring); ok {
		return gstr
	}
	gstr := &gstring{breaks: make([]int, 1, s.Len()+1)}
	for i := 0; i < s.Len(); i++ {
		gstr.content += s.Nth(i)
		gstr.breaks = append(gstr.breaks, len(gstr.content))
	}
	return gstr
}
