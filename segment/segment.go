/*
Package segment defines the parts a sequence is broken into.

A breaker partitions a sequence into segments of two kinds: text and
delimiter. Both kinds carry a body, which is a sub-sequence of the input
and therefore of the same type as the input.

Segments are values. Lists of segments are owned by whoever created them;
transforms in package listsplit construct new lists instead of modifying
the lists they are handed.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package segment

import (
	"fmt"
)

// Kind tells text segments from delimiter segments.
type Kind int8

// There are exactly two kinds of segments.
const (
	Text      Kind = iota // content to keep
	Delimiter             // a matched separator
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Delimiter:
		return "Delim"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Segment is a tagged chunk of an input sequence of type S.
type Segment[S any] struct {
	Kind Kind
	Body S
}

// NewText creates a text segment.
func NewText[S any](body S) Segment[S] {
	return Segment[S]{Kind: Text, Body: body}
}

// NewDelimiter creates a delimiter segment.
func NewDelimiter[S any](body S) Segment[S] {
	return Segment[S]{Kind: Delimiter, Body: body}
}

// IsText is true for text segments.
func (seg Segment[S]) IsText() bool {
	return seg.Kind == Text
}

// IsDelimiter is true for delimiter segments.
func (seg Segment[S]) IsDelimiter() bool {
	return seg.Kind == Delimiter
}

// Simple stringer for debugging purposes.
func (seg Segment[S]) String() string {
	return fmt.Sprintf("%s%v", seg.Kind, printable(seg.Body))
}

// Bodies extracts the bodies of a list of segments, dropping their kinds.
func Bodies[S any](segs []Segment[S]) []S {
	bodies := make([]S, len(segs))
	for i, seg := range segs {
		bodies[i] = seg.Body
	}
	return bodies
}

// Rune slices are hard to read as numbers.
func printable(body any) any {
	switch b := body.(type) {
	case []rune:
		return fmt.Sprintf("%q", string(b))
	case string:
		return fmt.Sprintf("%q", b)
	case fmt.Stringer:
		return fmt.Sprintf("%q", b.String())
	}
	return body
}
