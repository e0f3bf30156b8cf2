/*
Package listsplit is about splitting sequences at delimiters.

Description

Splitting a string at commas is easy enough with package strings. Often,
however, clients need more than that: they want to know what the delimiters
were, keep them attached to the text before or after them, treat runs of
delimiters as a single one, or split sequences which are not strings at all,
like slices of numbers or strings of user-perceived characters.

This package breaks an ordered sequence into alternating segments of 'text'
and 'delimiter', and offers small, composable transforms to post-process the
resulting list of segments. The various flavours of "split" are
combinations of a breaker, zero or more transforms, and a final extraction
of the segments' bodies.

Typical Usage

A Splitter is created for a sequence capability (see type Sequence).
Capabilities for rune slices and for slices of comparable elements are
provided by this package, a capability for grapheme strings by sub-package
grapheme.

  sp := listsplit.ForRunes()
  segs, err := sp.Break(sp.OneOf([]rune(",;")), []rune("ab,cd;;ef"))
  …
  segs = sp.Condense(segs) // Text"ab", Delim",", Text"cd", Delim";;", Text"ef"

For the common case of Go strings there are package level helpers:

  parts, err := listsplit.SplitStringOneOf(",.", "ab,cd.ef") // ["ab" "cd" "ef"]

How it works

The breaker is given a list of predicates. A delimiter is found at position
p if predicate i holds for element p+i, for all predicates. The number of
predicates is therefore the width of a delimiter. Matches never overlap:
after a delimiter has been found, scanning continues behind it.

The result of a break always ends with a text segment and usually starts
with one, which is empty if the input starts with a delimiter. Consecutive
delimiters are not separated by empty text segments; use InsertBlanks if
clients need strict alternation.

Please note that a text run of exactly one element in front of a
delimiter is not reported as a text segment. Breaking "a,bc" at commas
results in Delim"," Text"bc".

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package listsplit holds the sequence capabilities, the breaker, the
predicate builders, the segment transforms and the split functions.
Sub-package segment defines the two kinds of segments. Sub-package grapheme
provides a read-only string type of user-perceived characters, together with
its sequence capability.
*/
package listsplit

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrInvalidPredicates is returned when breaking with an empty predicate list.
// A delimiter of width 0 would never advance the scan.
var ErrInvalidPredicates = errors.New("listsplit: invalid predicate list; need at least one predicate")
