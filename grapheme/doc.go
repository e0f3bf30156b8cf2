/*
Package grapheme provides strings of user-perceived characters, ready to be
split.

UAX#29 is the Unicode Annex for breaking text into graphemes, words
and sentences. A grapheme (more precisely, an extended grapheme cluster) is
what a user thinks of as a single character: a letter together with its
combining marks, a Hangul syllable, or an emoji with skin-tone modifier.
Splitting text on runes will tear those apart.

Grapheme Strings

Type grapheme.String is a read-only data structure and not intended for large
texts, but rather for small to medium-sized strings.

	s := grapheme.StringFromString("世界")
	fmt.Printf("number of graphemes: %d", s.Len())                      // => 2
	fmt.Printf("number of bytes for 2nd grapheme: %d", len(s.Nth(1)))   // => 3

Splitting

Grapheme strings are sequences of graphemes. Capability implements the
sequence capability of package listsplit for them, and NewSplitter returns
a splitter for grapheme strings.

	sp := grapheme.NewSplitter()
	parts, err := sp.SplitOneOf(grapheme.StringFromString("👍🏽"), input)

Conformance

Finding grapheme boundaries is delegated to package github.com/rivo/uniseg,
which conforms to UAX#29 of Unicode 15.0.0.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
