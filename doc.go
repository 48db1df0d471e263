/*
Package infra implements the code point and string primitives of the
WHATWG Infra Standard (https://infra.spec.whatwg.org).

Description

The Infra Standard is the common foundation the WHATWG specifications
(URL, HTML, Fetch, MIME Sniffing, …) build upon. Before any of those
specifications parse a single character, they lean on a small set of
shared definitions: which code points count as noncharacters, what a
C0 control is, how newlines are normalized, and how a parser collects
"a sequence of code points" matching some condition while advancing a
position within the input.

This package provides exactly that layer, bit-exact with the standard's
definitions. Higher-level parsers depend on these primitives being
precise: a one-code-point discrepancy (for example, treating U+007F
DELETE as a C0 control, which the Infra Standard does not) changes
parsing results downstream.

Contents

Three groups of primitives are provided.

Classification predicates over a single rune, such as IsNoncharacter
and IsC0Control. All predicates are total over the entire rune range
and never panic. The noncharacter set is held in a unicode.RangeTable
generated by internal/generator and queried with unicode.Is.

Whole-string transforms NormalizeNewlines, StripNewlines and
TrimASCIIWhitespace. Each is a pure function allocating at most once;
TrimASCIIWhitespace returns a slice of its input and does not allocate
at all.

The collection primitive CollectCodepoints, implementing the
standard's "collect a sequence of code points" algorithm. It scans
forward from a caller-owned position while a predicate holds, returns
the consumed span and advances the position. The position is counted
in runes (Unicode scalar values), never in bytes, so a cursor can
never come to rest inside a multi-byte UTF-8 sequence. The Scanner
type wraps CollectCodepoints and owns the cursor for clients that
chain several collections over the same input.

Streaming variants of the newline transforms, built on
golang.org/x/text/transform, live in the transform sub-package.

BSD License

Copyright (c) 2024–26, the whatwg-infra authors

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
*/
package infra

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
