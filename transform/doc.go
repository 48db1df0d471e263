/*
Package transform provides streaming variants of the Infra Standard's
newline transforms, built on golang.org/x/text/transform.

The whole-string functions of the parent package (NormalizeNewlines,
StripNewlines) require the complete input in memory. The Transformers
in this package produce the same output incrementally, so clients can
wrap an io.Reader or io.Writer and normalize inputs of any size:

  r := transform.NewReader(file, infratransform.NewlineNormalizer())
  ...

Both Transformers operate on raw bytes. This is exact for UTF-8 input
because U+000D and U+000A are single bytes there and never occur inside
a multi-byte sequence.

A CR as the last byte of a non-final chunk is ambiguous (it may be the
first half of a CR LF pair), so NewlineNormalizer leaves it unconsumed
and reports transform.ErrShortSrc; the transform machinery re-presents
it together with the following chunk.

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
package transform

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
