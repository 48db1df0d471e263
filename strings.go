package infra

import "strings"

// NormalizeNewlines replaces every U+000D U+000A pair of code points
// with a single U+000A, and any remaining lone U+000D with U+000A.
// The pair replacement happens first; a CR LF pair therefore becomes
// exactly one LF, never two.
//
// https://infra.spec.whatwg.org/#normalize-newlines
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	// CR and LF are single bytes in UTF-8, so a byte scan is exact.
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			b.WriteByte('\n')
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// StripNewlines returns s with every U+000A LF and U+000D CR code
// point removed, preserving the relative order of all other code
// points. Stripping is idempotent.
//
// https://infra.spec.whatwg.org/#strip-newlines
func StripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '\n' && c != '\r' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// TrimASCIIWhitespace removes the maximal leading and trailing run of
// ASCII whitespace (see IsASCIIWhitespace) from s. The result is a
// slice of the input; no allocation takes place. Trimming is
// idempotent.
//
// https://infra.spec.whatwg.org/#strip-leading-and-trailing-ascii-whitespace
func TrimASCIIWhitespace(s string) string {
	return strings.TrimFunc(s, IsASCIIWhitespace)
}
