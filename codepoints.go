package infra

import (
	"sync"
	"unicode"
)

// A Predicate classifies a single Unicode code point. Predicates are
// the pluggable condition of CollectCodepoints; all predicates in this
// package are total over the entire rune range and never panic.
type Predicate func(rune) bool

var noncharOnce sync.Once

// IsNoncharacter reports whether r is a noncharacter: a code point in
// the inclusive range U+FDD0 to U+FDEF, or one of the 34 code points
// U+nFFFE/U+nFFFF at the end of each of the 17 Unicode planes.
// Noncharacters are permanently reserved for internal use and never
// assigned for interchange.
//
// https://infra.spec.whatwg.org/#noncharacter
func IsNoncharacter(r rune) bool {
	noncharOnce.Do(setupNoncharacters)
	return r >= 0 && unicode.Is(noncharacters, r)
}

// IsC0Control reports whether r is a C0 control, i.e. within the
// inclusive range U+0000 NULL to U+001F INFORMATION SEPARATOR ONE.
//
// This is deliberately narrower than unicode.IsControl and the usual
// "ASCII control" notion: U+007F DELETE is NOT a C0 control.
//
// https://infra.spec.whatwg.org/#c0-control
func IsC0Control(r rune) bool {
	return r >= 0 && r <= 0x001F
}

// IsC0ControlOrSpace reports whether r is a C0 control or U+0020 SPACE.
//
// https://infra.spec.whatwg.org/#c0-control-or-space
func IsC0ControlOrSpace(r rune) bool {
	return r >= 0 && r <= 0x0020
}

// IsASCIITabOrNewline reports whether r is U+0009 TAB, U+000A LF or
// U+000D CR.
//
// https://infra.spec.whatwg.org/#ascii-tab-or-newline
func IsASCIITabOrNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

// IsASCIIWhitespace reports whether r is one of the five ASCII
// whitespace code points U+0009 TAB, U+000A LF, U+000C FF, U+000D CR
// or U+0020 SPACE.
//
// https://infra.spec.whatwg.org/#ascii-whitespace
func IsASCIIWhitespace(r rune) bool {
	return r == '\t' || r == '\n' || r == '\f' || r == '\r' || r == ' '
}

// IsASCIIDigit reports whether r is in the range U+0030 (0) to U+0039 (9).
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIIUpperAlpha reports whether r is in the range U+0041 (A) to U+005A (Z).
func IsASCIIUpperAlpha(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsASCIILowerAlpha reports whether r is in the range U+0061 (a) to U+007A (z).
func IsASCIILowerAlpha(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsASCIIAlpha reports whether r is an ASCII upper or lower alpha.
func IsASCIIAlpha(r rune) bool {
	return IsASCIIUpperAlpha(r) || IsASCIILowerAlpha(r)
}

// IsASCIIAlphanumeric reports whether r is an ASCII digit or ASCII alpha.
func IsASCIIAlphanumeric(r rune) bool {
	return IsASCIIDigit(r) || IsASCIIAlpha(r)
}
