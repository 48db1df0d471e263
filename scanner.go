package infra

import "unicode/utf8"

// A Scanner drives successive code point collections over a single
// string. It owns the scan cursor, so clients chaining several
// CollectCodepoints calls do not have to thread a position themselves:
//
//	sc := infra.NewScanner("42 apples")
//	count := sc.Collect(infra.IsASCIIDigit)      // "42"
//	sc.Skip(infra.IsASCIIWhitespace)             // 1
//	fruit := sc.Collect(infra.IsASCIIAlpha)      // "apples"
//
// A Scanner must be owned by exactly one goroutine; the cursor is not
// safe for concurrent mutation.
type Scanner struct {
	text string
	pos  int // cursor, in rune units
	len  int // length of text, in rune units
}

// NewScanner creates a Scanner over text with the cursor at the start.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text, len: utf8.RuneCountInString(text)}
}

// Collect consumes the maximal run of code points satisfying predicate
// at the cursor, returns it, and advances the cursor past it. If the
// code point at the cursor does not satisfy predicate, or the cursor is
// at the end of the input, Collect returns "" and the cursor stays put.
func (sc *Scanner) Collect(predicate Predicate) string {
	span := CollectCodepoints(sc.text, &sc.pos, predicate)
	CT().Debugf("collected %q, cursor now at %d", span, sc.pos)
	return span
}

// Skip is Collect without retaining the consumed span; it returns the
// number of code points skipped.
func (sc *Scanner) Skip(predicate Predicate) int {
	before := sc.pos
	CollectCodepoints(sc.text, &sc.pos, predicate)
	return sc.pos - before
}

// Pos returns the cursor position in rune units.
func (sc *Scanner) Pos() int {
	return sc.pos
}

// Done reports whether the cursor has reached the end of the input.
func (sc *Scanner) Done() bool {
	return sc.pos >= sc.len
}

// Rest returns the unconsumed remainder of the input, without moving
// the cursor.
func (sc *Scanner) Rest() string {
	runeIdx := 0
	for byteIdx := range sc.text {
		if runeIdx == sc.pos {
			return sc.text[byteIdx:]
		}
		runeIdx++
	}
	return ""
}
