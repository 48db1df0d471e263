package infra

// CollectCodepoints implements the Infra Standard's "collect a sequence
// of code points" algorithm: starting at *position, it consumes code
// points of s as long as predicate holds, returns the consumed span and
// advances *position to the first code point it did not consume (or to
// the end of s).
//
// position counts runes, i.e. Unicode scalar values, NOT bytes. The
// returned span is sliced on rune boundaries, so multi-byte UTF-8
// sequences are never split, and successive calls with the same
// position chain naturally:
//
//	pos := 0
//	digits := infra.CollectCodepoints("123abc", &pos, infra.IsASCIIDigit) // "123", pos = 3
//	alphas := infra.CollectCodepoints("123abc", &pos, infra.IsASCIIAlpha) // "abc", pos = 6
//
// CollectCodepoints never fails: an empty s, a nil predicate, or a
// position at or beyond the end of s yield "" and leave the position
// untouched.
//
// https://infra.spec.whatwg.org/#collect-a-sequence-of-code-points
func CollectCodepoints(s string, position *int, predicate Predicate) string {
	if s == "" || position == nil || predicate == nil || *position < 0 {
		return ""
	}
	var (
		runeIdx   int      // rune index of the rune under inspection
		startByte = -1     // byte offset of the rune at *position
		endByte   = len(s) // byte offset one past the consumed span
		collected int      // number of runes consumed
	)
	for byteIdx, r := range s {
		if runeIdx < *position {
			runeIdx++
			continue
		}
		if startByte < 0 {
			startByte = byteIdx
		}
		if !predicate(r) {
			endByte = byteIdx
			break
		}
		collected++
		runeIdx++
	}
	if startByte < 0 {
		// *position sits at or beyond the end of s
		return ""
	}
	*position += collected
	return s[startByte:endByte]
}
