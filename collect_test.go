package infra

import (
	"fmt"
	"testing"
	"unicode"
	"unicode/utf8"
)

func TestCollectDigitsThenAlphas(t *testing.T) {
	pos := 0
	if got := CollectCodepoints("123abc", &pos, IsASCIIDigit); got != "123" || pos != 3 {
		t.Errorf("digits: got %q with cursor %d, want %q with cursor 3", got, pos, "123")
	}
	if got := CollectCodepoints("123abc", &pos, IsASCIIAlpha); got != "abc" || pos != 6 {
		t.Errorf("alphas: got %q with cursor %d, want %q with cursor 6", got, pos, "abc")
	}
	// cursor is at the end now; further collections are empty
	if got := CollectCodepoints("123abc", &pos, IsASCIIAlpha); got != "" || pos != 6 {
		t.Errorf("at end: got %q with cursor %d, want empty with cursor 6", got, pos)
	}
}

func TestCollectDegenerateInputs(t *testing.T) {
	pos := 0
	if got := CollectCodepoints("", &pos, func(rune) bool { return true }); got != "" || pos != 0 {
		t.Errorf("empty input: got %q with cursor %d", got, pos)
	}
	pos = 99
	if got := CollectCodepoints("abc", &pos, IsASCIIAlpha); got != "" || pos != 99 {
		t.Errorf("cursor beyond end must stay put, got %q with cursor %d", got, pos)
	}
	pos = 1
	if got := CollectCodepoints("abc", &pos, nil); got != "" || pos != 1 {
		t.Errorf("nil predicate must collect nothing, got %q with cursor %d", got, pos)
	}
}

func TestCollectNoMatch(t *testing.T) {
	pos := 0
	if got := CollectCodepoints("abc", &pos, IsASCIIDigit); got != "" || pos != 0 {
		t.Errorf("unmatched predicate: got %q with cursor %d, want empty, 0", got, pos)
	}
}

func TestCollectCursorCountsRunes(t *testing.T) {
	// two-byte runes in front; a byte-indexed cursor would misalign here
	pos := 0
	if got := CollectCodepoints("αβ42", &pos, unicode.IsLetter); got != "αβ" || pos != 2 {
		t.Errorf("letters: got %q with cursor %d, want %q with cursor 2", got, pos, "αβ")
	}
	if got := CollectCodepoints("αβ42", &pos, IsASCIIDigit); got != "42" || pos != 4 {
		t.Errorf("digits: got %q with cursor %d, want %q with cursor 4", got, pos, "42")
	}
}

func TestCollectSupplementaryPlane(t *testing.T) {
	s := "😀😀x"
	pos := 0
	got := CollectCodepoints(s, &pos, func(r rune) bool { return r > 0xFFFF })
	if got != "😀😀" || pos != 2 {
		t.Errorf("got %q with cursor %d, want two emoji with cursor 2", got, pos)
	}
	if !utf8.ValidString(got) {
		t.Errorf("collected span %q is not valid UTF-8", got)
	}
	if rest := CollectCodepoints(s, &pos, func(rune) bool { return true }); rest != "x" || pos != 3 {
		t.Errorf("rest: got %q with cursor %d, want %q with cursor 3", rest, pos, "x")
	}
}

func TestCollectFromMidString(t *testing.T) {
	pos := 2
	if got := CollectCodepoints("xy123z", &pos, IsASCIIDigit); got != "123" || pos != 5 {
		t.Errorf("got %q with cursor %d, want %q with cursor 5", got, pos, "123")
	}
}

func ExampleCollectCodepoints() {
	position := 0
	digits := CollectCodepoints("1234 test", &position, IsASCIIDigit)
	fmt.Println(digits, position)
	// Output:
	// 1234 4
}
