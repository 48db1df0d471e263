package transform

import (
	"golang.org/x/text/transform"
)

// NewlineNormalizer returns a Transformer that replaces every CR LF
// byte pair with a single LF, and every remaining lone CR with LF.
// Output produced through it is identical to infra.NormalizeNewlines
// applied to the concatenated input.
func NewlineNormalizer() transform.Transformer {
	return newlineNormalizer{}
}

type newlineNormalizer struct {
	transform.NopResetter
}

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\r' {
			if nSrc == len(src)-1 && !atEOF {
				// cannot yet tell a CR LF pair from a lone CR
				CT().Debugf("pending CR at chunk boundary")
				err = transform.ErrShortSrc
				return
			}
			if nDst == len(dst) {
				err = transform.ErrShortDst
				return
			}
			dst[nDst] = '\n'
			nDst++
			nSrc++
			if nSrc < len(src) && src[nSrc] == '\n' {
				nSrc++
			}
			continue
		}
		if nDst == len(dst) {
			err = transform.ErrShortDst
			return
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return
}

// NewlineStripper returns a Transformer that removes every LF and CR
// byte from the input. Output produced through it is identical to
// infra.StripNewlines applied to the concatenated input.
func NewlineStripper() transform.Transformer {
	return newlineStripper{}
}

type newlineStripper struct {
	transform.NopResetter
}

func (newlineStripper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\n' || c == '\r' {
			nSrc++
			continue
		}
		if nDst == len(dst) {
			err = transform.ErrShortDst
			return
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return
}
