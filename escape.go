package tikz

import "golang.org/x/text/transform"

// texEscaper is a transform.Transformer that escapes the characters TeX
// treats specially, so user-provided legend labels survive verbatim in
// the emitted markup.
type texEscaper struct{}

// texEscapes maps special bytes to their escaped replacement. Backslash,
// caret and tilde need the text-mode command forms; the rest take a
// plain backslash prefix.
var texEscapes = map[byte]string{
	'#':  `\#`,
	'$':  `\$`,
	'%':  `\%`,
	'&':  `\&`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'\\': `\textbackslash{}`,
	'^':  `\textasciicircum{}`,
	'~':  `\textasciitilde{}`,
}

func (texEscaper) Reset() {}

func (texEscaper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		rep, special := texEscapes[b]
		if !special {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
			nSrc++
			continue
		}
		if nDst+len(rep) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], rep)
		nSrc++
	}
	return nDst, nSrc, nil
}

// EscapeTeX escapes the TeX special characters in s.
func EscapeTeX(s string) string {
	out, _, err := transform.String(texEscaper{}, s)
	if err != nil {
		// The transformer never fails on complete input.
		return s
	}
	return out
}
