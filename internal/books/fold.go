package books

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// fold normalizes a string for matching: decompose accents, drop the
// combining marks, lowercase. "Neruda" and "Néruda" fold identically.
func fold(s string) string {
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}
