package casing

import (
	"unicode"
	"unicode/utf8"
)

// Words splits an identifier into its component words. Boundaries are
// delimiter runes (space, '_', '-', '.'), lower-to-upper transitions
// ("fooBar"), letter/digit transitions ("v2ray" splits as "v", "2", "ray"),
// and the last capital of an acronym run ("HTTPServer" splits as "HTTP",
// "Server"). Word casing is preserved; empty input yields a nil slice.
func Words(s string) []string {
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, s[start:end])
		}
		start = -1
	}

	for i, r := range s {
		if isDelimiter(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if boundary(prev, r, nextRune(s, i)) {
			flush(i)
			start = i
		}
	}
	flush(len(s))
	return words
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.'
}

// boundary reports whether a new word starts at cur, given the previous rune
// and the rune after cur (utf8.RuneError when cur is last).
func boundary(prev, cur, next rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && unicode.IsLower(next):
		// end of an acronym run: the last capital belongs to the next word
		return true
	}
	return false
}

func nextRune(s string, i int) rune {
	_, w := utf8.DecodeRuneInString(s[i:])
	r, _ := utf8.DecodeRuneInString(s[i+w:])
	return r
}
