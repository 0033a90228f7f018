// Package textenc converts text between UTF-8 strings and the byte encodings
// the rest of this module traffics in: lossy seven-bit ASCII, any
// golang.org/x/text encoding, and raw UTF-16LE code units.
//
// ASCII is the default byte form. Conversions that can prove the input is
// seven-bit skip codec machinery entirely, since most real-world inputs never
// leave that range.
package textenc

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
)

// Substitute is the byte written in place of a rune that has no seven-bit
// representation when encoding lossily to ASCII.
const Substitute = '?'

// IsASCII reports whether every byte of data is ASCII (< 0x80). ASCII bytes
// mean the same thing in UTF-8 and the single-byte Windows code pages, so a
// true result lets callers skip decoding entirely.
func IsASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// ASCII encodes s as seven-bit ASCII, substituting '?' for every rune outside
// the ASCII range. Substitution is per rune, not per byte: "é" and "😀" each
// become a single '?'.
func ASCII(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > unicode.MaxASCII {
			out = append(out, Substitute)
			continue
		}
		out = append(out, byte(r))
	}
	return out
}

// Encode converts s into the byte form of enc. A nil enc selects lossy ASCII,
// which never fails; other encodings report runes they cannot represent.
func Encode(s string, enc encoding.Encoding) ([]byte, error) {
	if enc == nil {
		return ASCII(s), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode: %w", err)
	}
	return out, nil
}

// Decode converts data from enc into a UTF-8 string. A nil enc selects ASCII,
// substituting '?' for bytes outside the seven-bit range. There is no ASCII
// fast path here: enc may be a multi-byte encoding where seven-bit input
// still needs decoding.
func Decode(data []byte, enc encoding.Encoding) (string, error) {
	if enc == nil {
		if IsASCII(data) {
			return string(data), nil
		}
		var b strings.Builder
		b.Grow(len(data))
		for _, c := range data {
			if c >= 0x80 {
				c = Substitute
			}
			b.WriteByte(c)
		}
		return b.String(), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("textenc: decode: %w", err)
	}
	return string(out), nil
}
