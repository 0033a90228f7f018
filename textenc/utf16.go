package textenc

import (
	"encoding/binary"
	"errors"
	"strings"
	"unicode/utf16"
)

// ErrOddLength is returned when UTF-16 input is not a whole number of 16-bit
// code units.
var ErrOddLength = errors.New("textenc: utf-16 data has odd length")

// DecodeUTF16LE decodes raw UTF-16LE code units to a UTF-8 string. Input must
// be an even number of bytes; no byte order mark is expected or stripped.
// Unpaired surrogates decode to U+FFFD.
func DecodeUTF16LE(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data)%2 != 0 {
		return "", ErrOddLength
	}

	// Fast path: every unit is an ASCII char stored as [byte, 0x00].
	allASCII := true
	for i := 0; i < len(data); i += 2 {
		if data[i+1] != 0 || data[i] >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String(), nil
	}

	// Slow path: full decode with surrogate pairing. WriteRune maps any
	// leftover surrogate half to U+FFFD.
	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8

		// High surrogate (U+D800..U+DBFF) followed by a low surrogate
		// (U+DC00..U+DFFF) combines into one supplementary rune.
		if r >= 0xD800 && r <= 0xDBFF && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				r = 0x10000 + ((r-0xD800)<<10 | (r2 - 0xDC00))
				i += 2
			}
		}

		b.WriteRune(r)
	}
	return b.String(), nil
}

// EncodeUTF16LE encodes a UTF-8 string as raw UTF-16LE code units, two bytes
// per unit, with no byte order mark and no terminator.
func EncodeUTF16LE(s string) []byte {
	codes := utf16.Encode([]rune(s))
	buf := make([]byte, len(codes)*2)
	for i, c := range codes {
		binary.LittleEndian.PutUint16(buf[i*2:], c)
	}
	return buf
}
