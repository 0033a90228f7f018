package crc16

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/toolbelt/textenc"
)

// ChecksumString converts the first n characters of s to bytes and returns
// their checksum under the given method.
//
// A nil enc applies the default text conversion: 7-bit ASCII with '?'
// substituted for anything outside it (textenc.ASCII). Any other
// golang.org/x/text encoding (charmap.Windows1252, unicode.UTF16, ...) is
// applied as-is; conversion failures are returned rather than checksummed.
//
// n counts characters, not bytes, and is clamped to the length of s — the
// conversion never reads past the end of the string. An empty s or a
// non-positive n short-circuits to 0 with no error.
func ChecksumString(m Method, s string, n int, enc encoding.Encoding) (uint16, error) {
	if s == "" || n <= 0 {
		return 0, nil
	}
	runes := []rune(s)
	if n < len(runes) {
		runes = runes[:n]
	}
	b, err := textenc.Encode(string(runes), enc)
	if err != nil {
		return 0, fmt.Errorf("crc16: encode text: %w", err)
	}
	return Checksum(m, b), nil
}
