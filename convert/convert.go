// Package convert holds the small value-conversion helpers that do not
// warrant a package of their own: hex and base64 string forms, byte-size
// parsing and formatting, and bool/int bridging.
package convert

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
)

// HexString renders b as lower-case hex, two digits per byte, no separator.
func HexString(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHexString decodes a hex string produced by HexString or any
// even-length hex text, upper or lower case.
func FromHexString(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("convert: decode hex: %w", err)
	}
	return b, nil
}

// Base64String renders b in standard base64 with padding.
func Base64String(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64String decodes standard padded base64.
func FromBase64String(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("convert: decode base64: %w", err)
	}
	return b, nil
}

// ParseByteSize parses a human byte-size string: "42 MB", "1.5GiB", "64k".
// SI suffixes are powers of 1000 and IEC suffixes powers of 1024.
func ParseByteSize(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("convert: parse byte size %q: %w", s, err)
	}
	return n, nil
}

// FormatByteSize renders n using IEC units: 1536 → "1.5 KiB". IEC is the
// default because the toolbox mostly measures memory and file payloads,
// where powers of two are the honest unit.
func FormatByteSize(n uint64) string {
	return humanize.IBytes(n)
}

// FormatByteSizeSI renders n using SI units: 1500 → "1.5 kB".
func FormatByteSizeSI(n uint64) string {
	return humanize.Bytes(n)
}

// Itob converts an integer to bool, C-style: zero is false, everything else
// true.
func Itob(n int) bool { return n != 0 }

// Btoi converts a bool to 1 or 0.
func Btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
