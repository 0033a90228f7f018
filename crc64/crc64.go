// Package crc64 implements 64-bit cyclic redundancy checks over a
// caller-chosen reflected polynomial.
//
// Unlike the fixed-variant 16-bit checksums elsewhere in this module, the
// 64-bit form is parameterized: callers name the generator polynomial and the
// package builds the 256-entry lookup table for it on first use. Tables are
// memoized per polynomial, so every caller naming the same generator shares
// one table for the life of the process.
//
// The checksum is computed least significant bit first with no final XOR or
// output reflection: a zero state over zero input bytes is zero. Digest
// serializes its state most significant byte first, independent of host
// order; construction is refused on hosts that are not little-endian
// compatible.
package crc64

import "sync"

// Size is the number of bytes a serialized CRC-64 occupies.
const Size = 8

const (
	// ISO is the reflected form of the ISO 3309 generator and this
	// package's conventional default polynomial.
	ISO uint64 = 0xD800000000000000

	// ECMA is the reflected form of the ECMA 182 generator.
	ECMA uint64 = 0xC96C5795D7870F42
)

// Table is a 256-entry lookup of partial remainders indexed by one byte of
// input. Tables are immutable once built; MakeTable returns the same *Table
// to every caller naming the same polynomial.
type Table [256]uint64

// tables memoizes built tables keyed by polynomial. The ISO table built for
// one caller is the ISO table for the whole process.
var tables sync.Map // uint64 → *Table

// MakeTable returns the lookup table for the given reflected polynomial,
// building it on first use. Concurrent first callers may each build a table,
// but all of them observe the same stored pointer.
func MakeTable(poly uint64) *Table {
	if t, ok := tables.Load(poly); ok {
		return t.(*Table)
	}
	t, _ := tables.LoadOrStore(poly, buildTable(poly))
	return t.(*Table)
}

// buildTable computes the reflected remainder table for poly: each entry is
// the index byte shifted through the low bit eight times.
func buildTable(poly uint64) *Table {
	t := new(Table)
	for i := range t {
		crc := uint64(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Update returns the checksum state after folding the bytes of p into crc.
func Update(crc uint64, tab *Table, p []byte) uint64 {
	for _, v := range p {
		crc = crc>>8 ^ tab[byte(crc)^v]
	}
	return crc
}

// Checksum returns the CRC-64 of p using tab, starting from seed. There is
// no final XOR, so Checksum(0, tab, nil) is 0.
func Checksum(seed uint64, tab *Table, p []byte) uint64 {
	return Update(seed, tab, p)
}
