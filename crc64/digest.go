package crc64

import (
	"encoding/binary"
	"errors"
	"hash"
	"math/bits"

	"github.com/joshuapare/toolbelt/internal/hostorder"
)

// ErrUnsupportedPlatform is returned by New and NewWithSeed on hosts whose
// native byte order is not little-endian compatible.
var ErrUnsupportedPlatform = errors.New("crc64: host byte order is not little-endian compatible")

// Digest is a streaming CRC-64 over one polynomial. It implements
// hash.Hash64. The zero value is not usable; construct with New or
// NewWithSeed.
type Digest struct {
	crc  uint64
	seed uint64
	tab  *Table
}

var _ hash.Hash64 = (*Digest)(nil)

// New returns a Digest over the given reflected polynomial with a zero
// starting state.
func New(poly uint64) (*Digest, error) {
	return NewWithSeed(poly, 0)
}

// NewWithSeed returns a Digest over the given reflected polynomial whose
// state starts at seed and returns to seed on Reset. It fails with
// ErrUnsupportedPlatform when the host byte order is not little-endian
// compatible.
func NewWithSeed(poly, seed uint64) (*Digest, error) {
	if !hostorder.Little {
		return nil, ErrUnsupportedPlatform
	}
	return &Digest{crc: seed, seed: seed, tab: MakeTable(poly)}, nil
}

// Write folds p into the running checksum. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.crc = Update(d.crc, d.tab, p)
	return len(p), nil
}

// Sum64 returns the current checksum state.
func (d *Digest) Sum64() uint64 { return d.crc }

// Sum appends the current checksum to in, most significant byte first. The
// state is stored in native order and swapped on little-endian hosts, so the
// serialized form is the same everywhere.
func (d *Digest) Sum(in []byte) []byte {
	v := d.crc
	if hostorder.Little {
		v = bits.ReverseBytes64(v)
	}
	var b [Size]byte
	binary.NativeEndian.PutUint64(b[:], v)
	return append(in, b[:]...)
}

// Reset returns the Digest to its seed state.
func (d *Digest) Reset() { d.crc = d.seed }

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int { return Size }

// BlockSize returns the checksum's block size.
func (d *Digest) BlockSize() int { return 1 }
