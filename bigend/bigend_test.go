package bigend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnownVectors(t *testing.T) {
	require.Equal(t, []byte{0x12, 0x34}, Uint16Bytes(0x1234))
	require.Equal(t, uint16(0x1234), Uint16([]byte{0x12, 0x34}, 0))

	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, Int32Bytes(0x12345678))
	require.Equal(t, int32(0x12345678), Int32([]byte{0x12, 0x34, 0x56, 0x78}, 0))

	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78, 0x21, 0x43, 0x65, 0x87},
		Uint64Bytes(0x1234567821436587))

	// MSB first regardless of host order
	require.Equal(t, []byte{0xFF, 0x00}, Uint16Bytes(0xFF00))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, Uint32Bytes(1))
}

func TestRoundTripUint(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x1234, 0x8000, 0xFFFF} {
		require.Equal(t, v, Uint16(Uint16Bytes(v), 0))
	}
	for _, v := range []uint32{0, 1, 0xDEADBEEF, 0x12345678, 0xFFFFFFFF} {
		require.Equal(t, v, Uint32(Uint32Bytes(v), 0))
	}
	for _, v := range []uint64{0, 1, 0x0102030405060708, math.MaxUint64} {
		require.Equal(t, v, Uint64(Uint64Bytes(v), 0))
	}
}

func TestRoundTripInt(t *testing.T) {
	for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		require.Equal(t, v, Int16(Int16Bytes(v), 0))
	}
	for _, v := range []int32{math.MinInt32, -1, 0, 0x12345678, math.MaxInt32} {
		require.Equal(t, v, Int32(Int32Bytes(v), 0))
	}
	for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
		require.Equal(t, v, Int64(Int64Bytes(v), 0))
	}
}

func TestRoundTripFloat(t *testing.T) {
	f32s := []float32{0, 1.5, -3.25, math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1))}
	for _, v := range f32s {
		require.Equal(t, math.Float32bits(v), math.Float32bits(Float32(Float32Bytes(v), 0)))
	}
	f64s := []float64{0, math.Copysign(0, -1), 1.5, -3.25, math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	for _, v := range f64s {
		require.Equal(t, math.Float64bits(v), math.Float64bits(Float64(Float64Bytes(v), 0)))
	}

	// NaN payload bits survive the trip even though NaN != NaN
	nan := math.Float64frombits(0x7FF8000000000001)
	require.Equal(t, uint64(0x7FF8000000000001), math.Float64bits(Float64(Float64Bytes(nan), 0)))
}

func TestRoundTripBoolRune(t *testing.T) {
	require.Equal(t, []byte{0x01}, BoolBytes(true))
	require.Equal(t, []byte{0x00}, BoolBytes(false))
	require.True(t, Bool(BoolBytes(true), 0))
	require.False(t, Bool(BoolBytes(false), 0))
	// any nonzero byte decodes true
	require.True(t, Bool([]byte{0x02}, 0))

	for _, r := range []rune{0, 'A', 'é', '世', 0x10FFFF, -1} {
		require.Equal(t, r, Rune(RuneBytes(r), 0))
	}
}

func TestOffsets(t *testing.T) {
	b := make([]byte, 16)
	PutUint16(b, 1, 0xBEEF)
	PutUint32(b, 3, 0xCAFEBABE)
	PutUint64(b, 7, 0x1122334455667788)

	require.Equal(t, uint16(0xBEEF), Uint16(b, 1))
	require.Equal(t, uint32(0xCAFEBABE), Uint32(b, 3))
	require.Equal(t, uint64(0x1122334455667788), Uint64(b, 7))

	// writes land exactly where asked, MSB first
	require.Equal(t, byte(0xBE), b[1])
	require.Equal(t, byte(0xEF), b[2])
	require.Equal(t, byte(0xCA), b[3])
	require.Equal(t, byte(0x11), b[7])
	require.Equal(t, byte(0x88), b[14])
}

func TestDecodeIsDeterministic(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	for off := 0; off+Size32 <= len(b); off++ {
		first := Uint32(b, off)
		require.Equal(t, first, Uint32(b, off))
	}
}

func TestShortBufferPanics(t *testing.T) {
	short := []byte{0x01, 0x02, 0x03}

	require.Panics(t, func() { Uint32(short, 0) })
	require.Panics(t, func() { Uint16(short, 2) })
	require.Panics(t, func() { Uint64(short, 0) })
	require.Panics(t, func() { Float64(short, 0) })
	require.Panics(t, func() { Bool(short, 3) })
	require.Panics(t, func() { Uint16(short, -1) })

	require.Panics(t, func() { PutUint32(short, 0, 1) })
	require.Panics(t, func() { PutUint16(short, 2, 1) })
}

func TestPutBoolOverwrites(t *testing.T) {
	b := []byte{0xFF}
	PutBool(b, 0, false)
	require.Equal(t, byte(0x00), b[0])
	PutBool(b, 0, true)
	require.Equal(t, byte(0x01), b[0])
}

func BenchmarkUint64(b *testing.B) {
	buf := Uint64Bytes(0x0102030405060708)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Uint64(buf, 0)
	}
}

func BenchmarkPutUint16(b *testing.B) {
	buf := make([]byte, Size16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		PutUint16(buf, 0, 0x1234)
	}
}
