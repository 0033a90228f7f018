package crc64

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// check is the standard "123456789" test message used by CRC catalogues.
var check = []byte("123456789")

func TestChecksumISO(t *testing.T) {
	tab := MakeTable(ISO)

	for _, tc := range []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"a", 0x5BB0000000000000},
		{"123456789", 0x46A5A9388A5BEFFE},
		{"hello world", 0x4630C0FBD52653C1},
	} {
		require.Equal(t, tc.want, Checksum(0, tab, []byte(tc.in)), "input %q", tc.in)
	}
}

func TestChecksumECMA(t *testing.T) {
	require.Equal(t, uint64(0x2B9C7EE4E2780C8A), Checksum(0, MakeTable(ECMA), check))
}

func TestChecksumSeed(t *testing.T) {
	tab := MakeTable(ISO)

	// a nonzero seed changes the result but not the fold
	require.Equal(t, uint64(0x46F6A9388A5BEFFE), Checksum(0xFFFFFFFFFFFFFFFF, tab, check))
	require.Equal(t, Update(0xFFFFFFFFFFFFFFFF, tab, check), Checksum(0xFFFFFFFFFFFFFFFF, tab, check))
}

func TestUpdateChaining(t *testing.T) {
	tab := MakeTable(ISO)
	want := Checksum(0, tab, check)

	// feeding the message in two pieces lands on the same state for every
	// split point, including empty halves
	for i := 0; i <= len(check); i++ {
		got := Update(Update(0, tab, check[:i]), tab, check[i:])
		require.Equal(t, want, got, "split at %d", i)
	}
}

func TestTableEntries(t *testing.T) {
	tab := MakeTable(ISO)

	require.Equal(t, uint64(0), tab[0])
	require.Equal(t, uint64(0x01B0000000000000), tab[1])
	require.Equal(t, uint64(0x0360000000000000), tab[2])
	require.Equal(t, uint64(0x9090000000000000), tab[255])
}

func TestMakeTableMemoized(t *testing.T) {
	a := MakeTable(ISO)
	b := MakeTable(ISO)
	require.Same(t, a, b)

	require.NotSame(t, MakeTable(ISO), MakeTable(ECMA))
}

func TestMakeTableConcurrent(t *testing.T) {
	// a polynomial no other test names, so first use races here
	const jones = 0xAD93D23594C935A9

	got := make([]*Table, 32)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = MakeTable(jones)
		}()
	}
	wg.Wait()

	for i := 1; i < len(got); i++ {
		require.Same(t, got[0], got[i])
	}
	require.Equal(t, Checksum(0, got[0], check), Checksum(0, MakeTable(jones), check))
}

func TestDigestStreaming(t *testing.T) {
	d, err := New(ISO)
	require.NoError(t, err)

	n, err := d.Write(check[:3])
	require.NoError(t, err)
	require.Equal(t, 3, n)
	n, err = d.Write(check[3:])
	require.NoError(t, err)
	require.Equal(t, 6, n)

	require.Equal(t, uint64(0x46A5A9388A5BEFFE), d.Sum64())
	require.Equal(t, Size, d.Size())
	require.Equal(t, 1, d.BlockSize())
}

func TestDigestSum(t *testing.T) {
	d, err := New(ISO)
	require.NoError(t, err)
	_, err = d.Write(check)
	require.NoError(t, err)

	// most significant byte first, regardless of how the host stores it
	want := []byte{0x46, 0xA5, 0xA9, 0x38, 0x8A, 0x5B, 0xEF, 0xFE}
	require.Equal(t, want, d.Sum(nil))

	// Sum appends and leaves the state alone
	require.Equal(t, append([]byte("crc:"), want...), d.Sum([]byte("crc:")))
	require.Equal(t, uint64(0x46A5A9388A5BEFFE), d.Sum64())
}

func TestDigestReset(t *testing.T) {
	d, err := NewWithSeed(ISO, 1)
	require.NoError(t, err)

	_, err = d.Write([]byte("toolbelt"))
	require.NoError(t, err)
	require.Equal(t, uint64(0x06911D293113C3D6), d.Sum64())

	// Reset returns to the seed, not to zero
	d.Reset()
	require.Equal(t, uint64(1), d.Sum64())

	_, err = d.Write([]byte("toolbelt"))
	require.NoError(t, err)
	require.Equal(t, uint64(0x06911D293113C3D6), d.Sum64())
}

func BenchmarkChecksum(b *testing.B) {
	tab := MakeTable(ISO)
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(i)
	}
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Checksum(0, tab, buf)
	}
}

func BenchmarkDigestWrite(b *testing.B) {
	d, err := New(ISO)
	if err != nil {
		b.Fatal(err)
	}
	buf := make([]byte, 4096)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Write(buf)
	}
}
