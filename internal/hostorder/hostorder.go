// Package hostorder reports the byte order of the running process.
//
// The order is probed exactly once, at package initialization, by writing a
// known multi-byte pattern through the platform's native layout and
// inspecting which byte lands first. Packages that translate between the
// host's in-memory representation and a fixed wire order branch on the cached
// flag instead of re-detecting per call.
package hostorder

import "encoding/binary"

// Little reports whether the host stores multi-byte integers least
// significant byte first. It is immutable after process start.
var Little = probe()

func probe() bool {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x00FF)
	return b[0] == 0xFF
}
