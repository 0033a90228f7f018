// Package crc16 computes 16-bit cyclic redundancy checks in the three
// variants most often met in device and file-transfer protocols.
//
// Each variant is defined by a seed, a table polynomial, and a per-byte
// update direction; none of them applies a final XOR:
//
//	Modbus      seed 0xFFFF   reflected polynomial 0xA001 (0x8005 bit-reversed)
//	CCITTFalse  seed 0xFFFF   polynomial 0x1021, MSB first
//	Kermit      seed 0x0000   reflected polynomial 0x8408 (0x1021 bit-reversed)
//
// Lookup tables are built once and shared for the life of the process: the
// Modbus table is a compiled-in literal, the other two are generated on
// first use. All functions are safe for concurrent use; the running checksum
// value is local to each call.
package crc16

import "fmt"

// Size of a CRC-16 checksum in bytes.
const Size = 2

const (
	modbusPoly uint16 = 0xA001
	ccittPoly  uint16 = 0x1021
	kermitPoly uint16 = 0x8408

	modbusSeed uint16 = 0xFFFF
	ccittSeed  uint16 = 0xFFFF
	kermitSeed uint16 = 0x0000
)

// Method selects the CRC-16 variant. Functions in this package treat an
// unrecognized Method as Modbus rather than failing; callers that need
// strict validation should go through ParseMethod.
type Method int

const (
	// Modbus is the variant used by the Modbus RTU frame check.
	Modbus Method = iota
	// CCITTFalse is the variant commonly labeled CCITT with seed 0xFFFF
	// (also known as CRC-16/CCITT-FALSE), used by XMODEM relatives.
	CCITTFalse
	// Kermit is the reflected CCITT variant with seed zero.
	Kermit
)

// String returns the canonical lower-case name of the method. Unrecognized
// values stringify as Modbus, mirroring the checksum fallback.
func (m Method) String() string {
	switch m {
	case CCITTFalse:
		return "ccitt-false"
	case Kermit:
		return "kermit"
	default:
		return "modbus"
	}
}

// ParseMethod maps a method name to its Method value. It accepts the names
// produced by String plus common aliases ("ccitt", "xmodem").
func ParseMethod(name string) (Method, error) {
	switch name {
	case "modbus":
		return Modbus, nil
	case "ccitt-false", "ccitt", "xmodem":
		return CCITTFalse, nil
	case "kermit":
		return Kermit, nil
	default:
		return 0, fmt.Errorf("crc16: unknown method %q", name)
	}
}

// Seed returns the initial accumulator value of the method. The checksum of
// an empty buffer equals the seed.
func Seed(m Method) uint16 {
	switch m {
	case Kermit:
		return kermitSeed
	case CCITTFalse:
		return ccittSeed
	default:
		return modbusSeed
	}
}

// Update feeds p into a running checksum and returns the new value. Start
// from Seed(m) and chain Update calls to checksum fragmented input:
//
//	crc := crc16.Seed(m)
//	crc = crc16.Update(m, crc, part1)
//	crc = crc16.Update(m, crc, part2)
func Update(m Method, crc uint16, p []byte) uint16 {
	switch m {
	case CCITTFalse:
		return updateMSB(crc, ccittTable(), p)
	case Kermit:
		return updateReflected(crc, kermitTable(), p)
	default:
		return updateReflected(crc, &modbusTable, p)
	}
}

// Checksum returns the checksum of p under the given method. To checksum
// only the first n bytes pass p[:n]; as with any slice expression, n beyond
// len(p) panics rather than being clamped.
func Checksum(m Method, p []byte) uint16 {
	return Update(m, Seed(m), p)
}

func updateReflected(crc uint16, tab *table, p []byte) uint16 {
	for _, v := range p {
		crc = crc>>8 ^ tab[byte(crc)^v]
	}
	return crc
}

func updateMSB(crc uint16, tab *table, p []byte) uint16 {
	for _, v := range p {
		crc = crc<<8 ^ tab[byte(crc>>8)^v]
	}
	return crc
}
