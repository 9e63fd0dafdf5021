package bitstream

import "encoding/binary"

// Fixed-width integer access at explicit buffer offsets. Container headers
// are little-endian regardless of host byte order.

// PutUint16 writes v at buf[off..off+2).
func PutUint16(buf []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(buf[off:], v)
}

// PutUint32 writes v at buf[off..off+4).
func PutUint32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// PutUint64 writes v at buf[off..off+8).
func PutUint64(buf []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:], v)
}

// Uint16 reads a uint16 from buf[off..off+2).
func Uint16(buf []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(buf[off:])
}

// Uint32 reads a uint32 from buf[off..off+4).
func Uint32(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off:])
}

// Uint64 reads a uint64 from buf[off..off+8).
func Uint64(buf []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(buf[off:])
}
