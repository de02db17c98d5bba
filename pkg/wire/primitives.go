// Package wire provides allocation-free reads and writes of LabRAD's
// fixed-width scalar encodings at a (buffer, offset) pair. Every multi-byte
// value is big-endian, per the LabRAD wire protocol; this is the one package
// in the module allowed to know that.
package wire

import "math"

// FillUnassigned fills buf with 0xFF, the sentinel a freshly constructed
// Data's inline area is initialized to so that a variable-width slot reads
// as -1 ("unassigned") until it is first set.
func FillUnassigned(buf []byte) {
	for i := range buf {
		buf[i] = 0xFF
	}
}

// ReadBool reads a single byte at ofs as a boolean (non-zero is true).
func ReadBool(buf []byte, ofs int) bool {
	return buf[ofs] != 0
}

// WriteBool writes a boolean as a single byte at ofs.
func WriteBool(buf []byte, ofs int, v bool) {
	if v {
		buf[ofs] = 1
	} else {
		buf[ofs] = 0
	}
}

// ReadInt32 reads a signed 32-bit big-endian integer at ofs.
func ReadInt32(buf []byte, ofs int) int32 {
	return int32(ReadUint32(buf, ofs))
}

// WriteInt32 writes a signed 32-bit big-endian integer at ofs.
func WriteInt32(buf []byte, ofs int, v int32) {
	WriteUint32(buf, ofs, uint32(v))
}

// ReadUint32 reads an unsigned 32-bit big-endian integer at ofs.
func ReadUint32(buf []byte, ofs int) uint32 {
	return uint32(buf[ofs])<<24 | uint32(buf[ofs+1])<<16 | uint32(buf[ofs+2])<<8 | uint32(buf[ofs+3])
}

// WriteUint32 writes an unsigned 32-bit big-endian integer at ofs.
func WriteUint32(buf []byte, ofs int, v uint32) {
	buf[ofs] = byte(v >> 24)
	buf[ofs+1] = byte(v >> 16)
	buf[ofs+2] = byte(v >> 8)
	buf[ofs+3] = byte(v)
}

// ReadUint64 reads an unsigned 64-bit big-endian integer at ofs.
func ReadUint64(buf []byte, ofs int) uint64 {
	hi := ReadUint32(buf, ofs)
	lo := ReadUint32(buf, ofs+4)
	return uint64(hi)<<32 | uint64(lo)
}

// WriteUint64 writes an unsigned 64-bit big-endian integer at ofs.
func WriteUint64(buf []byte, ofs int, v uint64) {
	WriteUint32(buf, ofs, uint32(v>>32))
	WriteUint32(buf, ofs+4, uint32(v))
}

// ReadInt64 reads a signed 64-bit big-endian integer at ofs.
func ReadInt64(buf []byte, ofs int) int64 {
	return int64(ReadUint64(buf, ofs))
}

// WriteInt64 writes a signed 64-bit big-endian integer at ofs.
func WriteInt64(buf []byte, ofs int, v int64) {
	WriteUint64(buf, ofs, uint64(v))
}

// ReadFloat64 reads an IEEE-754 double at ofs.
func ReadFloat64(buf []byte, ofs int) float64 {
	return math.Float64frombits(ReadUint64(buf, ofs))
}

// WriteFloat64 writes an IEEE-754 double at ofs.
func WriteFloat64(buf []byte, ofs int, v float64) {
	WriteUint64(buf, ofs, math.Float64bits(v))
}

// ReadComplex reads two consecutive doubles (real, imag) at ofs.
func ReadComplex(buf []byte, ofs int) (re, im float64) {
	return ReadFloat64(buf, ofs), ReadFloat64(buf, ofs+8)
}

// WriteComplex writes two consecutive doubles (real, imag) at ofs.
func WriteComplex(buf []byte, ofs int, re, im float64) {
	WriteFloat64(buf, ofs, re)
	WriteFloat64(buf, ofs+8, im)
}
