// Package wirebuf is a growable byte buffer and matching sequential reader
// used by pkg/packet to assemble and parse the records region of a Packet.
// It is a structural adaptation of the teacher module's strandbuf package:
// same grow/need shape, but big-endian, since that is what the LabRAD wire
// protocol requires (strandbuf's original encoding was little-endian).
package wirebuf

// Buffer is a growable byte buffer used to assemble a packet's records
// region before it is written out behind a 20-byte packet header.
type Buffer struct {
	data []byte
}

// NewBuffer returns a Buffer pre-allocated with the given capacity.
func NewBuffer(cap int) *Buffer {
	return &Buffer{data: make([]byte, 0, cap)}
}

// Bytes returns the accumulated bytes.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Reset clears the buffer for reuse.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// grow ensures room for n additional bytes, returning the write offset.
func (b *Buffer) grow(n int) int {
	off := len(b.data)
	need := off + n
	if need <= cap(b.data) {
		b.data = b.data[:need]
		return off
	}
	newCap := cap(b.data) * 2
	if newCap < need {
		newCap = need
	}
	tmp := make([]byte, need, newCap)
	copy(tmp, b.data)
	b.data = tmp
	return off
}

// WriteUint32 appends a 32-bit unsigned integer in big-endian order.
func (b *Buffer) WriteUint32(v uint32) {
	off := b.grow(4)
	b.data[off] = byte(v >> 24)
	b.data[off+1] = byte(v >> 16)
	b.data[off+2] = byte(v >> 8)
	b.data[off+3] = byte(v)
}

// WriteInt32 appends a 32-bit signed integer in big-endian order.
func (b *Buffer) WriteInt32(v int32) {
	b.WriteUint32(uint32(v))
}

// WriteBytes appends p verbatim, with no length prefix. Callers that need a
// length-prefixed field write the length themselves via WriteUint32 first.
func (b *Buffer) WriteBytes(p []byte) {
	off := b.grow(len(p))
	copy(b.data[off:], p)
}

// WriteLenPrefixed appends a uint32 length followed by p, the StrandBuf-style
// "string"/"bytes" wire shape reused here for the record tag and payload
// fields (§4.E).
func (b *Buffer) WriteLenPrefixed(p []byte) {
	b.WriteUint32(uint32(len(p)))
	b.WriteBytes(p)
}
