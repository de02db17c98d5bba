package wirebuf

import "errors"

// ErrShortBuffer is returned when the Reader has fewer bytes than required.
var ErrShortBuffer = errors.New("wirebuf: insufficient data in buffer")

// Reader provides sequential, zero-copy decoding of a big-endian byte slice.
type Reader struct {
	data   []byte
	offset int
}

// NewReader wraps an existing byte slice for decoding.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// need checks that at least n bytes remain and returns the current offset.
func (r *Reader) need(n int) (int, error) {
	if n < 0 || r.offset+n > len(r.data) {
		return 0, ErrShortBuffer
	}
	off := r.offset
	r.offset += n
	return off, nil
}

// ReadUint32 reads a 32-bit unsigned integer in big-endian order.
func (r *Reader) ReadUint32() (uint32, error) {
	off, err := r.need(4)
	if err != nil {
		return 0, err
	}
	d := r.data
	return uint32(d[off])<<24 | uint32(d[off+1])<<16 | uint32(d[off+2])<<8 | uint32(d[off+3]), nil
}

// ReadInt32 reads a 32-bit signed integer in big-endian order.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadBytes reads exactly n bytes. The returned slice aliases the Reader's
// underlying buffer (zero-copy); callers that retain it past the Reader's
// lifetime must copy it themselves.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	off, err := r.need(n)
	if err != nil {
		return nil, err
	}
	return r.data[off : off+n], nil
}

// ReadLenPrefixed reads a uint32 length followed by that many bytes.
func (r *Reader) ReadLenPrefixed() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(int(n))
}
