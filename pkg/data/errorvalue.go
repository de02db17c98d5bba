package data

import (
	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
)

// IsError reports whether the subtype at indices is Error.
func (d *Data) IsError(indices ...int) bool { return d.isCode(types.Error, indices) }

// GetErrorCode returns the error code at indices. Inline layout is
// i32 code, i32 heap-index-of-message, then the payload area (§3.1).
func (d *Data) GetErrorCode(indices ...int) (int32, error) {
	_, buf, ofs, err := d.requireSubtype(types.Error, indices)
	if err != nil {
		return 0, errors.Wrap(err, "data: GetErrorCode")
	}
	return wire.ReadInt32(buf, ofs), nil
}

// GetErrorMessage returns the error message at indices, decoded as
// ISO-8859-1.
func (d *Data) GetErrorMessage(indices ...int) (string, error) {
	_, buf, ofs, err := d.requireSubtype(types.Error, indices)
	if err != nil {
		return "", errors.Wrap(err, "data: GetErrorMessage")
	}
	idx := int(wire.ReadInt32(buf, ofs+4))
	if idx < 0 || idx >= d.heap.len() {
		return "", &CodecError{Offset: ofs + 4, Reason: "error message heap index out of range"}
	}
	return decodeLatin1(d.heap.get(idx)), nil
}

// GetErrorPayload returns a view of the error's payload subtree at
// indices; it shares storage with d.
func (d *Data) GetErrorPayload(indices ...int) (*Data, error) {
	typ, buf, ofs, err := d.requireSubtype(types.Error, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: GetErrorPayload")
	}
	return &Data{typ: typ.Subtype(0), bytes: buf, offset: ofs + 8, heap: d.heap}, nil
}

// SetError sets the error code and message at indices, leaving the payload
// area untouched (callers set it through GetErrorPayload), and returns d
// for chaining. The message heap slot is reused in place on repeated calls,
// matching the heap-reuse contract of §3.2.
func (d *Data) SetError(code int32, message string, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Error, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetError")
	}
	wire.WriteInt32(buf, ofs, code)
	msgBytes := encodeLatin1(message)
	heapIdx := int(wire.ReadInt32(buf, ofs+4))
	if heapIdx == -1 {
		wire.WriteInt32(buf, ofs+4, int32(d.heap.add(msgBytes)))
	} else {
		d.heap.set(heapIdx, msgBytes)
	}
	return d, nil
}
