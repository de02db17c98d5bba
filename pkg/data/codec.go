package data

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
)

// Flatten writes d to a self-contained byte sequence (§4.C). It is
// grounded on Data.java's flatten(ByteArrayOutputStream, ...): the
// fixed-width case emits the inline bytes verbatim, the variable-width
// cases recurse by code.
func (d *Data) Flatten() ([]byte, error) {
	var buf bytes.Buffer
	if err := flattenInto(&buf, d.typ, d.bytes, d.offset, d.heap); err != nil {
		return nil, errors.Wrap(err, "data: Flatten")
	}
	return buf.Bytes(), nil
}

func flattenInto(w *bytes.Buffer, t types.Type, buf []byte, ofs int, h *heap) error {
	if t.IsFixed() {
		w.Write(buf[ofs : ofs+t.InlineWidth()])
		return nil
	}
	switch t.Code() {
	case types.Str:
		idx := int(wire.ReadInt32(buf, ofs))
		sbuf, err := heapBytes(h, idx, ofs)
		if err != nil {
			return err
		}
		writeLengthPrefixed(w, sbuf)

	case types.List:
		depth := t.Depth()
		elemType := t.Subtype(0)
		size := 1
		for i := 0; i < depth; i++ {
			size *= int(wire.ReadInt32(buf, ofs+4*i))
		}
		w.Write(buf[ofs : ofs+4*depth])
		heapIdx := int(wire.ReadInt32(buf, ofs+4*depth))
		lbuf, err := heapBytes(h, heapIdx, ofs+4*depth)
		if err != nil {
			return err
		}
		if elemType.IsFixed() {
			w.Write(lbuf[:elemType.InlineWidth()*size])
		} else {
			for i := 0; i < size; i++ {
				if err := flattenInto(w, elemType, lbuf, elemType.InlineWidth()*i, h); err != nil {
					return err
				}
			}
		}

	case types.Cluster:
		for i := 0; i < t.Size(); i++ {
			if err := flattenInto(w, t.Subtype(i), buf, ofs+t.ClusterOffset(i), h); err != nil {
				return err
			}
		}

	case types.Error:
		// Error is encoded as the cluster (i32 code, str message, T payload).
		w.Write(buf[ofs : ofs+4])
		idx := int(wire.ReadInt32(buf, ofs+4))
		msg, err := heapBytes(h, idx, ofs+4)
		if err != nil {
			return err
		}
		writeLengthPrefixed(w, msg)
		if err := flattenInto(w, t.Subtype(0), buf, ofs+8, h); err != nil {
			return err
		}

	default:
		return &CodecError{Offset: ofs, Reason: "unknown type code " + t.Code().String()}
	}
	return nil
}

func heapBytes(h *heap, idx, ofs int) ([]byte, error) {
	if idx < 0 || idx >= h.len() {
		return nil, &CodecError{Offset: ofs, Reason: "heap index out of range"}
	}
	return h.get(idx), nil
}

func writeLengthPrefixed(w *bytes.Buffer, b []byte) {
	var lenBuf [4]byte
	wire.WriteUint32(lenBuf[:], 0, uint32(len(b)))
	w.Write(lenBuf[:])
	w.Write(b)
}

// Unflatten is the exact inverse of Flatten: it allocates a fresh inline
// buffer of t's width and an empty heap, then walks t reading bytes from
// buf (§4.C).
func Unflatten(buf []byte, t types.Type) (*Data, error) {
	cur := &cursor{buf: buf}
	inline := make([]byte, t.InlineWidth())
	h := newHeap()
	if err := unflattenInto(cur, t, inline, 0, h); err != nil {
		return nil, errors.Wrap(err, "data: Unflatten")
	}
	return &Data{typ: t, bytes: inline, offset: 0, heap: h}, nil
}

// cursor tracks a read position into a flattened byte sequence, failing
// with CodecError on truncation instead of panicking.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, &CodecError{Offset: c.pos, Reason: "truncated input"}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func unflattenInto(c *cursor, t types.Type, buf []byte, ofs int, h *heap) error {
	if t.IsFixed() {
		b, err := c.take(t.InlineWidth())
		if err != nil {
			return err
		}
		copy(buf[ofs:ofs+t.InlineWidth()], b)
		return nil
	}
	switch t.Code() {
	case types.Str:
		lenBytes, err := c.take(4)
		if err != nil {
			return err
		}
		length := int(wire.ReadUint32(lenBytes, 0))
		payload, err := c.take(length)
		if err != nil {
			return err
		}
		sbuf := make([]byte, length)
		copy(sbuf, payload)
		wire.WriteInt32(buf, ofs, int32(h.add(sbuf)))

	case types.List:
		depth := t.Depth()
		elemType := t.Subtype(0)
		shapeBytes, err := c.take(4 * depth)
		if err != nil {
			return err
		}
		copy(buf[ofs:ofs+4*depth], shapeBytes)
		size := 1
		for i := 0; i < depth; i++ {
			size *= int(wire.ReadInt32(buf, ofs+4*i))
		}
		if size < 0 {
			return &CodecError{Offset: ofs, Reason: "negative list size"}
		}
		// Every element flattens to at least minElem bytes (a variable-width
		// element to at least 4), so a size the remaining input cannot hold
		// is rejected before the element buffer is allocated.
		minElem := elemType.InlineWidth()
		if !elemType.IsFixed() {
			minElem = 4
		}
		if minElem > 0 && size > (len(c.buf)-c.pos)/minElem {
			return &CodecError{Offset: c.pos, Reason: "truncated input"}
		}
		lbuf := make([]byte, elemType.InlineWidth()*size)
		wire.WriteInt32(buf, ofs+4*depth, int32(h.add(lbuf)))
		if elemType.IsFixed() {
			payload, err := c.take(elemType.InlineWidth() * size)
			if err != nil {
				return err
			}
			copy(lbuf, payload)
		} else {
			for i := 0; i < size; i++ {
				if err := unflattenInto(c, elemType, lbuf, elemType.InlineWidth()*i, h); err != nil {
					return err
				}
			}
		}

	case types.Cluster:
		for i := 0; i < t.Size(); i++ {
			if err := unflattenInto(c, t.Subtype(i), buf, ofs+t.ClusterOffset(i), h); err != nil {
				return err
			}
		}

	case types.Error:
		codeBytes, err := c.take(4)
		if err != nil {
			return err
		}
		copy(buf[ofs:ofs+4], codeBytes)
		lenBytes, err := c.take(4)
		if err != nil {
			return err
		}
		length := int(wire.ReadUint32(lenBytes, 0))
		msgPayload, err := c.take(length)
		if err != nil {
			return err
		}
		msg := make([]byte, length)
		copy(msg, msgPayload)
		wire.WriteInt32(buf, ofs+4, int32(h.add(msg)))
		if err := unflattenInto(c, t.Subtype(0), buf, ofs+8, h); err != nil {
			return err
		}

	default:
		return &CodecError{Offset: ofs, Reason: "unknown type code " + t.Code().String()}
	}
	return nil
}
