package data

import (
	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
)

// IsBool reports whether the subtype at indices is Bool. Navigation
// failures (bad indices) are reported as false, not propagated, since Is
// accessors are meant as safe predicates.
func (d *Data) IsBool(indices ...int) bool { return d.isCode(types.Bool, indices) }

func (d *Data) isCode(want types.Code, indices []int) bool {
	typ, _, _, err := d.locate(indices)
	return err == nil && typ.Code() == want
}

// GetBool returns the boolean at indices.
func (d *Data) GetBool(indices ...int) (bool, error) {
	_, buf, ofs, err := d.requireSubtype(types.Bool, indices)
	if err != nil {
		return false, errors.Wrap(err, "data: GetBool")
	}
	return wire.ReadBool(buf, ofs), nil
}

// SetBool sets the boolean at indices and returns d for chaining.
func (d *Data) SetBool(v bool, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Bool, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetBool")
	}
	wire.WriteBool(buf, ofs, v)
	return d, nil
}

// IsInt reports whether the subtype at indices is Int.
func (d *Data) IsInt(indices ...int) bool { return d.isCode(types.Int, indices) }

// GetInt returns the signed 32-bit integer at indices.
func (d *Data) GetInt(indices ...int) (int32, error) {
	_, buf, ofs, err := d.requireSubtype(types.Int, indices)
	if err != nil {
		return 0, errors.Wrap(err, "data: GetInt")
	}
	return wire.ReadInt32(buf, ofs), nil
}

// SetInt sets the signed 32-bit integer at indices and returns d for
// chaining.
func (d *Data) SetInt(v int32, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Int, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetInt")
	}
	wire.WriteInt32(buf, ofs, v)
	return d, nil
}

// IsWord reports whether the subtype at indices is Word.
func (d *Data) IsWord(indices ...int) bool { return d.isCode(types.Word, indices) }

// GetWord returns the unsigned 32-bit integer at indices.
func (d *Data) GetWord(indices ...int) (uint32, error) {
	_, buf, ofs, err := d.requireSubtype(types.Word, indices)
	if err != nil {
		return 0, errors.Wrap(err, "data: GetWord")
	}
	return wire.ReadUint32(buf, ofs), nil
}

// SetWord sets the unsigned 32-bit integer at indices and returns d for
// chaining.
func (d *Data) SetWord(v uint32, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Word, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetWord")
	}
	wire.WriteUint32(buf, ofs, v)
	return d, nil
}

// IsBytes reports whether the subtype at indices is Str.
func (d *Data) IsBytes(indices ...int) bool { return d.isCode(types.Str, indices) }

// GetBytes returns the raw payload bytes at indices. The returned slice
// aliases the heap entry; callers that mutate it mutate this Data.
func (d *Data) GetBytes(indices ...int) ([]byte, error) {
	_, buf, ofs, err := d.requireSubtype(types.Str, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: GetBytes")
	}
	idx := int(wire.ReadInt32(buf, ofs))
	if idx < 0 || idx >= d.heap.len() {
		return nil, &CodecError{Offset: ofs, Reason: "string heap index out of range"}
	}
	return d.heap.get(idx), nil
}

// SetBytes sets the raw payload bytes at indices. Writing to an
// already-assigned slot overwrites the heap entry in place, reusing the
// inline index (§3.2).
func (d *Data) SetBytes(v []byte, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Str, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetBytes")
	}
	heapIdx := int(wire.ReadInt32(buf, ofs))
	if heapIdx == -1 {
		wire.WriteInt32(buf, ofs, int32(d.heap.add(v)))
	} else {
		d.heap.set(heapIdx, v)
	}
	return d, nil
}

// IsString reports whether the subtype at indices is Str.
func (d *Data) IsString(indices ...int) bool { return d.isCode(types.Str, indices) }

// GetString returns the payload at indices decoded as ISO-8859-1 (the
// canonical path is GetBytes; this is a convenience per §9's string
// encoding design note).
func (d *Data) GetString(indices ...int) (string, error) {
	b, err := d.GetBytes(indices...)
	if err != nil {
		return "", err
	}
	return decodeLatin1(b), nil
}

// SetString sets the payload at indices from s, encoded as ISO-8859-1.
func (d *Data) SetString(s string, indices ...int) (*Data, error) {
	return d.SetBytes(encodeLatin1(s), indices...)
}

// decodeLatin1 interprets b as ISO-8859-1, the convention LabRAD uses for
// its byte-transparent string type (§9).
func decodeLatin1(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}

// encodeLatin1 is the inverse of decodeLatin1; runes outside [0,255] are
// truncated to their low byte, matching ISO-8859-1's one-byte-per-rune
// range.
func encodeLatin1(s string) []byte {
	rs := []rune(s)
	b := make([]byte, len(rs))
	for i, r := range rs {
		b[i] = byte(r)
	}
	return b
}

// IsValue reports whether the subtype at indices is Value.
func (d *Data) IsValue(indices ...int) bool { return d.isCode(types.Value, indices) }

// GetValue returns the IEEE-754 double at indices.
func (d *Data) GetValue(indices ...int) (float64, error) {
	_, buf, ofs, err := d.requireSubtype(types.Value, indices)
	if err != nil {
		return 0, errors.Wrap(err, "data: GetValue")
	}
	return wire.ReadFloat64(buf, ofs), nil
}

// SetValue sets the IEEE-754 double at indices and returns d for chaining.
func (d *Data) SetValue(v float64, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Value, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetValue")
	}
	wire.WriteFloat64(buf, ofs, v)
	return d, nil
}

// IsComplex reports whether the subtype at indices is Complex.
func (d *Data) IsComplex(indices ...int) bool { return d.isCode(types.Complex, indices) }

// GetComplex returns the (real, imag) pair at indices.
func (d *Data) GetComplex(indices ...int) (re, im float64, err error) {
	_, buf, ofs, err := d.requireSubtype(types.Complex, indices)
	if err != nil {
		return 0, 0, errors.Wrap(err, "data: GetComplex")
	}
	re, im = wire.ReadComplex(buf, ofs)
	return re, im, nil
}

// SetComplex sets the (real, imag) pair at indices and returns d for
// chaining.
func (d *Data) SetComplex(re, im float64, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Complex, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetComplex")
	}
	wire.WriteComplex(buf, ofs, re, im)
	return d, nil
}

// Units returns the units string at indices, if the subtype there is Value
// or Complex and carries one.
func (d *Data) Units(indices ...int) (string, bool) {
	typ, _, _, err := d.locate(indices)
	if err != nil {
		return "", false
	}
	switch typ.Code() {
	case types.Value, types.Complex:
		return typ.Units()
	default:
		return "", false
	}
}
