package data

import (
	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
)

// IsArray reports whether the subtype at indices is List.
func (d *Data) IsArray(indices ...int) bool { return d.isCode(types.List, indices) }

// GetArrayShape returns the list's shape dimensions at indices.
func (d *Data) GetArrayShape(indices ...int) ([]int, error) {
	typ, buf, ofs, err := d.requireSubtype(types.List, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: GetArrayShape")
	}
	depth := typ.Depth()
	shape := make([]int, depth)
	for i := 0; i < depth; i++ {
		shape[i] = int(wire.ReadInt32(buf, ofs+4*i))
	}
	return shape, nil
}

// GetArraySize returns the length of a 1-D list at indices. Returns an
// error if the list has more than one dimension; use GetArrayShape for
// those.
func (d *Data) GetArraySize(indices ...int) (int, error) {
	shape, err := d.GetArrayShape(indices...)
	if err != nil {
		return 0, err
	}
	if len(shape) != 1 {
		return 0, errors.Errorf("data: GetArraySize: %d-dimensional array, use GetArrayShape", len(shape))
	}
	return shape[0], nil
}

// SetArraySize sets the shape of a 1-D list at indices and returns d for
// chaining.
func (d *Data) SetArraySize(size int, indices ...int) (*Data, error) {
	return d.SetArrayShape([]int{size}, indices...)
}

// SetArrayShape sets the list's shape at indices, allocating a fresh
// element buffer and storing it in a new heap slot (or in the list's
// existing heap slot if one is already assigned, per the heap-reuse
// contract of §3.2). Returns
// ShapeMismatchError if len(shape) does not equal the list's depth.
func (d *Data) SetArrayShape(shape []int, indices ...int) (*Data, error) {
	typ, buf, ofs, err := d.requireSubtype(types.List, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetArrayShape")
	}
	depth := typ.Depth()
	if len(shape) != depth {
		return nil, &ShapeMismatchError{Want: depth, Got: len(shape)}
	}
	elemType := typ.Subtype(0)
	size := 1
	for i := 0; i < depth; i++ {
		wire.WriteInt32(buf, ofs+4*i, int32(shape[i]))
		size *= shape[i]
	}
	elemBuf := make([]byte, elemType.InlineWidth()*size)
	wire.FillUnassigned(elemBuf)
	heapIdx := int(wire.ReadInt32(buf, ofs+4*depth))
	if heapIdx == -1 {
		wire.WriteInt32(buf, ofs+4*depth, int32(d.heap.add(elemBuf)))
	} else {
		d.heap.set(heapIdx, elemBuf)
	}
	return d, nil
}
