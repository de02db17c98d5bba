// Package data implements the LabRAD Data value: a type-tagged, dual
// representation value with a fixed inline area and a heap for
// variable-width payloads, its flatten/unflatten codec, and pretty-printing.
// It is grounded almost line-for-line in control flow on
// org.labrad.data.Data (Data.java) from the JLabrad reference
// implementation, reshaped into idiomatic Go: explicit error returns in
// place of unchecked RuntimeExceptions, and a *heap indirection in place of
// a shared List<byte[]> reference.
package data

import (
	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
)

// Data pairs a Type with storage: a shared byte buffer holding this value's
// (or this view's) inline area, and a heap of variable-length payloads
// indexed by i32 sentinels stored inline (§3.2).
type Data struct {
	typ    types.Type
	bytes  []byte
	offset int
	heap   *heap
}

// New constructs a Data that owns a fresh inline buffer for t, initialized
// to the 0xFF "unassigned" sentinel (§3.2), and an empty heap.
func New(t types.Type) *Data {
	buf := make([]byte, t.InlineWidth())
	wire.FillUnassigned(buf)
	return &Data{typ: t, bytes: buf, offset: 0, heap: newHeap()}
}

// NewFromTag parses tag and constructs a fresh Data of that type.
func NewFromTag(tag string) (*Data, error) {
	t, err := types.Parse(tag)
	if err != nil {
		return nil, err
	}
	return New(t), nil
}

// Type returns the Type describing this Data value (or this view of it).
func (d *Data) Type() types.Type { return d.typ }

// Tag returns the type tag string of this Data value.
func (d *Data) Tag() string { return d.typ.Tag() }

// Clone returns a Data that owns an independent deep copy of this value's
// inline area and heap (§3.2: "Heap contents are not shared between
// independently constructed Data values").
func (d *Data) Clone() *Data {
	buf := make([]byte, len(d.bytes)-d.offset)
	copy(buf, d.bytes[d.offset:])
	return &Data{typ: d.typ, bytes: buf, offset: 0, heap: d.heap.clone()}
}

// IsEmpty reports whether this Data is the unit type. Top-level only.
func (d *Data) IsEmpty() bool { return d.typ.Code() == types.Empty }

// locate walks indices through d's type and storage, returning the subtype
// at that path together with the (buffer, offset) pair backing it. It
// mirrors Data.java's getSubtype/getOffset combined into a single pass.
func (d *Data) locate(indices []int) (types.Type, []byte, int, error) {
	typ := d.typ
	buf := d.bytes
	ofs := d.offset

	depth := 0
	dimsLeft := 0
	var shape []int
	var listIndices []int

	for _, i := range indices {
		switch typ.Code() {
		case types.List:
			if dimsLeft == 0 {
				depth = typ.Depth()
				shape = make([]int, depth)
				listIndices = make([]int, depth)
				for j := 0; j < depth; j++ {
					shape[j] = int(wire.ReadInt32(buf, ofs+4*j))
				}
				dimsLeft = depth
				heapIdx := int(wire.ReadInt32(buf, ofs+4*depth))
				if heapIdx < 0 || heapIdx >= d.heap.len() {
					return types.Type{}, nil, 0, errors.Errorf("data: list at %v has no element buffer", indices)
				}
				buf = d.heap.get(heapIdx)
			}
			if i < 0 || i >= shape[depth-dimsLeft] {
				return types.Type{}, nil, 0, errors.Errorf("data: index %d out of range at %v", i, indices)
			}
			listIndices[depth-dimsLeft] = i
			dimsLeft--
			if dimsLeft == 0 {
				typ = typ.Subtype(0)
				ofs = 0
				product := 1
				for dim := depth - 1; dim >= 0; dim-- {
					ofs += typ.InlineWidth() * listIndices[dim] * product
					product *= shape[dim]
				}
			}
		case types.Cluster:
			if i < 0 || i >= typ.Size() {
				return types.Type{}, nil, 0, errors.Errorf("data: index %d out of range at %v", i, indices)
			}
			ofs += typ.ClusterOffset(i)
			typ = typ.Subtype(i)
		default:
			return types.Type{}, nil, 0, &NonIndexableTypeError{At: typ, Path: indices}
		}
	}
	if dimsLeft != 0 {
		return types.Type{}, nil, 0, &PartialIndexError{Path: indices}
	}
	return typ, buf, ofs, nil
}

// requireSubtype locates indices and checks the resulting subtype's code,
// the shared preamble of every typed accessor (§4.C).
func (d *Data) requireSubtype(want types.Code, indices []int) (types.Type, []byte, int, error) {
	typ, buf, ofs, err := d.locate(indices)
	if err != nil {
		return types.Type{}, nil, 0, err
	}
	if typ.Code() != want {
		return types.Type{}, nil, 0, &TypeMismatchError{Expected: want, Actual: typ.Code(), Path: indices}
	}
	return typ, buf, ofs, nil
}

// GetData returns a Data view into the subobject at indices. The view
// shares bytes and heap with its parent (§3.2); mutations through it are
// visible to the parent, and it must not outlive the parent.
func (d *Data) GetData(indices ...int) (*Data, error) {
	typ, buf, ofs, err := d.locate(indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: GetData")
	}
	return &Data{typ: typ, bytes: buf, offset: ofs, heap: d.heap}, nil
}
