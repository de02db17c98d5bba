// Package types implements the LabRAD type language: parsing and printing of
// type tags, and the width/offset bookkeeping pkg/data needs to navigate a
// Data value's inline storage. It is grounded on org.labrad.types.* from
// JLabrad (Time.java shows the shape of a single fixed leaf type) and
// borrows pkg/protocol/opcodes.go's constant-plus-name-map idiom from the
// teacher module for the variant tag table below.
package types

// Code identifies which of the eleven LabRAD type variants a Type is.
type Code int

const (
	Empty Code = iota
	Bool
	Int
	Word
	Str
	Value
	Complex
	Time
	List
	Cluster
	Error
)

// CodeNames maps each Code to its human-readable identifier, used by
// Pretty and in diagnostics.
var CodeNames = map[Code]string{
	Empty:   "empty",
	Bool:    "bool",
	Int:     "int",
	Word:    "word",
	Str:     "string",
	Value:   "value",
	Complex: "complex",
	Time:    "time",
	List:    "list",
	Cluster: "cluster",
	Error:   "error",
}

func (c Code) String() string {
	if n, ok := CodeNames[c]; ok {
		return n
	}
	return "unknown"
}

// Type is an immutable value object describing one node of the LabRAD type
// language (§3.1). Two Types are structurally equal iff their Tag strings
// match; see Equal.
type Type struct {
	code Code

	// units applies to Value and Complex; present distinguishes "v" from
	// "v[]" (an explicit, possibly-empty, units annotation).
	units   string
	present bool

	// depth and elem apply to List.
	depth int
	elem  *Type

	// children and offsets apply to Cluster. offsets[i] is the inline byte
	// offset of children[i], precomputed once at construction.
	children []Type
	offsets  []int

	// payload applies to Error.
	payload *Type

	width int
	fixed bool
}

// Code returns the variant tag of t.
func (t Type) Code() Code { return t.code }

// Depth returns the list nesting depth. Meaningful only when Code() == List.
func (t Type) Depth() int { return t.depth }

// Units returns the units string and whether one was present in the tag.
// Meaningful only when Code() is Value or Complex.
func (t Type) Units() (string, bool) { return t.units, t.present }

// Size returns the number of cluster children, or 1 for Error (the payload
// counts as a single indexable child via Subtype(0)).
func (t Type) Size() int {
	switch t.code {
	case Cluster:
		return len(t.children)
	case Error:
		return 1
	default:
		return 0
	}
}

// Subtype returns the i-th child type: the i-th cluster member, the element
// type of a list (i must be 0), or the payload type of an error (i must be
// 0). Panics if t is not a composite type or i is out of range; callers
// that navigate user-supplied indices should check Code() first (see
// pkg/data, which converts this into NonIndexableTypeError instead of
// panicking).
func (t Type) Subtype(i int) Type {
	switch t.code {
	case List:
		return *t.elem
	case Cluster:
		return t.children[i]
	case Error:
		return *t.payload
	default:
		panic("types: Subtype called on non-composite type " + t.code.String())
	}
}

// ClusterOffset returns the precomputed inline byte offset of the i-th
// cluster child. Meaningful only when Code() == Cluster.
func (t Type) ClusterOffset(i int) int { return t.offsets[i] }

// InlineWidth returns the number of bytes this type occupies in a Data's
// inline area (§3.2).
func (t Type) InlineWidth() int { return t.width }

// IsFixed reports whether t is fixed-width: it contains no Str, List, or
// Error anywhere in its structure (§3.1).
func (t Type) IsFixed() bool { return t.fixed }

// Equal reports whether t and other describe the same type, including
// units strings verbatim (units are never normalized, per §4.B).
func (t Type) Equal(other Type) bool {
	return t.Tag() == other.Tag()
}

// NewEmpty returns the unit type.
func NewEmpty() Type { return Type{code: Empty, width: 0, fixed: true} }

// NewBool returns the boolean type.
func NewBool() Type { return Type{code: Bool, width: 1, fixed: true} }

// NewInt returns the signed 32-bit integer type.
func NewInt() Type { return Type{code: Int, width: 4, fixed: true} }

// NewWord returns the unsigned 32-bit integer type.
func NewWord() Type { return Type{code: Word, width: 4, fixed: true} }

// NewStr returns the byte-string type.
func NewStr() Type { return Type{code: Str, width: 4, fixed: false} }

// NewValue returns the floating point type with no units annotation.
func NewValue() Type { return Type{code: Value, width: 8, fixed: true} }

// NewValueUnits returns the floating point type with an explicit (possibly
// empty) units annotation.
func NewValueUnits(units string) Type {
	return Type{code: Value, units: units, present: true, width: 8, fixed: true}
}

// NewComplex returns the complex type with no units annotation.
func NewComplex() Type { return Type{code: Complex, width: 16, fixed: true} }

// NewComplexUnits returns the complex type with an explicit units annotation.
func NewComplexUnits(units string) Type {
	return Type{code: Complex, units: units, present: true, width: 16, fixed: true}
}

// NewTime returns the timestamp type.
func NewTime() Type { return Type{code: Time, width: 16, fixed: true} }

// NewList returns a list of the given depth (>=1) over the given element
// type. InlineWidth is 4*depth+4: depth shape dimensions plus a heap index.
func NewList(depth int, elem Type) Type {
	if depth < 1 {
		depth = 1
	}
	e := elem
	return Type{code: List, depth: depth, elem: &e, width: 4*depth + 4, fixed: false}
}

// NewCluster returns a cluster of the given children, laid out back to
// back at precomputed offsets. Panics if children is empty; callers parsing
// untrusted tags should use Parse, which reports this as a TypeParseError
// instead.
func NewCluster(children ...Type) Type {
	if len(children) == 0 {
		panic("types: cluster must have at least one child")
	}
	offsets := make([]int, len(children))
	width := 0
	fixed := true
	for i, c := range children {
		offsets[i] = width
		width += c.InlineWidth()
		fixed = fixed && c.IsFixed()
	}
	cs := make([]Type, len(children))
	copy(cs, children)
	return Type{code: Cluster, children: cs, offsets: offsets, width: width, fixed: fixed}
}

// NewErrorEmpty returns the error type with an Empty payload ("E" alone).
func NewErrorEmpty() Type { return NewError(NewEmpty()) }

// NewError returns the error type with the given payload. Inline width is
// 8 (i32 code + i32 heap index of message) plus the payload's inline width,
// since Error is encoded as the cluster (i32, str, T) (§4.C).
func NewError(payload Type) Type {
	p := payload
	return Type{code: Error, payload: &p, width: 8 + payload.InlineWidth(), fixed: false}
}
