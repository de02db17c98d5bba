package data

import (
	"fmt"

	"github.com/YulinWu/jlabrad/pkg/types"
)

// TypeMismatchError is returned by a typed accessor when the subtype at
// Path is not the variant the accessor requires.
type TypeMismatchError struct {
	Expected types.Code
	Actual   types.Code
	Path     []int
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("data: type mismatch at %v: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// NonIndexableTypeError is returned when indexing encounters a type that is
// neither a List nor a Cluster.
type NonIndexableTypeError struct {
	At   types.Type
	Path []int
}

func (e *NonIndexableTypeError) Error() string {
	return fmt.Sprintf("data: cannot index into %s at %v", e.At.Pretty(), e.Path)
}

// PartialIndexError is returned when too few indices were supplied to
// finish walking a List's shape dimensions.
type PartialIndexError struct {
	Path []int
}

func (e *PartialIndexError) Error() string {
	return fmt.Sprintf("data: not enough indices to resolve array shape at %v", e.Path)
}

// ShapeMismatchError is returned by SetArrayShape when the supplied shape's
// length does not match the list's declared depth.
type ShapeMismatchError struct {
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("data: array shape mismatch: want %d dimensions, got %d", e.Want, e.Got)
}

// CodecError is returned by Flatten/Unflatten when the wire representation
// is truncated, internally inconsistent, or otherwise malformed.
type CodecError struct {
	Offset int
	Reason string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("data: codec error at offset %d: %s", e.Offset, e.Reason)
}
