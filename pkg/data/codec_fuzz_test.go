package data

import (
	"testing"

	"github.com/YulinWu/jlabrad/pkg/types"
)

// FuzzUnflattenDoesNotPanic feeds random (tag, bytes) pairs to Unflatten.
// Malformed input must fail with an error, never panic; and if unflatten
// succeeds, re-flattening the result must also succeed, since a
// successfully unflattened Data is by construction fully populated.
func FuzzUnflattenDoesNotPanic(f *testing.F) {
	f.Add("i", []byte{0, 0, 0, 1})
	f.Add("s", []byte{0, 0, 0, 2, 'a', 'b'})
	f.Add("*i", []byte{0, 0, 0, 3, 0, 0, 0, 7, 0, 0, 0, 8, 0, 0, 0, 9})
	f.Add("(bi)", []byte{1, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add("E", []byte{0, 0, 0, 1, 0, 0, 0, 3, 'b', 'a', 'd'})
	f.Add("", []byte{})
	f.Add("*2i", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 1})

	f.Fuzz(func(t *testing.T, tag string, buf []byte) {
		ty, err := types.Parse(tag)
		if err != nil {
			return
		}
		d, err := Unflatten(buf, ty)
		if err != nil {
			return
		}
		if _, err := d.Flatten(); err != nil {
			t.Fatalf("flatten failed after successful unflatten of tag %q: %v", tag, err)
		}
	})
}
