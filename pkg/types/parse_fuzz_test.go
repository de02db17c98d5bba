package types

import "testing"

// FuzzParse mirrors the teacher's FuzzSADParse: Parse must never panic on
// arbitrary tag strings, and any tag it accepts must round-trip through
// Tag/Parse unchanged (§8 fixpoint property, generalized to random input).
func FuzzParse(f *testing.F) {
	f.Add("i")
	f.Add("*2(biwsv[m]c[m/s]t)")
	f.Add("E*s")
	f.Add("")
	f.Add("(bi")
	f.Add("*")
	f.Add("v[m")
	f.Add("*99999999999999999999i")

	f.Fuzz(func(t *testing.T, tag string) {
		ty, err := Parse(tag)
		if err != nil {
			return
		}
		again, err := Parse(ty.Tag())
		if err != nil {
			t.Fatalf("re-parsing Tag() of a parsed type failed: %v (tag %q -> %q)", err, tag, ty.Tag())
		}
		if !ty.Equal(again) {
			t.Fatalf("Parse(tag).Tag() did not round-trip: %q -> %q -> %q", tag, ty.Tag(), again.Tag())
		}
	})
}
