package types

import (
	"strconv"
	"strings"
)

// Tag renders t back into its canonical LabRAD type tag string. Parse(t.Tag())
// reproduces a type structurally equal to t (§8 "tag fixpoint").
func (t Type) Tag() string {
	switch t.code {
	case Empty:
		return ""
	case Bool:
		return "b"
	case Int:
		return "i"
	case Word:
		return "w"
	case Str:
		return "s"
	case Time:
		return "t"
	case Value:
		if t.present {
			return "v[" + t.units + "]"
		}
		return "v"
	case Complex:
		if t.present {
			return "c[" + t.units + "]"
		}
		return "c"
	case List:
		prefix := "*"
		if t.depth > 1 {
			prefix += strconv.Itoa(t.depth)
		}
		elem := t.elem.Tag()
		if elem == "" {
			elem = "_"
		}
		return prefix + elem
	case Cluster:
		s := "("
		for i, c := range t.children {
			ct := c.Tag()
			// An empty child needs "_", and a child ending in a bare "E" needs
			// "_" before a following sibling, or that sibling would re-parse as
			// the error's payload.
			if ct == "" || (i < len(t.children)-1 && strings.HasSuffix(ct, "E")) {
				ct += "_"
			}
			s += ct
		}
		return s + ")"
	case Error:
		if t.payload.code == Empty {
			return "E"
		}
		return "E" + t.payload.Tag()
	default:
		return ""
	}
}

func (t Type) String() string { return t.Tag() }
