package types

import "strconv"

// Pretty renders a human-friendly, stable, locale-independent description of
// t, e.g. "*2(int, string)" for a 2-D list of (int, string) clusters (§4.B).
func (t Type) Pretty() string {
	switch t.code {
	case Empty:
		return "empty"
	case Bool, Int, Word, Time:
		return t.code.String()
	case Str:
		return "string"
	case Value:
		if t.present {
			return "value[" + t.units + "]"
		}
		return "value"
	case Complex:
		if t.present {
			return "complex[" + t.units + "]"
		}
		return "complex"
	case List:
		prefix := "*"
		if t.depth > 1 {
			prefix += strconv.Itoa(t.depth)
		}
		return prefix + t.elem.Pretty()
	case Cluster:
		s := "("
		for i, c := range t.children {
			if i > 0 {
				s += ", "
			}
			s += c.Pretty()
		}
		return s + ")"
	case Error:
		if t.payload.code == Empty {
			return "error"
		}
		return "error(" + t.payload.Pretty() + ")"
	default:
		return "?"
	}
}
