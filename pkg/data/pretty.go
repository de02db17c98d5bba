package data

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
)

// Pretty renders a human-readable, stable, locale-independent view of d
// (§4.C). Ported from Data.java's pretty(); every branch here corresponds
// to exactly one type variant, which d.typ guarantees matches, so the
// nested accessor errors are unreachable and intentionally discarded.
func (d *Data) Pretty() string {
	switch d.typ.Code() {
	case types.Empty:
		return ""
	case types.Bool:
		v, _ := d.GetBool()
		return strconv.FormatBool(v)
	case types.Int:
		v, _ := d.GetInt()
		return strconv.FormatInt(int64(v), 10)
	case types.Word:
		v, _ := d.GetWord()
		return strconv.FormatUint(uint64(v), 10)
	case types.Value:
		v, _ := d.GetValue()
		s := strconv.FormatFloat(v, 'g', -1, 64)
		if u, ok := d.typ.Units(); ok {
			s += " [" + u + "]"
		}
		return s
	case types.Complex:
		re, im, _ := d.GetComplex()
		sign := ""
		if im >= 0 {
			sign = "+"
		}
		s := strconv.FormatFloat(re, 'g', -1, 64) + sign + strconv.FormatFloat(im, 'g', -1, 64) + "i"
		if u, ok := d.typ.Units(); ok {
			s += " [" + u + "]"
		}
		return s
	case types.Time:
		t, _ := d.GetTime()
		return t.Format(time.RFC3339Nano)
	case types.Str:
		s, _ := d.GetString()
		return "\"" + s + "\""
	case types.List:
		shape, _ := d.GetArrayShape()
		indices := make([]int, d.typ.Depth())
		return d.prettyList(shape, indices, 0)
	case types.Cluster:
		n := d.typ.Size()
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			sub, _ := d.GetData(i)
			parts[i] = sub.Pretty()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case types.Error:
		code, _ := d.GetErrorCode()
		msg, _ := d.GetErrorMessage()
		return fmt.Sprintf("Error(%d, %q)", code, msg)
	default:
		return "?"
	}
}

func (d *Data) prettyList(shape []int, indices []int, level int) string {
	parts := make([]string, 0, shape[level])
	for i := 0; i < shape[level]; i++ {
		indices[level] = i
		if level == len(shape)-1 {
			sub, _ := d.GetData(indices...)
			parts = append(parts, sub.Pretty())
		} else {
			parts = append(parts, d.prettyList(shape, indices, level+1))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// String implements fmt.Stringer with a compact, non-recursive summary; use
// Pretty for the full recursive rendering.
func (d *Data) String() string {
	return fmt.Sprintf("Data(%q)", d.Tag())
}

// DebugDump renders d's tag, inline bytes, and heap slots as hex, the Go
// port of Data.java's debug println-via-Util.dumpBytes idiom.
func (d *Data) DebugDump() string {
	var b strings.Builder
	width := d.typ.InlineWidth()
	fmt.Fprintf(&b, "tag=%q bytes=%s", d.Tag(), wire.DumpHex(d.bytes[d.offset:d.offset+width]))
	for i := 0; i < d.heap.len(); i++ {
		fmt.Fprintf(&b, " heap[%d]=%s", i, wire.DumpHex(d.heap.get(i)))
	}
	return b.String()
}
