// Package hydrant generates random legal Data values for any LabRAD type,
// for use in round-trip and fuzz testing (§4.F). It is grounded on
// Data.java's main() test harness, which populates scratch buffers with
// java.util.Random values before exercising the codec; math/rand is the
// direct Go analogue of that idiom.
package hydrant

import (
	"math/rand"
	"time"

	"github.com/YulinWu/jlabrad/pkg/data"
	"github.com/YulinWu/jlabrad/pkg/types"
)

// maxDim bounds a generated list's per-dimension size (§4.F: "[0, 5]").
const maxDim = 5

// maxDepth caps the generator's recursion through chained Error payloads
// (e.g. a Type built by repeatedly wrapping NewError). Real type tags
// never nest this deep, but a Type constructed programmatically could;
// beyond the cutoff, Generate stops descending into further nested error
// payloads rather than recursing without bound (§4.F: "must terminate on
// any type").
const maxDepth = 32

// Generate returns a Data of type t with every slot populated with a
// uniformly random legal value, using a source seeded from the current
// time.
func Generate(t types.Type) *data.Data {
	return GenerateSeeded(t, time.Now().UnixNano())
}

// GenerateSeeded is the deterministic variant of Generate, for
// reproducible test failures.
func GenerateSeeded(t types.Type, seed int64) *data.Data {
	r := rand.New(rand.NewSource(seed))
	d := data.New(t)
	populate(r, d, 0)
	return d
}

func populate(r *rand.Rand, d *data.Data, depth int) error {
	switch d.Type().Code() {
	case types.Empty:
		return nil

	case types.Bool:
		_, err := d.SetBool(r.Intn(2) == 1)
		return err

	case types.Int:
		_, err := d.SetInt(r.Int31())
		return err

	case types.Word:
		_, err := d.SetWord(r.Uint32())
		return err

	case types.Str:
		_, err := d.SetBytes(randomBytes(r, r.Intn(21)))
		return err

	case types.Value:
		_, err := d.SetValue(r.NormFloat64())
		return err

	case types.Complex:
		_, err := d.SetComplex(r.NormFloat64(), r.NormFloat64())
		return err

	case types.Time:
		_, err := d.SetTime(time.UnixMilli(r.Int63()).UTC())
		return err

	case types.List:
		depthDims := d.Type().Depth()
		shape := make([]int, depthDims)
		for i := range shape {
			shape[i] = r.Intn(maxDim + 1)
		}
		if _, err := d.SetArrayShape(shape); err != nil {
			return err
		}
		return populateList(r, d, shape, make([]int, depthDims), 0, depth)

	case types.Cluster:
		for i := 0; i < d.Type().Size(); i++ {
			sub, err := d.GetData(i)
			if err != nil {
				return err
			}
			if err := populate(r, sub, depth+1); err != nil {
				return err
			}
		}
		return nil

	case types.Error:
		code := r.Int31()
		msg := randomASCII(r, r.Intn(21))
		if _, err := d.SetError(code, msg); err != nil {
			return err
		}
		if depth >= maxDepth {
			return nil
		}
		payload, err := d.GetErrorPayload()
		if err != nil {
			return err
		}
		return populate(r, payload, depth+1)

	default:
		return nil
	}
}

func populateList(r *rand.Rand, d *data.Data, shape, indices []int, level, depth int) error {
	if level == len(shape) {
		sub, err := d.GetData(indices...)
		if err != nil {
			return err
		}
		return populate(r, sub, depth+1)
	}
	for i := 0; i < shape[level]; i++ {
		indices[level] = i
		if err := populateList(r, d, shape, indices, level+1, depth); err != nil {
			return err
		}
	}
	return nil
}

// randomBytes returns n uniformly random bytes, the full 0-255 range
// (valid for the byte-transparent Str payload).
func randomBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

// randomASCII returns n random printable ASCII bytes as a string, the
// range SetError's message parameter can round-trip without ambiguity
// through Go's UTF-8 string representation.
func randomASCII(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(32 + r.Intn(95))
	}
	return string(b)
}
