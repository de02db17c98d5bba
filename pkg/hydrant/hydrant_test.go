package hydrant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YulinWu/jlabrad/pkg/data"
	"github.com/YulinWu/jlabrad/pkg/types"
)

var roundTripTags = []string{
	"b", "i", "w", "s", "v", "v[m]", "c", "c[m/s]", "t",
	"*i", "*2i", "*s", "*3s", "(bi)", "(biwsv[m]c[m/s])",
	"E", "Ei", "EEi", "*(biwsv[m]c[m/s])", "*2(is)",
}

func TestGenerateSeededRoundTrip(t *testing.T) {
	for _, tag := range roundTripTags {
		ty, err := types.Parse(tag)
		require.NoError(t, err, "tag %q", tag)

		d := GenerateSeeded(ty, 42)
		flat, err := d.Flatten()
		require.NoError(t, err, "tag %q", tag)

		d2, err := data.Unflatten(flat, ty)
		require.NoError(t, err, "tag %q", tag)

		flat2, err := d2.Flatten()
		require.NoError(t, err, "tag %q", tag)
		require.Equal(t, flat, flat2, "tag %q: unflatten(flatten(t)) should re-flatten identically", tag)
	}
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	ty, err := types.Parse("*2(biwsv[m]c[m/s])")
	require.NoError(t, err)

	d1 := GenerateSeeded(ty, 1234)
	d2 := GenerateSeeded(ty, 1234)

	flat1, err := d1.Flatten()
	require.NoError(t, err)
	flat2, err := d2.Flatten()
	require.NoError(t, err)
	require.Equal(t, flat1, flat2)
}

func TestGenerateTerminatesOnDeepErrorChain(t *testing.T) {
	ty := types.NewErrorEmpty()
	for i := 0; i < 40; i++ {
		ty = types.NewError(ty)
	}
	d := GenerateSeeded(ty, 7)
	require.Equal(t, types.Error, d.Type().Code())
}

func TestFixedWidthFlattenLength(t *testing.T) {
	ty, err := types.Parse("(biwv c)")
	require.NoError(t, err)
	d := GenerateSeeded(ty, 99)
	flat, err := d.Flatten()
	require.NoError(t, err)
	require.Equal(t, ty.InlineWidth(), len(flat))
}
