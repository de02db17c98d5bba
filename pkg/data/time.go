package data

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
)

// deltaSeconds is the offset between LabRAD's epoch (1904-01-01 UTC) and
// the Unix epoch (1970-01-01 UTC), in seconds.
const deltaSeconds = 24107 * 24 * 60 * 60

// IsTime reports whether the subtype at indices is Time.
func (d *Data) IsTime(indices ...int) bool { return d.isCode(types.Time, indices) }

// GetTime returns the instant at indices. The wire layout is two
// consecutive u64 slots: seconds since the LabRAD epoch at ofs, and a
// fractional part scaled by math.MaxInt64 at ofs+8 (§3.1).
func (d *Data) GetTime(indices ...int) (time.Time, error) {
	_, buf, ofs, err := d.requireSubtype(types.Time, indices)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "data: GetTime")
	}
	seconds := wire.ReadInt64(buf, ofs)
	fraction := wire.ReadInt64(buf, ofs+8)
	seconds -= deltaSeconds
	fractionMillis := int64(float64(fraction) / float64(math.MaxInt64) * 1000)
	return time.UnixMilli(seconds*1000 + fractionMillis).UTC(), nil
}

// SetTime sets the instant at indices and returns d for chaining. It
// writes seconds at ofs and the fractional part at ofs+8, matching the
// wire layout GetTime reads (§3.1 documents two consecutive u64 slots; see
// DESIGN.md for why the inline offsets here differ from JLabrad's setTime).
func (d *Data) SetTime(t time.Time, indices ...int) (*Data, error) {
	_, buf, ofs, err := d.requireSubtype(types.Time, indices)
	if err != nil {
		return nil, errors.Wrap(err, "data: SetTime")
	}
	millis := t.UnixMilli()
	seconds := millis/1000 + deltaSeconds
	fraction := millis % 1000
	fractionScaled := int64(float64(fraction) / 1000 * float64(math.MaxInt64))
	wire.WriteInt64(buf, ofs, seconds)
	wire.WriteInt64(buf, ofs+8, fractionScaled)
	return d, nil
}
