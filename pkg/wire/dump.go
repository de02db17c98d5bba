package wire

import "strings"

const hexDigits = "0123456789ABCDEF"

// DumpHex renders buf as upper-case hex, grouped into 4-byte chunks
// separated by a space, for debug logging of raw wire data.
func DumpHex(buf []byte) string {
	var b strings.Builder
	b.Grow(len(buf)*2 + len(buf)/4)
	for i, by := range buf {
		b.WriteByte(hexDigits[by>>4])
		b.WriteByte(hexDigits[by&0x0F])
		if i%4 == 3 {
			b.WriteByte(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}
