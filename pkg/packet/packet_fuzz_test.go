package packet

import (
	"bytes"
	"testing"

	"github.com/YulinWu/jlabrad/pkg/data"
)

// FuzzReadPacket mirrors the teacher's FuzzFrameRead: ReadPacket must
// never panic on arbitrary bytes, and a successfully parsed packet must
// re-encode and re-parse to the same record count and tags.
func FuzzReadPacket(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0, 0, 0, 1})
	f.Add(make([]byte, headerSize))

	seed, err := data.NewFromTag("i")
	if err == nil {
		if _, err := seed.SetInt(42); err == nil {
			var buf bytes.Buffer
			p := Packet{Target: 1, Request: 1, Records: []Record{NewRecord(9, seed)}}
			if WritePacket(&buf, p) == nil {
				f.Add(buf.Bytes())
			}
		}
	}

	var hdrLargeLen [headerSize]byte
	hdrLargeLen[16], hdrLargeLen[17], hdrLargeLen[18], hdrLargeLen[19] = 0xFF, 0xFF, 0xFF, 0xFF
	f.Add(hdrLargeLen[:])

	f.Fuzz(func(t *testing.T, buf []byte) {
		got, err := ReadPacket(bytes.NewReader(buf))
		if err != nil {
			return
		}

		var rebuf bytes.Buffer
		if err := WritePacket(&rebuf, got); err != nil {
			t.Fatalf("re-encode of a successfully parsed packet failed: %v", err)
		}
		again, err := ReadPacket(bytes.NewReader(rebuf.Bytes()))
		if err != nil {
			t.Fatalf("re-parse of re-encoded packet failed: %v", err)
		}
		if len(again.Records) != len(got.Records) {
			t.Fatalf("record count changed across round trip: %d != %d", len(again.Records), len(got.Records))
		}
		for i := range got.Records {
			if got.Records[i].Data.Tag() != again.Records[i].Data.Tag() {
				t.Fatalf("record %d tag changed across round trip: %q != %q",
					i, got.Records[i].Data.Tag(), again.Records[i].Data.Tag())
			}
		}
	})
}
