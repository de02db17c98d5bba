package wire

import "testing"

func TestBoolRoundTrip(t *testing.T) {
	buf := make([]byte, 1)
	for _, want := range []bool{true, false, true} {
		WriteBool(buf, 0, want)
		if got := ReadBool(buf, 0); got != want {
			t.Errorf("ReadBool = %v, want %v", got, want)
		}
	}
}

func TestInt32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	values := []int32{0, 1, -1, 1 << 30, -(1 << 30), -2147483648, 2147483647}
	for _, want := range values {
		WriteInt32(buf, 0, want)
		if got := ReadInt32(buf, 0); got != want {
			t.Errorf("ReadInt32(%d) = %d", want, got)
		}
	}
}

func TestInt32Endianness(t *testing.T) {
	buf := make([]byte, 4)
	WriteInt32(buf, 0, 1)
	want := []byte{0x00, 0x00, 0x00, 0x01}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestInt32NegativeEndianness(t *testing.T) {
	buf := make([]byte, 4)
	WriteInt32(buf, 0, -1)
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestUint64RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	values := []uint64{0, 1, 1 << 40, 0xFFFFFFFFFFFFFFFF}
	for _, want := range values {
		WriteUint64(buf, 0, want)
		if got := ReadUint64(buf, 0); got != want {
			t.Errorf("ReadUint64(%d) = %d", want, got)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	values := []float64{0, 1.5, -1.5, 3.14159265358979}
	for _, want := range values {
		WriteFloat64(buf, 0, want)
		if got := ReadFloat64(buf, 0); got != want {
			t.Errorf("ReadFloat64(%v) = %v", want, got)
		}
	}
}

func TestComplexRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	WriteComplex(buf, 0, 1.5, -2.5)
	re, im := ReadComplex(buf, 0)
	if re != 1.5 || im != -2.5 {
		t.Fatalf("ReadComplex = (%v, %v), want (1.5, -2.5)", re, im)
	}
}

func TestFillUnassigned(t *testing.T) {
	buf := make([]byte, 4)
	FillUnassigned(buf)
	if ReadInt32(buf, 0) != -1 {
		t.Fatalf("FillUnassigned should read back as -1, got %d", ReadInt32(buf, 0))
	}
}

func TestDumpHex(t *testing.T) {
	got := DumpHex([]byte{0x00, 0x00, 0x00, 0x01, 0xFF})
	want := "00000001 FF"
	if got != want {
		t.Fatalf("DumpHex = %q, want %q", got, want)
	}
}
