package wirebuf

import "testing"

func TestUint32RoundTrip(t *testing.T) {
	buf := NewBuffer(16)
	values := []uint32{0, 1, 1000000, 0xFFFFFFFF}
	for _, v := range values {
		buf.WriteUint32(v)
	}

	r := NewReader(buf.Bytes())
	for _, want := range values {
		got, err := r.ReadUint32()
		if err != nil {
			t.Fatalf("ReadUint32: %v", err)
		}
		if got != want {
			t.Errorf("ReadUint32 = %d, want %d", got, want)
		}
	}
}

func TestUint32Endianness(t *testing.T) {
	buf := NewBuffer(4)
	buf.WriteUint32(1)
	want := []byte{0x00, 0x00, 0x00, 0x01}
	got := buf.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestLenPrefixedRoundTrip(t *testing.T) {
	buf := NewBuffer(16)
	buf.WriteLenPrefixed([]byte("ab"))
	buf.WriteLenPrefixed(nil)

	r := NewReader(buf.Bytes())
	got, err := r.ReadLenPrefixed()
	if err != nil {
		t.Fatalf("ReadLenPrefixed: %v", err)
	}
	if string(got) != "ab" {
		t.Errorf("ReadLenPrefixed = %q, want %q", got, "ab")
	}
	got, err = r.ReadLenPrefixed()
	if err != nil {
		t.Fatalf("ReadLenPrefixed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadLenPrefixed = %q, want empty", got)
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01})
	if _, err := r.ReadUint32(); err != ErrShortBuffer {
		t.Fatalf("ReadUint32 on short buffer = %v, want ErrShortBuffer", err)
	}
}

func TestBufferGrowth(t *testing.T) {
	buf := NewBuffer(0)
	for i := 0; i < 1000; i++ {
		buf.WriteUint32(uint32(i))
	}
	if buf.Len() != 4000 {
		t.Fatalf("Len() = %d, want 4000", buf.Len())
	}
	r := NewReader(buf.Bytes())
	for i := 0; i < 1000; i++ {
		v, err := r.ReadUint32()
		if err != nil {
			t.Fatalf("ReadUint32 at %d: %v", i, err)
		}
		if v != uint32(i) {
			t.Fatalf("ReadUint32 at %d = %d, want %d", i, v, i)
		}
	}
}
