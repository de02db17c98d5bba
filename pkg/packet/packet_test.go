package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YulinWu/jlabrad/pkg/data"
)

func TestWritePacketHeaderLayout(t *testing.T) {
	d, err := data.NewFromTag("i")
	require.NoError(t, err)
	_, err = d.SetInt(42)
	require.NoError(t, err)

	p := Packet{
		Context: Context{High: 1, Low: 2},
		Target:  3,
		Request: 5,
		Records: []Record{NewRecord(7, d)},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePacket(&buf, p))

	out := buf.Bytes()
	require.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 5, 0, 0, 0, 3}, out[0:16])

	recordBody := []byte{
		0, 0, 0, 7, // record id
		0, 0, 0, 1, 'i', // tag_length + tag
		0, 0, 0, 4, 0, 0, 0, 42, // payload_length + flattened int
	}
	require.Equal(t, uint32(len(recordBody)), beUint32(out[16:20]))
	require.Equal(t, recordBody, out[20:])
}

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func TestPacketRoundTrip(t *testing.T) {
	d1, err := data.NewFromTag("s")
	require.NoError(t, err)
	_, err = d1.SetString("hello")
	require.NoError(t, err)

	d2, err := data.NewFromTag("(biv)")
	require.NoError(t, err)
	_, err = d2.SetBool(true, 0)
	require.NoError(t, err)
	_, err = d2.SetInt(-7, 1)
	require.NoError(t, err)
	_, err = d2.SetValue(2.5, 2)
	require.NoError(t, err)

	p := Packet{
		Context: Context{High: 10, Low: 20},
		Target:  30,
		Request: -40,
		Records: []Record{NewRecord(1, d1), NewRecord(2, d2)},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePacket(&buf, p))

	got, err := ReadPacket(&buf)
	require.NoError(t, err)
	require.Equal(t, p.Context, got.Context)
	require.Equal(t, p.Target, got.Target)
	require.Equal(t, p.Request, got.Request)
	require.True(t, got.IsResponse())
	require.Len(t, got.Records, 2)

	s, err := got.Records[0].Data.GetString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	b, err := got.Records[1].Data.GetBool(0)
	require.NoError(t, err)
	require.True(t, b)
	i, err := got.Records[1].Data.GetInt(1)
	require.NoError(t, err)
	require.Equal(t, int32(-7), i)
	v, err := got.Records[1].Data.GetValue(2)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

func TestPacketRequestResponseMessage(t *testing.T) {
	require.True(t, Packet{Request: 5}.IsRequest())
	require.True(t, Packet{Request: -5}.IsResponse())
	require.True(t, Packet{Request: 0}.IsMessage())
}

func TestReadPacketTruncatedHeader(t *testing.T) {
	_, err := ReadPacket(bytes.NewReader([]byte{0, 0, 0, 1}))
	require.Error(t, err)
}
