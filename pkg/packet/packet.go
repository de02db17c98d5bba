// Package packet implements LabRAD's record, context, and packet framing
// layer (§3.3, §4.D, §4.E): identifier-tagged records bundling Data values,
// grouped into packets addressed to a context and target. It mirrors the
// teacher module's pkg/protocol/framing.go WriteFrame/ReadFrame shape, and
// is grounded field-by-field on org.labrad.data.PacketOutputStream for the
// wire layout.
package packet

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/YulinWu/jlabrad/pkg/data"
	"github.com/YulinWu/jlabrad/pkg/types"
	"github.com/YulinWu/jlabrad/pkg/wire"
	"github.com/YulinWu/jlabrad/pkg/wirebuf"
)

// maxRecordsSize guards against allocating an absurd buffer for a
// maliciously (or corruptly) large records_length field.
const maxRecordsSize = 64 << 20

// ErrRecordsTooLarge is returned when a packet's declared records length
// exceeds maxRecordsSize.
var ErrRecordsTooLarge = errors.New("packet: records length exceeds maximum size")

// Context identifies a conversation endpoint at a peer (§3.3).
type Context struct {
	High uint32
	Low  uint32
}

// Record is a setting identifier paired with its argument data (§3.3).
type Record struct {
	ID   uint32
	Data *data.Data
}

// NewRecord constructs a Record.
func NewRecord(id uint32, d *data.Data) Record {
	return Record{ID: id, Data: d}
}

// Packet is the framed unit of communication: a context, target, request
// id, and an ordered list of records (§3.3).
type Packet struct {
	Context Context
	Target  uint32
	Request int32
	Records []Record
}

// IsRequest reports whether p is an outgoing request expecting a response
// with the same id.
func (p Packet) IsRequest() bool { return p.Request > 0 }

// IsResponse reports whether p is a response to an incoming request.
func (p Packet) IsResponse() bool { return p.Request < 0 }

// IsMessage reports whether p is a fire-and-forget message.
func (p Packet) IsMessage() bool { return p.Request == 0 }

// String renders a compact summary of p for logging.
func (p Packet) String() string {
	return fmt.Sprintf("Packet{context=(%d,%d) target=%d request=%d records=%d}",
		p.Context.High, p.Context.Low, p.Target, p.Request, len(p.Records))
}

// DebugDump renders p and each record's flattened payload as hex, for
// tracing raw wire data (the Go port of Util.dumpBytes as JLabrad uses it
// around PacketOutputStream).
func (p Packet) DebugDump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p)
	for _, rec := range p.Records {
		flat, err := rec.Data.Flatten()
		if err != nil {
			fmt.Fprintf(&b, "  record %d [%s]: <flatten error: %v>\n", rec.ID, rec.Data.Tag(), err)
			continue
		}
		fmt.Fprintf(&b, "  record %d [%s]: %s\n", rec.ID, rec.Data.Tag(), wire.DumpHex(flat))
	}
	return b.String()
}

const headerSize = 20

// WritePacket writes p to w: a 20-byte header (context.high, context.low,
// request, target, records_length) followed by the records region, each
// record as (id, tag_length, tag, payload_length, payload) (§4.E). w is
// wrapped in a bufio.Writer and flushed after the packet, bounding
// latency for a stream of packets.
func WritePacket(w io.Writer, p Packet) error {
	var recordsBuf wirebuf.Buffer
	for _, rec := range p.Records {
		flat, err := rec.Data.Flatten()
		if err != nil {
			return errors.Wrapf(err, "packet: flatten record %d", rec.ID)
		}
		recordsBuf.WriteUint32(rec.ID)
		recordsBuf.WriteLenPrefixed([]byte(rec.Data.Tag()))
		recordsBuf.WriteLenPrefixed(flat)
	}

	bw := bufio.NewWriter(w)
	var hdr [headerSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], p.Context.High)
	binary.BigEndian.PutUint32(hdr[4:8], p.Context.Low)
	binary.BigEndian.PutUint32(hdr[8:12], uint32(p.Request))
	binary.BigEndian.PutUint32(hdr[12:16], p.Target)
	binary.BigEndian.PutUint32(hdr[16:20], uint32(recordsBuf.Len()))
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("packet: write header: %w", err)
	}
	if _, err := bw.Write(recordsBuf.Bytes()); err != nil {
		return fmt.Errorf("packet: write records: %w", err)
	}
	return bw.Flush()
}

// ReadPacket reads a single packet from r, the exact inverse of
// WritePacket.
func ReadPacket(r io.Reader) (Packet, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Packet{}, err
	}
	p := Packet{
		Context: Context{
			High: binary.BigEndian.Uint32(hdr[0:4]),
			Low:  binary.BigEndian.Uint32(hdr[4:8]),
		},
		Request: int32(binary.BigEndian.Uint32(hdr[8:12])),
		Target:  binary.BigEndian.Uint32(hdr[12:16]),
	}
	recordsLen := binary.BigEndian.Uint32(hdr[16:20])
	if recordsLen > maxRecordsSize {
		return Packet{}, ErrRecordsTooLarge
	}

	recordsBytes := make([]byte, recordsLen)
	if recordsLen > 0 {
		if _, err := io.ReadFull(r, recordsBytes); err != nil {
			return Packet{}, fmt.Errorf("packet: read records: %w", err)
		}
	}

	rr := wirebuf.NewReader(recordsBytes)
	for rr.Remaining() > 0 {
		id, err := rr.ReadUint32()
		if err != nil {
			return Packet{}, fmt.Errorf("packet: read record id: %w", err)
		}
		tagBytes, err := rr.ReadLenPrefixed()
		if err != nil {
			return Packet{}, fmt.Errorf("packet: read record tag: %w", err)
		}
		ty, err := types.Parse(string(tagBytes))
		if err != nil {
			return Packet{}, errors.Wrap(err, "packet: parse record tag")
		}
		payload, err := rr.ReadLenPrefixed()
		if err != nil {
			return Packet{}, fmt.Errorf("packet: read record payload: %w", err)
		}
		d, err := data.Unflatten(payload, ty)
		if err != nil {
			return Packet{}, errors.Wrapf(err, "packet: unflatten record %d", id)
		}
		p.Records = append(p.Records, Record{ID: id, Data: d})
	}
	return p, nil
}
