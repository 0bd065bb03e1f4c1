package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ypay/txfile/pkg/tx"
)

// frameMagic opens every binary frame.
var frameMagic = [4]byte{'Y', 'P', 'B', 'N'}

// minFrameBodySize is the body size with an empty description:
// id + kind + from + to + amount + timestamp + status + description length.
const minFrameBodySize = 8 + 1 + 8 + 8 + 8 + 8 + 1 + 4

// BinaryCodec reads and writes the fixed-layout, length-prefixed binary
// frame format. All integers are big-endian.
type BinaryCodec struct{}

// Parse reads frames until the stream ends exactly on a frame boundary.
// A stream ending with zero bytes at a frame start is a valid end of the
// sequence; a stream ending anywhere else is a transport read error.
func (BinaryCodec) Parse(r io.Reader) ([]tx.Record, error) {
	var pos int64
	records := []tx.Record{}

	for {
		frameStart := pos
		var magic [4]byte
		if _, err := io.ReadFull(r, magic[:]); err != nil {
			if err == io.EOF {
				break
			}
			// A partial magic read means the stream was cut mid-frame.
			return nil, &ReadError{Err: err}
		}
		pos += 4
		if magic != frameMagic {
			cause := &ParseError{Cause: InvalidRecordHeader, Detail: hexDump(magic[:])}
			return nil, located(cause, OffsetContext{Offset: frameStart})
		}

		var sizeBuf [4]byte
		if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
			return nil, &ReadError{Err: err}
		}
		bodySize := binary.BigEndian.Uint32(sizeBuf[:])
		pos += 4
		if bodySize < minFrameBodySize {
			cause := &ParseError{Cause: IncompleteRecord}
			return nil, located(cause, OffsetContext{Offset: pos})
		}

		// The whole body is read in one shot, then decoded sequentially.
		body := make([]byte, bodySize)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, &ReadError{Err: err}
		}

		rec, err := decodeFrameBody(body, pos)
		if err != nil {
			return nil, err
		}
		pos += int64(bodySize)
		records = append(records, rec)
	}

	return records, nil
}

// decodeFrameBody decodes one frame body. pos is the stream offset of the
// body start and anchors the offsets reported in located errors.
func decodeFrameBody(body []byte, pos int64) (tx.Record, error) {
	var rec tx.Record

	rec.ID = binary.BigEndian.Uint64(body[0:8])
	pos += 8

	pos++
	kind, ok := tx.KindFromCode(body[8])
	if !ok {
		cause := unparsableValue(strconv.Itoa(int(body[8])))
		return rec, located(cause, FieldOffsetContext{Offset: pos, Field: tx.FieldKind})
	}
	rec.Kind = kind

	rec.From = binary.BigEndian.Uint64(body[9:17])
	pos += 8
	rec.To = binary.BigEndian.Uint64(body[17:25])
	pos += 8
	rec.Amount = int64(binary.BigEndian.Uint64(body[25:33]))
	pos += 8
	rec.Timestamp = binary.BigEndian.Uint64(body[33:41])
	pos += 8

	pos++
	status, ok := tx.StatusFromCode(body[41])
	if !ok {
		cause := unparsableValue(strconv.Itoa(int(body[41])))
		return rec, located(cause, FieldOffsetContext{Offset: pos, Field: tx.FieldStatus})
	}
	rec.Status = status

	descLen := binary.BigEndian.Uint32(body[42:46])
	pos += 4
	if descLen > 0 {
		if uint64(len(body)) < 46+uint64(descLen) {
			// The declared description length runs past the frame body.
			return rec, &ReadError{Err: io.ErrUnexpectedEOF}
		}
		desc := body[46 : 46+descLen]
		pos += int64(descLen)
		if !utf8.Valid(desc) {
			cause := unparsableValue("non utf-8 string")
			return rec, located(cause, FieldOffsetContext{Offset: pos, Field: tx.FieldDescription})
		}
		rec.Description = string(desc)
	}

	return rec, nil
}

// Write serializes records into the frame layout, one frame per record.
// The description length is recomputed from the UTF-8 byte length of the
// string.
func (BinaryCodec) Write(w io.Writer, records []tx.Record) error {
	for _, rec := range records {
		frame := encodeFrame(rec)
		if _, err := w.Write(frame); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}

func encodeFrame(rec tx.Record) []byte {
	desc := []byte(rec.Description)
	bodySize := uint32(minFrameBodySize + len(desc))

	buf := make([]byte, 0, 8+bodySize)
	buf = append(buf, frameMagic[:]...)
	buf = binary.BigEndian.AppendUint32(buf, bodySize)
	buf = binary.BigEndian.AppendUint64(buf, rec.ID)
	buf = append(buf, rec.Kind.Code())
	buf = binary.BigEndian.AppendUint64(buf, rec.From)
	buf = binary.BigEndian.AppendUint64(buf, rec.To)
	buf = binary.BigEndian.AppendUint64(buf, uint64(rec.Amount))
	buf = binary.BigEndian.AppendUint64(buf, rec.Timestamp)
	buf = append(buf, rec.Status.Code())
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(desc)))
	buf = append(buf, desc...)
	return buf
}

func hexDump(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		fmt.Fprintf(&sb, "%02X", v)
	}
	return sb.String()
}
