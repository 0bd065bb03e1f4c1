package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/ypay/txfile/pkg/tx"
)

// Parser reads every transaction record from an input stream. The whole
// record set is materialized before it is returned; the first malformed
// input aborts the parse.
type Parser interface {
	Parse(r io.Reader) ([]tx.Record, error)
}

// Writer serializes transaction records to an output stream in a
// codec-specific format.
type Writer interface {
	Write(w io.Writer, records []tx.Record) error
}

// Codec is a matched parse/write pair for one on-disk format.
type Codec interface {
	Parser
	Writer
}

// Format selects one of the supported on-disk formats.
type Format uint8

const (
	Binary Format = iota
	Text
	CSV
	// Dummy is a no-op format used for wiring and tests.
	Dummy
)

// Codec returns the codec implementing the format. Codecs are stateless;
// the returned value is safe for concurrent use on independent streams.
func (f Format) Codec() Codec {
	switch f {
	case Binary:
		return BinaryCodec{}
	case Text:
		return TextCodec{}
	case CSV:
		return CSVCodec{}
	case Dummy:
		return DummyCodec{}
	}
	panic(fmt.Sprintf("codec: unknown format %d", f))
}

// Parse reads all records from r using the selected format.
func (f Format) Parse(r io.Reader) ([]tx.Record, error) {
	return f.Codec().Parse(r)
}

// Write serializes records to w using the selected format.
func (f Format) Write(w io.Writer, records []tx.Record) error {
	return f.Codec().Write(w, records)
}

func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case Text:
		return "text"
	case CSV:
		return "csv"
	case Dummy:
		return "dummy"
	}
	return fmt.Sprintf("format(%d)", f)
}

// ParseFormat maps a format name to a Format. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "binary":
		return Binary, nil
	case "text":
		return Text, nil
	case "csv":
		return CSV, nil
	case "dummy":
		return Dummy, nil
	}
	return 0, fmt.Errorf("unknown format %q (want binary, text or csv)", s)
}

// Set implements pflag.Value so a Format can back a CLI flag directly.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}
