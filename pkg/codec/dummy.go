package codec

import (
	"io"

	"github.com/ypay/txfile/pkg/tx"
)

// DummyCodec is a no-op codec: parsing yields no records and writing
// consumes none. It exists for wiring and tests.
type DummyCodec struct{}

func (DummyCodec) Parse(io.Reader) ([]tx.Record, error) {
	return []tx.Record{}, nil
}

func (DummyCodec) Write(io.Writer, []tx.Record) error {
	return nil
}
