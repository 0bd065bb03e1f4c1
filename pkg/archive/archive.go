// Package archive persists transaction records in a local pebble
// database so that files can be ingested once and exported later in any
// format. Records are stored as binary frames keyed by transaction id;
// every ingest run is recorded under a KSUID run identifier.
package archive

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/ypay/txfile/pkg/codec"
	"github.com/ypay/txfile/pkg/tx"
)

const (
	recordKeyPrefix = 0x00
	runKeyPrefix    = 0x01
)

// Store is a pebble-backed transaction archive. The archive indexes
// records by transaction id; ingesting a record with an id already
// present replaces the stored one.
type Store struct {
	db     *pebble.DB
	logger *zap.SugaredLogger
}

// Run describes one recorded ingest operation.
type Run struct {
	ID         ksuid.KSUID `json:"-"`
	Source     string      `json:"source"`
	Records    int         `json:"records"`
	IngestedAt time.Time   `json:"ingested_at"`
}

// Open opens (or creates) an archive in dir.
func Open(dir string, logger *zap.SugaredLogger) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "opening pebble db")
	}
	return &Store{db: db, logger: logger}, nil
}

// Ingest stores every record and records the run under a fresh KSUID.
func (s *Store) Ingest(records []tx.Record, source string) (ksuid.KSUID, error) {
	runID := ksuid.New()

	batch := s.db.NewBatch()
	defer batch.Close()
	for _, rec := range records {
		value, err := encodeRecord(rec)
		if err != nil {
			return runID, err
		}
		if err := batch.Set(recordKey(rec.ID), value, nil); err != nil {
			return runID, errors.Wrap(err, "staging record")
		}
	}

	run := Run{Source: source, Records: len(records), IngestedAt: time.Now().UTC()}
	meta, err := json.Marshal(run)
	if err != nil {
		return runID, errors.Wrap(err, "marshalling run metadata")
	}
	if err := batch.Set(runKey(runID), meta, nil); err != nil {
		return runID, errors.Wrap(err, "staging run metadata")
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return runID, errors.Wrap(err, "committing ingest batch")
	}

	s.logger.Infow("ingested records", "run", runID.String(), "source", source, "count", len(records))
	return runID, nil
}

// Records returns every archived record ordered by transaction id.
func (s *Store) Records() ([]tx.Record, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{recordKeyPrefix},
		UpperBound: []byte{recordKeyPrefix + 1},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating iterator")
	}
	defer iter.Close()

	records := []tx.Record{}
	for iter.First(); iter.Valid(); iter.Next() {
		value, err := iter.ValueAndErr()
		if err != nil {
			return nil, errors.Wrap(err, "getting value from iter")
		}
		rec, err := decodeRecord(value)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Runs returns every recorded ingest run, oldest first.
func (s *Store) Runs() ([]Run, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte{runKeyPrefix},
		UpperBound: []byte{runKeyPrefix + 1},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating iterator")
	}
	defer iter.Close()

	runs := []Run{}
	for iter.First(); iter.Valid(); iter.Next() {
		var run Run
		id, err := ksuid.FromBytes(iter.Key()[1:])
		if err != nil {
			return nil, errors.Wrap(err, "decoding run id")
		}
		value, err := iter.ValueAndErr()
		if err != nil {
			return nil, errors.Wrap(err, "getting value from iter")
		}
		if err := json.Unmarshal(value, &run); err != nil {
			return nil, errors.Wrap(err, "unmarshalling run metadata")
		}
		run.ID = id
		runs = append(runs, run)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(id uint64) []byte {
	key := []byte{recordKeyPrefix}
	return binary.BigEndian.AppendUint64(key, id)
}

func runKey(id ksuid.KSUID) []byte {
	return append([]byte{runKeyPrefix}, id.Bytes()...)
}

// Records are stored in the same binary frame layout the binary codec
// writes to files.
func encodeRecord(rec tx.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := (codec.BinaryCodec{}).Write(&buf, []tx.Record{rec}); err != nil {
		return nil, errors.Wrap(err, "encoding record frame")
	}
	return buf.Bytes(), nil
}

func decodeRecord(value []byte) (tx.Record, error) {
	records, err := (codec.BinaryCodec{}).Parse(bytes.NewReader(value))
	if err != nil {
		return tx.Record{}, errors.Wrap(err, "decoding record frame")
	}
	if len(records) != 1 {
		return tx.Record{}, errors.Errorf("expected one frame, got %d", len(records))
	}
	return records[0], nil
}
