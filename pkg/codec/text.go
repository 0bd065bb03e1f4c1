package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ypay/txfile/pkg/tx"
)

const (
	kvDelimiter   = ":"
	commentPrefix = '#'
)

// TextCodec reads and writes the human-readable key/value block format.
// Records are separated by blank lines, fields may appear in any order
// within a record, and a `#` starts a full-line comment.
type TextCodec struct{}

// recordBuilder accumulates at most one value per field for the record
// currently being read.
type recordBuilder struct {
	dirty bool
	set   [tx.FieldCount]bool
	rec   tx.Record
}

func (b *recordBuilder) setField(key tx.FieldKey, value string) *ParseError {
	if b.set[key] {
		return duplicateField(key)
	}
	b.dirty = true
	b.set[key] = true
	switch key {
	case tx.FieldID:
		v, perr := parseUint64Value(value)
		if perr != nil {
			return perr
		}
		b.rec.ID = v
	case tx.FieldKind:
		kind, ok := tx.KindFromToken(value)
		if !ok {
			return unparsableValue(value)
		}
		b.rec.Kind = kind
	case tx.FieldFrom:
		v, perr := parseUint64Value(value)
		if perr != nil {
			return perr
		}
		b.rec.From = v
	case tx.FieldTo:
		v, perr := parseUint64Value(value)
		if perr != nil {
			return perr
		}
		b.rec.To = v
	case tx.FieldAmount:
		v, perr := parseInt64Value(value)
		if perr != nil {
			return perr
		}
		b.rec.Amount = v
	case tx.FieldTimestamp:
		v, perr := parseUint64Value(value)
		if perr != nil {
			return perr
		}
		b.rec.Timestamp = v
	case tx.FieldStatus:
		status, ok := tx.StatusFromToken(value)
		if !ok {
			return unparsableValue(value)
		}
		b.rec.Status = status
	case tx.FieldDescription:
		desc, perr := unquote(value)
		if perr != nil {
			return perr
		}
		b.rec.Description = desc
	}
	return nil
}

// addLine parses one `KEY: value` line into the builder.
func (b *recordBuilder) addLine(line string) *ParseError {
	key, value, found := strings.Cut(line, kvDelimiter)
	if !found {
		return &ParseError{Cause: NoFieldDelimiter}
	}
	fieldKey, ok := tx.FieldKeyFromToken(strings.TrimSpace(key))
	if !ok {
		return unparsableKey(strings.TrimSpace(key))
	}
	return b.setField(fieldKey, strings.TrimSpace(value))
}

// finalize validates that every field was set, reporting the first
// missing field in canonical order, and resets the builder.
func (b *recordBuilder) finalize() (tx.Record, *ParseError) {
	for _, key := range tx.FieldOrder {
		if !b.set[key] {
			return tx.Record{}, missingField(key)
		}
	}
	rec := b.rec
	*b = recordBuilder{}
	return rec, nil
}

// Parse reads key/value blocks until the stream ends. A blank line (or
// the end of input) closes the current record only if at least one field
// was set on it.
func (TextCodec) Parse(r io.Reader) ([]tx.Record, error) {
	records := []tx.Record{}
	var builder recordBuilder
	lineNum := 0
	rawLine := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		rawLine = scanner.Text()
		line := strings.TrimSpace(rawLine)

		if len(line) > 0 && line[0] == commentPrefix {
			continue
		}

		if line == "" {
			if builder.dirty {
				rec, perr := builder.finalize()
				if perr != nil {
					return nil, located(perr, LineContext{Line: lineNum, Text: rawLine})
				}
				records = append(records, rec)
			}
			builder = recordBuilder{}
			continue
		}

		if perr := builder.addLine(line); perr != nil {
			return nil, located(perr, LineContext{Line: lineNum, Text: rawLine})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Err: err}
	}

	// Input ended with an open record.
	if builder.dirty {
		rec, perr := builder.finalize()
		if perr != nil {
			return nil, located(perr, LineContext{Line: lineNum, Text: rawLine})
		}
		records = append(records, rec)
	}

	return records, nil
}

// Write emits one `KEY: value` line per field in canonical order, then a
// blank line after each record.
func (TextCodec) Write(w io.Writer, records []tx.Record) error {
	for _, rec := range records {
		if err := writeTextRecord(w, rec); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}

func writeTextRecord(w io.Writer, rec tx.Record) error {
	for _, key := range tx.FieldOrder {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", key, kvDelimiter, fieldValue(rec, key)); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}

// fieldValue renders one field the way both line-oriented formats expect
// it, with the description quoted.
func fieldValue(rec tx.Record, key tx.FieldKey) string {
	switch key {
	case tx.FieldID:
		return formatUint(rec.ID)
	case tx.FieldKind:
		return rec.Kind.String()
	case tx.FieldFrom:
		return formatUint(rec.From)
	case tx.FieldTo:
		return formatUint(rec.To)
	case tx.FieldAmount:
		return formatInt(rec.Amount)
	case tx.FieldTimestamp:
		return formatUint(rec.Timestamp)
	case tx.FieldStatus:
		return rec.Status.String()
	case tx.FieldDescription:
		return quote(rec.Description)
	}
	return ""
}
