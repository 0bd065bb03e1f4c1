package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ypay/txfile/pkg/tx"
)

// csvHeader is the exact first line of every CSV file: the eight field
// keys in canonical order.
const csvHeader = "TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION"

const csvDelimiter = ","

// CSVCodec reads and writes the header-validated CSV format. Rows are
// split on a literal comma with no quoting or escaping support: a comma
// inside a quoted description splits the row. That is a limitation of
// the format itself and is kept for file compatibility.
type CSVCodec struct{}

// Parse validates the header line byte-for-byte, then reads one record
// per line. The header counts as line 0 in diagnostics.
func (CSVCodec) Parse(r io.Reader) ([]tx.Record, error) {
	records := []tx.Record{}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	if scanner.Scan() {
		header := scanner.Text()
		if header != csvHeader {
			cause := &ParseError{Cause: InvalidFileHeader}
			return nil, located(cause, LineContext{Line: lineNum, Text: header})
		}
	}

	for scanner.Scan() {
		lineNum++
		rawLine := scanner.Text()
		rec, perr := parseCSVLine(strings.TrimSpace(rawLine))
		if perr != nil {
			return nil, located(perr, LineContext{Line: lineNum, Text: rawLine})
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{Err: err}
	}

	return records, nil
}

// parseCSVLine splits one data row and parses the eight fields
// positionally with the shared per-type parsers.
func parseCSVLine(line string) (tx.Record, *ParseError) {
	var rec tx.Record

	values := strings.Split(line, csvDelimiter)
	if len(values) != tx.FieldCount {
		return rec, &ParseError{Cause: IncompleteRecord}
	}
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	var perr *ParseError
	if rec.ID, perr = parseUint64Value(values[tx.FieldID]); perr != nil {
		return rec, perr
	}
	kind, ok := tx.KindFromToken(values[tx.FieldKind])
	if !ok {
		return rec, unparsableValue(values[tx.FieldKind])
	}
	rec.Kind = kind
	if rec.From, perr = parseUint64Value(values[tx.FieldFrom]); perr != nil {
		return rec, perr
	}
	if rec.To, perr = parseUint64Value(values[tx.FieldTo]); perr != nil {
		return rec, perr
	}
	if rec.Amount, perr = parseInt64Value(values[tx.FieldAmount]); perr != nil {
		return rec, perr
	}
	if rec.Timestamp, perr = parseUint64Value(values[tx.FieldTimestamp]); perr != nil {
		return rec, perr
	}
	status, ok := tx.StatusFromToken(values[tx.FieldStatus])
	if !ok {
		return rec, unparsableValue(values[tx.FieldStatus])
	}
	rec.Status = status
	if rec.Description, perr = unquote(values[tx.FieldDescription]); perr != nil {
		return rec, perr
	}

	return rec, nil
}

// Write emits the header line, then one comma-joined row per record. Only
// the description column is quoted.
func (CSVCodec) Write(w io.Writer, records []tx.Record) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return &WriteError{Err: err}
	}
	for _, rec := range records {
		values := make([]string, 0, tx.FieldCount)
		for _, key := range tx.FieldOrder {
			values = append(values, fieldValue(rec, key))
		}
		if _, err := fmt.Fprintln(w, strings.Join(values, csvDelimiter)); err != nil {
			return &WriteError{Err: err}
		}
	}
	return nil
}
