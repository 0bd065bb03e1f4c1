package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ypay/txfile/pkg/tx"
)

const csvTestHeader = "TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION\n"

func TestCSVParse_HeaderOnlyIsEmptySequence(t *testing.T) {
	records, err := CSV.Parse(strings.NewReader(csvTestHeader))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestCSVParse_EmptyInput(t *testing.T) {
	records, err := CSV.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestCSVParse_TrimsWhitespaceAroundFields(t *testing.T) {
	input := csvTestHeader + " 7 , DEPOSIT , 0 , 3 , 99 , 1700 , SUCCESS , \"bonus\" \n"
	records, err := CSV.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := tx.Record{ID: 7, Kind: tx.Deposit, From: 0, To: 3, Amount: 99, Timestamp: 1700, Status: tx.Success, Description: "bonus"}
	if records[0] != want {
		t.Errorf("got %+v, want %+v", records[0], want)
	}
}

func TestCSVParse_RejectsInvalidHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"renamed column", "TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,WRONG_COL"},
		{"lowercase", strings.ToLower(strings.TrimSpace(csvTestHeader))},
		{"extra spaces", "TX_ID, TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION"},
		{"missing column", "TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.header + "\n1,DEPOSIT,0,1,10,11,SUCCESS,\"x\"\n"
			_, err := CSV.Parse(strings.NewReader(input))
			if perr := parseCause(t, err); perr.Cause != InvalidFileHeader {
				t.Errorf("expected InvalidFileHeader, got %+v", perr)
			}
		})
	}
}

func TestCSVParse_RejectsWrongFieldCount(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"7 fields", "1,DEPOSIT,0,1,10,11,SUCCESS"},
		{"9 fields", "1,DEPOSIT,0,1,10,11,SUCCESS,\"x\",extra"},
		{"empty line", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := csvTestHeader + tc.row + "\n"
			_, err := CSV.Parse(strings.NewReader(input))
			if perr := parseCause(t, err); perr.Cause != IncompleteRecord {
				t.Errorf("expected IncompleteRecord, got %+v", perr)
			}
		})
	}
}

func TestCSVParse_LineNumberInContext(t *testing.T) {
	input := csvTestHeader + "1,DEPOSIT,0,1,10,11,SUCCESS\n"
	_, err := CSV.Parse(strings.NewReader(input))
	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("expected a located error, got %v", err)
	}
	ctx, ok := lerr.Context.(LineContext)
	if !ok {
		t.Fatalf("expected line context, got %v", lerr.Context)
	}
	if ctx.Line != 1 {
		t.Errorf("expected line 1 (header is line 0), got %d", ctx.Line)
	}
}

func TestCSVParse_RejectsUnknownKindToken(t *testing.T) {
	input := csvTestHeader + "1,DEPO,0,1,10,11,SUCCESS,\"some\"\n"
	_, err := CSV.Parse(strings.NewReader(input))
	perr := parseCause(t, err)
	if perr.Cause != UnparsableValue || perr.Detail != "DEPO" {
		t.Errorf("expected UnparsableValue(DEPO), got %+v", perr)
	}
}

func TestCSVParse_RejectsUnknownStatusToken(t *testing.T) {
	input := csvTestHeader + "1,DEPOSIT,0,1,10,11,OK,\"some\"\n"
	_, err := CSV.Parse(strings.NewReader(input))
	if perr := parseCause(t, err); perr.Cause != UnparsableValue {
		t.Errorf("expected UnparsableValue, got %+v", perr)
	}
}

func TestCSVParse_RejectsUnquotedDescription(t *testing.T) {
	input := csvTestHeader + "1,DEPOSIT,0,1,10,11,SUCCESS,some\n"
	_, err := CSV.Parse(strings.NewReader(input))
	if perr := parseCause(t, err); perr.Cause != ShellBeQuoted {
		t.Errorf("expected ShellBeQuoted, got %+v", perr)
	}
}

func TestCSVParse_CommaInDescriptionSplitsTheRow(t *testing.T) {
	// No escaping support: this is a documented format limitation, the
	// row must fail on the field count, not parse.
	input := csvTestHeader + "1,DEPOSIT,0,1,10,11,SUCCESS,\"a, b\"\n"
	_, err := CSV.Parse(strings.NewReader(input))
	if perr := parseCause(t, err); perr.Cause != IncompleteRecord {
		t.Errorf("expected IncompleteRecord, got %+v", perr)
	}
}

func TestCSVRoundTrip_MultipleRecords(t *testing.T) {
	input := csvTestHeader +
		"1,DEPOSIT,0,11,100,1700,SUCCESS,\"in\"\n" +
		"2,WITHDRAWAL,11,0,50,1800,FAILURE,\"out\"\n"
	records, err := CSV.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	var out bytes.Buffer
	if err := CSV.Write(&out, records); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if out.String() != input {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", out.String(), input)
	}

	reparsed, err := CSV.Parse(&out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if len(reparsed) != 2 || reparsed[0] != records[0] || reparsed[1] != records[1] {
		t.Errorf("round trip mismatch: %+v", reparsed)
	}
}

func TestCSVWrite_OnlyDescriptionIsQuoted(t *testing.T) {
	var out bytes.Buffer
	if err := CSV.Write(&out, []tx.Record{sampleTx()}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[1] != `1,TRANSFER,11,22,-500,1700000,PENDING,"payment"` {
		t.Errorf("unexpected row: %s", lines[1])
	}
}
