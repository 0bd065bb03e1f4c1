package codec

import (
	"fmt"

	"github.com/ypay/txfile/pkg/tx"
)

// Cause enumerates the closed set of domain parse failures shared by all
// formats.
type Cause uint8

const (
	// MissingField means a required field was absent when a record closed.
	MissingField Cause = iota
	// UnparsableKey means an unknown field key was met in the input.
	UnparsableKey
	// UnparsableValue means a field value cannot be parsed into its type.
	UnparsableValue
	// Duplicate means the same field was provided more than once.
	Duplicate
	// NoFieldDelimiter means the key-value delimiter is absent in a line.
	NoFieldDelimiter
	// ShellBeQuoted means a string value is not wrapped in double quotes.
	ShellBeQuoted
	// InvalidFileHeader means the file header is invalid for the format.
	InvalidFileHeader
	// InvalidRecordHeader means a record header signature is invalid.
	InvalidRecordHeader
	// IncompleteRecord means a record does not have all required fields.
	IncompleteRecord
)

// ParseError is a domain failure detected while decoding input. It is
// always wrapped into an Error with location context before it is
// returned to a caller.
type ParseError struct {
	Cause Cause
	// Field is meaningful for MissingField and Duplicate.
	Field tx.FieldKey
	// Detail carries the offending token, value or hex dump where one
	// exists.
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Cause {
	case MissingField:
		return fmt.Sprintf("required field %s is missing", e.Field)
	case UnparsableKey:
		return fmt.Sprintf("unknown key %s", e.Detail)
	case UnparsableValue:
		return fmt.Sprintf("value %s can't be parsed", e.Detail)
	case Duplicate:
		return fmt.Sprintf("field %s has duplicate", e.Field)
	case NoFieldDelimiter:
		return "key-value delimiter is expected"
	case ShellBeQuoted:
		return fmt.Sprintf("string ->%s<- shall be double quoted", e.Detail)
	case InvalidFileHeader:
		return "invalid file header"
	case InvalidRecordHeader:
		return fmt.Sprintf("invalid record header %q", e.Detail)
	case IncompleteRecord:
		return "incomplete record (doesn't have all required fields)"
	}
	return "unknown parse error"
}

func missingField(k tx.FieldKey) *ParseError {
	return &ParseError{Cause: MissingField, Field: k}
}

func duplicateField(k tx.FieldKey) *ParseError {
	return &ParseError{Cause: Duplicate, Field: k}
}

func unparsableKey(key string) *ParseError {
	return &ParseError{Cause: UnparsableKey, Detail: key}
}

func unparsableValue(value string) *ParseError {
	return &ParseError{Cause: UnparsableValue, Detail: value}
}

// Context locates a domain failure within the input stream. Exactly one
// of the three shapes is used depending on the format: line-oriented
// formats attach the line number and raw line text, the binary format
// attaches a byte offset, optionally with the field being decoded.
type Context interface {
	fmt.Stringer
	context()
}

// LineContext points at a line of a line-oriented input.
type LineContext struct {
	Line int
	Text string
}

func (c LineContext) context() {}

func (c LineContext) String() string {
	return fmt.Sprintf("line #%d, content: `%s`", c.Line, c.Text)
}

// OffsetContext points at a byte offset of a binary input.
type OffsetContext struct {
	Offset int64
}

func (c OffsetContext) context() {}

func (c OffsetContext) String() string {
	return fmt.Sprintf("position #%d", c.Offset)
}

// FieldOffsetContext points at a byte offset and the field being decoded
// there.
type FieldOffsetContext struct {
	Offset int64
	Field  tx.FieldKey
}

func (c FieldOffsetContext) context() {}

func (c FieldOffsetContext) String() string {
	return fmt.Sprintf("position #%d, field being parsed: `%s`", c.Offset, c.Field)
}

// Error is a located domain failure: the user-facing wrapper every codec
// returns for malformed input. Transport failures are never wrapped in
// an Error; they surface as ReadError or WriteError instead.
type Error struct {
	Context Context
	Cause   *ParseError
}

func (e *Error) Error() string {
	return e.Cause.Error() + ":\n" + e.Context.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func located(cause *ParseError, ctx Context) *Error {
	return &Error{Context: ctx, Cause: cause}
}

// ReadError wraps a failure of the underlying input stream.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "read error, " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps a failure of the underlying output stream.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "write error, " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
