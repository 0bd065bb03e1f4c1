// Package codec converts transaction records between three on-disk
// representations: a fixed binary frame format, a human-readable
// key/value text format, and a CSV format. Every field is validated and
// malformed input is reported with its precise location.
//
// # Binary Frame Format
//
// Each record is one self-delimited frame (all integers big-endian):
//
//	[Magic "YPBN"(4)][BodySize(4)][ID(8)][Kind(1)][From(8)][To(8)]
//	[Amount(8)][Timestamp(8)][Status(1)][DescSize(4)][Description]
//
// Fields:
//   - Magic: frame signature, bytes 59 50 42 4E
//   - BodySize: number of bytes following this field; at least 46
//     (the fixed fields with an empty description)
//   - ID: unsigned transaction identifier
//   - Kind: 0=DEPOSIT, 1=TRANSFER, 2=WITHDRAWAL
//   - From, To: unsigned account identifiers
//   - Amount: signed, minor currency units
//   - Timestamp: unsigned milliseconds since the Unix epoch
//   - Status: 0=SUCCESS, 1=FAILURE, 2=PENDING
//   - DescSize: byte length of the UTF-8 description that follows
//
// A stream ending cleanly between frames is a valid end of the record
// sequence; a stream ending inside a frame is a transport read error.
//
// # Text Format
//
// UTF-8 text, LF or CRLF line endings. Each record is a block of
// `KEY: value` lines in any order, closed by one or more blank lines.
// Lines starting with `#` are comments. Every block must set all eight
// keys exactly once; the DESCRIPTION value must be wrapped in double
// quotes.
//
// # CSV Format
//
// The first line must equal the fixed header
//
//	TX_ID,TX_TYPE,FROM_USER_ID,TO_USER_ID,AMOUNT,TIMESTAMP,STATUS,DESCRIPTION
//
// byte-for-byte. Rows are split on a literal comma with no quoting or
// escaping support, so a comma inside a description splits the row. The
// eight tokens are trimmed and parsed positionally; only DESCRIPTION is
// quoted.
//
// # Error Handling
//
// Failures of the underlying stream surface as *ReadError or
// *WriteError with no location attached. Domain failures surface as
// *Error wrapping a *ParseError cause and a Context: line number plus
// raw line text for the line-oriented formats, byte offset (optionally
// with the field being decoded) for the binary format. Parsing is
// fail-fast; the first error aborts the call with no partial result.
//
// # Thread Safety
//
// Codecs are stateless aside from per-call local buffers. Concurrent
// calls are safe as long as each operates on an independent stream.
package codec
