// Package tx defines the transaction record domain model shared by all
// file format codecs.
package tx

import "strconv"

// Kind is the closed set of transaction kinds.
type Kind uint8

const (
	Deposit Kind = iota
	Transfer
	Withdrawal
)

// String returns the canonical uppercase token used by the text and CSV
// formats.
func (k Kind) String() string {
	switch k {
	case Deposit:
		return "DEPOSIT"
	case Transfer:
		return "TRANSFER"
	case Withdrawal:
		return "WITHDRAWAL"
	}
	return "KIND(" + strconv.Itoa(int(k)) + ")"
}

// Code returns the single-byte code used by the binary format.
func (k Kind) Code() byte {
	return byte(k)
}

// KindFromToken maps a text token back to a Kind. The token set is closed;
// anything else reports ok=false.
func KindFromToken(s string) (Kind, bool) {
	switch s {
	case "DEPOSIT":
		return Deposit, true
	case "TRANSFER":
		return Transfer, true
	case "WITHDRAWAL":
		return Withdrawal, true
	}
	return 0, false
}

// KindFromCode maps a binary byte code back to a Kind.
func KindFromCode(b byte) (Kind, bool) {
	switch b {
	case 0:
		return Deposit, true
	case 1:
		return Transfer, true
	case 2:
		return Withdrawal, true
	}
	return 0, false
}

// Status is the closed set of transaction statuses.
type Status uint8

const (
	Success Status = iota
	Failure
	Pending
)

// String returns the canonical uppercase token used by the text and CSV
// formats.
func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case Pending:
		return "PENDING"
	}
	return "STATUS(" + strconv.Itoa(int(s)) + ")"
}

// Code returns the single-byte code used by the binary format.
func (s Status) Code() byte {
	return byte(s)
}

// StatusFromToken maps a text token back to a Status.
func StatusFromToken(s string) (Status, bool) {
	switch s {
	case "SUCCESS":
		return Success, true
	case "FAILURE":
		return Failure, true
	case "PENDING":
		return Pending, true
	}
	return 0, false
}

// StatusFromCode maps a binary byte code back to a Status.
func StatusFromCode(b byte) (Status, bool) {
	switch b {
	case 0:
		return Success, true
	case 1:
		return Failure, true
	case 2:
		return Pending, true
	}
	return 0, false
}

// Record is a single financial transaction. A record is produced by a
// codec parse or constructed by a caller and is immutable thereafter.
//
// Equality is full structural equality over all fields; the struct is
// comparable, so records can key a map when computing multiset
// differences. No cross-field relation is enforced: a Deposit may carry a
// nonzero From and the amount sign is not constrained by the kind. That
// permissiveness is part of the format definition.
type Record struct {
	ID          uint64
	Kind        Kind
	From        uint64 // source account identifier
	To          uint64 // destination account identifier
	Amount      int64  // minor currency units, sign unconstrained
	Timestamp   uint64 // milliseconds since the Unix epoch
	Status      Status
	Description string // free text, may be empty
}
