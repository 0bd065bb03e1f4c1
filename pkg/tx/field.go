package tx

// FieldKey names one of the eight record attributes. The keys double as
// the column names of the CSV header and the line keys of the text
// format, and locate field-level failures in parser diagnostics.
type FieldKey uint8

const (
	FieldID FieldKey = iota
	FieldKind
	FieldFrom
	FieldTo
	FieldAmount
	FieldTimestamp
	FieldStatus
	FieldDescription
)

// FieldCount is the number of record fields.
const FieldCount = 8

// FieldOrder is the canonical field order used for output, CSV columns
// and missing-field reporting.
var FieldOrder = [FieldCount]FieldKey{
	FieldID,
	FieldKind,
	FieldFrom,
	FieldTo,
	FieldAmount,
	FieldTimestamp,
	FieldStatus,
	FieldDescription,
}

// String returns the canonical uppercase key token.
func (k FieldKey) String() string {
	switch k {
	case FieldID:
		return "TX_ID"
	case FieldKind:
		return "TX_TYPE"
	case FieldFrom:
		return "FROM_USER_ID"
	case FieldTo:
		return "TO_USER_ID"
	case FieldAmount:
		return "AMOUNT"
	case FieldTimestamp:
		return "TIMESTAMP"
	case FieldStatus:
		return "STATUS"
	case FieldDescription:
		return "DESCRIPTION"
	}
	return "FIELD(?)"
}

// FieldKeyFromToken maps a key token back to a FieldKey. The match is
// case-sensitive; anything outside the eight canonical keys reports
// ok=false.
func FieldKeyFromToken(s string) (FieldKey, bool) {
	switch s {
	case "TX_ID":
		return FieldID, true
	case "TX_TYPE":
		return FieldKind, true
	case "FROM_USER_ID":
		return FieldFrom, true
	case "TO_USER_ID":
		return FieldTo, true
	case "AMOUNT":
		return FieldAmount, true
	case "TIMESTAMP":
		return FieldTimestamp, true
	case "STATUS":
		return FieldStatus, true
	case "DESCRIPTION":
		return FieldDescription, true
	}
	return 0, false
}
