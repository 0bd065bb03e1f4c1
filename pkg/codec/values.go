package codec

import "strconv"

// Shared per-type value parsers used by the text and CSV codecs. Each
// returns an UnparsableValue (or ShellBeQuoted) domain error; the caller
// attaches location context.

func parseUint64Value(s string) (uint64, *ParseError) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, unparsableValue(s)
	}
	return v, nil
}

func parseInt64Value(s string) (int64, *ParseError) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, unparsableValue(s)
	}
	return v, nil
}

// unquote strips the mandatory pair of double quotes around a description
// value.
func unquote(s string) (string, *ParseError) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", &ParseError{Cause: ShellBeQuoted, Detail: s}
	}
	return s[1 : len(s)-1], nil
}

// quote wraps a description value for output.
func quote(s string) string {
	return `"` + s + `"`
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
