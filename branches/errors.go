package branches

import "fmt"

// ParseErrorKind tells why a line could not be parsed.
type ParseErrorKind int

const (
	MissingMarker ParseErrorKind = iota + 1
	EmptyPayload
	NoRemoteSeparator
	IncompleteIdentity
)

var parseErrorKindStrings = map[ParseErrorKind]string{
	MissingMarker:      "missing marker",
	EmptyPayload:       "empty payload",
	NoRemoteSeparator:  "no remote separator",
	IncompleteIdentity: "incomplete identity",
}

func (kind ParseErrorKind) String() string {
	if s, ok := parseErrorKindStrings[kind]; ok {
		return s
	}
	return fmt.Sprintf("ParseErrorKind(%d)", int(kind))
}

// ParseError is returned by Parse for malformed lines.
type ParseError struct {
	Kind   ParseErrorKind
	Line   string
	Reason string
}

func newParseError(kind ParseErrorKind, line, reason string) *ParseError {
	return &ParseError{kind, line, reason}
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("failed to parse branch record %q: %v", err.Line, err.Reason)
}
