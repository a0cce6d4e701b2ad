package branches

import (
	// Stdlib
	"strings"
)

// Marker separates the commit metadata from the remote branch name
// in the lines produced by the branch listing.
const Marker = "[[branch]]"

// Record represents a single remote branch as listed for review.
type Record struct {
	// Remote is the name of the remote, e.g. origin.
	Remote string

	// Name is the branch name relative to the remote.
	// It may contain slashes, e.g. release/1.0.
	Name string

	// RawInfo is the line the record was parsed from, untouched.
	RawInfo string
}

// String returns "{{.Remote}}/{{.Name}}".
func (record *Record) String() string {
	return record.Remote + "/" + record.Name
}

// Info returns the commit metadata part of the raw line,
// i.e. everything preceding the marker.
func (record *Record) Info() string {
	if i := strings.LastIndex(record.RawInfo, Marker); i != -1 {
		return strings.TrimSpace(record.RawInfo[:i])
	}
	return strings.TrimSpace(record.RawInfo)
}

// Parse turns a single line of the branch listing into a Record.
//
// The line is expected to end with "[[branch]] <remote>/<branch>".
// Only the first slash of the branch reference separates the remote name.
// The last occurrence of the marker is used, since Git reference names
// cannot contain '[' while commit subjects can.
func Parse(line string) (*Record, error) {
	i := strings.LastIndex(line, Marker)
	if i == -1 {
		return nil, newParseError(MissingMarker, line,
			"marker "+Marker+" not found")
	}

	ref := strings.TrimSpace(line[i+len(Marker):])
	if ref == "" {
		return nil, newParseError(EmptyPayload, line,
			"nothing follows marker "+Marker)
	}

	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 {
		return nil, newParseError(NoRemoteSeparator, line,
			"branch reference '"+ref+"' is missing the remote separator")
	}

	remote, name := parts[0], parts[1]
	if remote == "" || name == "" {
		return nil, newParseError(IncompleteIdentity, line,
			"branch reference '"+ref+"' is missing the remote or the branch name")
	}

	return &Record{
		Remote:  remote,
		Name:    name,
		RawInfo: line,
	}, nil
}
