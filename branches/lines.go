package branches

import (
	// Stdlib
	"regexp"
)

var lineSeparator = regexp.MustCompile("\r\n|\r|\n")

// SplitLines splits the branch listing into lines.
// LF, CR and CRLF line endings are all recognised, even when mixed.
func SplitLines(listing string) []string {
	if listing == "" {
		return nil
	}
	return lineSeparator.Split(listing, -1)
}
