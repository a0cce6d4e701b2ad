package prompt

import (
	// Stdlib
	"strings"

	// Vendor
	"github.com/mattn/go-runewidth"
)

// Shorten truncates line so that it fits into maxWidth terminal columns.
// A non-positive maxWidth disables truncation.
func Shorten(line string, maxWidth int) string {
	// In case the line is short enough, we are done.
	if maxWidth <= 0 || runewidth.StringWidth(line) <= maxWidth {
		return line
	}
	if maxWidth <= len(" ...") {
		return runewidth.Truncate(line, maxWidth, "")
	}

	// Incorporate the trailing " ...".
	truncated := runewidth.Truncate(line, maxWidth-len(" ..."), "")

	// Drop the last word in case it was cut in half.
	if !strings.HasPrefix(line[len(truncated):], " ") {
		if i := strings.LastIndex(truncated, " "); i != -1 {
			truncated = truncated[:i]
		}
	}

	return truncated + " ..."
}
