package prune

import (
	// Stdlib
	"fmt"
	"io"
)

// Stats is accumulated by Reviewer while going through the branches.
type Stats struct {
	// BranchCount is the number of non-blank records processed,
	// no matter what the outcome was.
	BranchCount int

	// DeleteCount is the number of branches deleted in the remote.
	DeleteCount int
}

// Report prints the statistics into w.
func (stats Stats) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\nBranches processed: %d\nBranches deleted:   %d\n",
		stats.BranchCount, stats.DeleteCount)
	return err
}
