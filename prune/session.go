package prune

import (
	// Stdlib
	"fmt"
	"io"

	// Internal
	"github.com/kwokoek/git-cleaner/branches"
	"github.com/kwokoek/git-cleaner/log"
)

// Lister produces the branch listing, the oldest branch first.
// An empty listing means there is no repository in dir.
type Lister interface {
	ListRemoteBranches(dir string) (string, error)
}

// Session drives a single cleanup session for one repository.
type Session struct {
	Lister   Lister
	Reviewer *Reviewer
	Out      io.Writer
}

// Run lists the branches in dir and lets Reviewer go through them.
//
// The stats are reported into Out once the review ends, no matter why.
// The returned stats are nil in case the review did not start at all.
func (session *Session) Run(dir string) (*Stats, error) {
	log.Run(fmt.Sprintf("List remote branches in '%v'", dir))
	listing, err := session.Lister.ListRemoteBranches(dir)
	if err != nil {
		return nil, err
	}
	if listing == "" {
		log.Printf("\nNo git repository or no remote branches found in '%v', exiting...\n", dir)
		return nil, nil
	}

	stats, err := session.Reviewer.Review(dir, branches.SplitLines(listing))
	if ex := stats.Report(session.Out); ex != nil {
		log.Warn("Failed to print the statistics: " + ex.Error())
	}
	return &stats, err
}
