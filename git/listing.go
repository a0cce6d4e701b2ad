package git

import (
	// Stdlib
	"regexp"
	"strings"

	// Internal
	"github.com/kwokoek/git-cleaner/branches"
	"github.com/kwokoek/git-cleaner/errs"
	"github.com/kwokoek/git-cleaner/git/gitutil"
)

// ListingFormat is the git for-each-ref format used to list remote branches.
// Every line ends with the branch marker followed by <remote>/<branch>.
const ListingFormat = "%(committerdate:raw) %(committerdate:short) %(committername) %(subject) " +
	branches.Marker + " %(refname:lstrip=2)"

// Lister lists remote branches, the least recently committed to first.
type Lister struct {
	// Exclude contains patterns matched against branch names.
	// Matching branches are dropped from the listing.
	Exclude []*regexp.Regexp
}

// ListRemoteBranches returns the branch listing for the repository in dir.
//
// The output is empty when dir is not located in a Git repository.
// Any stderr output is treated as a failure and *RetrievalError is returned.
func (lister *Lister) ListRemoteBranches(dir string) (string, error) {
	task := "List remote branches in '" + dir + "'"

	isRepo, stderr, err := gitutil.IsRepository(dir)
	if err != nil {
		return "", errs.NewError(task, &RetrievalError{stderr, err})
	}
	if !isRepo {
		return "", nil
	}

	stdout, stderr, err := gitutil.Run(dir,
		"for-each-ref", "--sort=committerdate", "--format="+ListingFormat, "refs/remotes")
	if err != nil || stderr.Len() != 0 {
		return "", errs.NewErrorWithHint(task, &RetrievalError{stderr, err}, stderr.String())
	}

	return FilterListing(stdout.String(), lister.Exclude), nil
}

// FilterListing drops symbolic <remote>/HEAD references and the branches
// matching any of the exclude patterns. Lines that do not look like
// branch records are kept so that the parser can report them.
func FilterListing(listing string, exclude []*regexp.Regexp) string {
	lines := branches.SplitLines(listing)
	kept := make([]string, 0, len(lines))

LineLoop:
	for _, line := range lines {
		record, err := branches.Parse(line)
		if err != nil {
			kept = append(kept, line)
			continue
		}

		if record.Name == "HEAD" {
			continue
		}
		for _, re := range exclude {
			if re.MatchString(record.Name) {
				continue LineLoop
			}
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
