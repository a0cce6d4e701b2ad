package prune

import (
	// Stdlib
	"errors"
	"fmt"
	"io"

	// Internal
	"github.com/kwokoek/git-cleaner/branches"
	"github.com/kwokoek/git-cleaner/errs"
	"github.com/kwokoek/git-cleaner/log"
	"github.com/kwokoek/git-cleaner/prompt"

	// Vendor
	"github.com/fatih/color"
)

// Deleter deletes a branch once the user confirms it.
// An empty string with nil error means that nothing was deleted.
type Deleter interface {
	ConfirmAndDelete(dir string, record *branches.Record) (string, error)
}

type Options struct {
	// SkipMalformed makes Review skip records that cannot be parsed.
	// By default the first malformed record ends the review.
	SkipMalformed bool

	// MaxInfoWidth limits the width of the commit info line when positive.
	MaxInfoWidth int
}

// Reviewer goes through the branch records one by one
// and lets the user decide what to do with each of them.
type Reviewer struct {
	Prompter Prompter
	Deleter  Deleter
	Out      io.Writer
	Options  Options
}

// Review processes lines in order. Empty lines are ignored.
//
// The stats are always returned, even when the review ends early,
// which happens on ErrUserExit, a malformed record or a failed delete.
func (reviewer *Reviewer) Review(dir string, lines []string) (Stats, error) {
	var stats Stats
	for _, line := range lines {
		if line == "" {
			continue
		}
		stats.BranchCount++

		record, err := branches.Parse(line)
		if err != nil {
			if reviewer.Options.SkipMalformed {
				log.Warn(err.Error())
				continue
			}
			return stats, errs.NewError("Parse the branch listing", err)
		}

		reviewer.display(record)

		question := fmt.Sprintf("Delete branch '%v'? (yes/no/exit): ", record)
		answer, err := reviewer.Prompter.Prompt(question)
		if err != nil {
			return stats, exitOnCancel(err)
		}

		switch {
		case isAffirmative(answer):
			executed, err := reviewer.Deleter.ConfirmAndDelete(dir, record)
			if err != nil {
				return stats, exitOnCancel(err)
			}
			if executed != "" {
				stats.DeleteCount++
			}

		case isExit(answer):
			return stats, ErrUserExit

		default:
			fmt.Fprintf(reviewer.Out, "Skipping branch '%v'\n", record)
		}
	}
	return stats, nil
}

func (reviewer *Reviewer) display(record *branches.Record) {
	yellow := color.New(color.FgYellow).SprintFunc()

	if width := reviewer.Options.MaxInfoWidth; width > 0 {
		info := prompt.Shorten(record.Info(), width)
		fmt.Fprintf(reviewer.Out, "\n%v %v\n", yellow(info), record)
		return
	}
	fmt.Fprintf(reviewer.Out, "\n%v\n", yellow(record.RawInfo))
}

// exitOnCancel turns closed input into a regular exit.
func exitOnCancel(err error) error {
	if errors.Is(err, prompt.ErrCanceled) {
		return ErrUserExit
	}
	return err
}
