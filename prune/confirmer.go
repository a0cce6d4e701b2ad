package prune

import (
	// Stdlib
	"fmt"
	"io"

	// Internal
	"github.com/kwokoek/git-cleaner/branches"
	"github.com/kwokoek/git-cleaner/errs"
	"github.com/kwokoek/git-cleaner/git"
	"github.com/kwokoek/git-cleaner/shell"

	// Vendor
	"github.com/fatih/color"
)

// Prompter reads a single answer from the user.
type Prompter interface {
	Prompt(msg string) (string, error)
}

// Confirmer deletes branches, but only after the user confirms
// the exact command that is going to be run.
type Confirmer struct {
	Prompter Prompter
	Executor shell.Executor
	Out      io.Writer
}

// ConfirmAndDelete asks the user to confirm the remote delete command for record.
// On confirmation the remote branch is deleted and then the local branch
// of the same name is deleted as well, ignoring any failure of the latter.
//
// The remote delete command is returned when it was run successfully,
// an empty string is returned when the user declined.
func (confirmer *Confirmer) ConfirmAndDelete(dir string, record *branches.Record) (string, error) {
	deleteRemote := git.DeleteRemoteBranchCommand(record.Remote, record.Name)

	question := fmt.Sprintf("Are you sure you want to run '%v'? (yes/no): ",
		color.New(color.Bold).Sprint(deleteRemote))
	answer, err := confirmer.Prompter.Prompt(question)
	if err != nil {
		return "", err
	}
	if !isAffirmative(answer) {
		fmt.Fprintf(confirmer.Out, "Skipping, branch '%v' was not deleted\n", record)
		return "", nil
	}

	task := fmt.Sprintf("Delete remote branch '%v'", record)
	executed, err := confirmer.Executor.Run(dir, deleteRemote, false)
	if err != nil {
		return "", errs.NewError(task, err)
	}

	// The local branch may not exist at all, so this is best effort only.
	confirmer.Executor.Run(dir, git.DeleteLocalBranchCommand(record.Name), true)

	return executed, nil
}

func isAffirmative(answer string) bool {
	return answer == "yes" || answer == "y"
}

func isExit(answer string) bool {
	return answer == "exit" || answer == "x"
}
