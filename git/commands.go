package git

import (
	// Internal
	"github.com/kwokoek/git-cleaner/shell"
)

// DeleteRemoteBranchCommand returns the command that deletes branch in remote
// by pushing an empty source ref into it.
func DeleteRemoteBranchCommand(remote, branch string) shell.Command {
	return shell.NewCommand("git", "push", "--porcelain", remote, ":"+branch)
}

// DeleteLocalBranchCommand returns the command that force-deletes the local branch.
func DeleteLocalBranchCommand(branch string) shell.Command {
	return shell.NewCommand("git", "branch", "-D", branch)
}
