package shell

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/kwokoek/git-cleaner/log"
)

// Executor runs commands on behalf of the user.
type Executor interface {
	// Run runs cmd in dir and returns the command line that was run.
	// When ignoreErrors is set, a failure is logged but not returned.
	Run(dir string, cmd Command, ignoreErrors bool) (string, error)
}

// Runner is the Executor running real processes.
type Runner struct {
	// StrictStderr makes any output to stderr count as a failure,
	// even when the command exits successfully.
	StrictStderr bool
}

func NewRunner() *Runner {
	return &Runner{StrictStderr: true}
}

func (runner *Runner) Run(dir string, cmd Command, ignoreErrors bool) (string, error) {
	line := cmd.String()
	log.V(log.Debug).Log(fmt.Sprintf("Run '%v' in '%v'", line, dir))

	_, stderr, err := Run(dir, cmd...)
	failed := err != nil || (runner.StrictStderr && stderr.Len() != 0)

	if failed && !ignoreErrors {
		log.FailWithContext(line, stderr)
		return "", &CommandFailedError{line, stderr, err}
	}

	if failed {
		// Best effort only, keep the details for the curious.
		log.V(log.Verbose).FailWithContext(line+" (ignored)", stderr)
	}
	log.Ok(line)
	return line, nil
}
