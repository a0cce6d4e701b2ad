package shell

import (
	// Stdlib
	"bytes"
	"fmt"
)

// CommandFailedError is returned by Runner when a command fails
// and the failure is not being ignored.
type CommandFailedError struct {
	Command string
	Stderr  *bytes.Buffer
	Err     error
}

func (err *CommandFailedError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("command failed: %v (%v)", err.Command, err.Err)
	}
	return fmt.Sprintf("command failed: %v (unexpected stderr output)", err.Command)
}

func (err *CommandFailedError) Unwrap() error {
	return err.Err
}
