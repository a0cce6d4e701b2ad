package shell

import "strings"

// Command is an argument vector, the program name being the first item.
// It is executed directly, never interpreted by a shell.
type Command []string

func NewCommand(name string, args ...string) Command {
	return append(Command{name}, args...)
}

// String returns the command line as presented to the user.
func (cmd Command) String() string {
	return strings.Join(cmd, " ")
}
