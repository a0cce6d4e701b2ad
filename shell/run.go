package shell

import (
	// Stdlib
	"bytes"
	"errors"
	"os/exec"
)

// Run runs the given command in dir and returns its output.
// An empty dir means the current working directory.
func Run(dir string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	return RunWithEnv(dir, nil, args...)
}

// RunWithEnv is Run with the environment of the command replaced by env.
// A nil env means the environment of the current process.
func RunWithEnv(dir string, env []string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)

	if len(args) == 0 {
		return stdout, stderr, errors.New("no command specified")
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Env = env

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()

	return
}
