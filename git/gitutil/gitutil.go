package gitutil

import (
	// Stdlib
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	// Internal
	"github.com/kwokoek/git-cleaner/log"
	"github.com/kwokoek/git-cleaner/shell"
)

// Exit status git uses for fatal errors, including "not a git repository".
const fatalExitStatus = 128

var localeVariables = []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}

// Environ returns the environment git is run with.
// The locale is forced to C so that the messages printed by git are stable.
func Environ() []string {
	var env []string
EnvLoop:
	for _, kv := range os.Environ() {
		for _, name := range localeVariables {
			if strings.HasPrefix(kv, name+"=") {
				continue EnvLoop
			}
		}
		env = append(env, kv)
	}
	return append(env, "LC_ALL=C")
}

// Run runs git in dir with the given arguments, pager disabled.
func Run(dir string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	argsList := make([]string, 2, 2+len(args))
	argsList[0], argsList[1] = "git", "--no-pager"
	argsList = append(argsList, args...)

	log.V(log.Debug).Log(fmt.Sprintf("Run git in '%v' with args = %#v", dir, args))
	return shell.RunWithEnv(dir, Environ(), argsList...)
}

// IsRepository returns true when dir is located inside a Git repository.
// The stderr is returned for other failures, e.g. git not being installed.
func IsRepository(dir string) (isRepo bool, stderr *bytes.Buffer, err error) {
	_, stderr, err = Run(dir, "rev-parse", "--git-dir")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == fatalExitStatus &&
			strings.Contains(stderr.String(), "not a git repository") {

			return false, nil, nil
		}
		return false, stderr, err
	}
	return true, nil, nil
}
