package errs

import (
	// Stdlib
	"bytes"
	"fmt"

	// Internal
	"github.com/kwokoek/git-cleaner/log"
)

// Error wraps an error with the name of the task that failed
// and an optional hint, usually the stderr of the command being run.
type Error struct {
	task string
	err  error
	hint *bytes.Buffer
}

func NewError(task string, err error) *Error {
	return &Error{task, err, nil}
}

func NewErrorWithHint(task string, err error, hint string) *Error {
	return &Error{task, err, bytes.NewBufferString(hint)}
}

func (err *Error) Task() string {
	return err.task
}

func (err *Error) Hint() string {
	if err.hint == nil {
		return ""
	}
	return err.hint.String()
}

func (err *Error) Error() string {
	if err.err == nil {
		return "task failed: " + err.task
	}
	return err.err.Error()
}

func (err *Error) Unwrap() error {
	return err.err
}

// Log prints the task chain, the deepest task first,
// followed by the root cause and the hints collected on the way.
func (err *Error) Log(logger log.Logger) {
	logger.Lock()
	defer logger.Unlock()
	err.unsafeLog(logger)
}

func (err *Error) unsafeLog(logger log.Logger) {
	inner, nested := err.err.(*Error)
	if nested {
		inner.unsafeLog(logger)
	}
	logger.UnsafeFail(err.task)
	if !nested && err.err != nil {
		logger.UnsafeNewLine(fmt.Sprintf("(%v)", err.err))
	}
	logger.UnsafeStderr(err.hint)
}

// RootCause returns the innermost error that is not an *Error.
func RootCause(err error) error {
	for {
		ex, ok := err.(*Error)
		if !ok || ex.err == nil {
			return err
		}
		err = ex.err
	}
}

// Log logs err in case it is an *Error, otherwise it just prints the message.
// The error is returned unchanged.
func Log(err error) error {
	logger := log.V(log.Info)
	if ex, ok := err.(*Error); ok {
		ex.Log(logger)
	} else {
		logger.Fail(err.Error())
	}
	return err
}
