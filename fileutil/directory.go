package fileutil

import (
	// Stdlib
	"errors"
	"fmt"
	"os"

	// Internal
	"github.com/kwokoek/git-cleaner/errs"
)

// EnsureDirectory makes sure that path exists and it is a directory.
func EnsureDirectory(path string) error {
	task := fmt.Sprintf("Check whether '%v' exists and is a directory", path)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.NewError(task, errors.New("no such file or directory: "+path))
		}
		return errs.NewError(task, err)
	}
	if !info.IsDir() {
		return errs.NewError(task, errors.New("not a directory: "+path))
	}
	return nil
}
