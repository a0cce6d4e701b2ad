package prune

import "errors"

// ErrUserExit is returned by Reviewer when the user chooses to exit.
// It ends the session early, but it is not a failure.
var ErrUserExit = errors.New("exit requested by the user")
