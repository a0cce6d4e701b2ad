package git

import "bytes"

// RetrievalError is returned when the remote branches cannot be listed.
type RetrievalError struct {
	Stderr *bytes.Buffer
	Err    error
}

func (err *RetrievalError) Error() string {
	if err.Err != nil {
		return "failed to list remote branches: " + err.Err.Error()
	}
	return "failed to list remote branches: unexpected stderr output"
}

func (err *RetrievalError) Unwrap() error {
	return err.Err
}

