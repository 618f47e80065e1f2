package domain

import (
	"errors"
	"fmt"
)

// ErrAmbiguousPrefix is returned when a GUID prefix matches several runs.
var ErrAmbiguousPrefix = errors.New("run id prefix is ambiguous")

// ErrAlreadySaved is returned when saving a run that already has an ID.
var ErrAlreadySaved = errors.New("run already saved")

// RunNotFoundError reports a GUID or prefix that matched no run.
type RunNotFoundError struct {
	GUID string
}

func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("run not found: %s", e.GUID)
}

// IsNotFound reports whether err is or wraps a *RunNotFoundError.
func IsNotFound(err error) bool {
	var nf *RunNotFoundError
	return errors.As(err, &nf)
}
