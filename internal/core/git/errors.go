// Package git runs the system git binary to clone template repositories.
package git

import (
	"errors"
	"fmt"
)

// Sentinel errors for git operations.
var (
	// ErrSystemGitNotFound indicates git is not on PATH.
	ErrSystemGitNotFound = errors.New("git: system git not found")

	// ErrCloneFailed indicates git clone exited unsuccessfully.
	ErrCloneFailed = errors.New("git clone failed")
)

// CloneError reports a git clone that ran but exited non-zero.
type CloneError struct {
	Code   int
	Stderr string
}

// Error implements the error interface.
func (e *CloneError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s, exit code: %d: %s", ErrCloneFailed, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s, exit code: %d", ErrCloneFailed, e.Code)
}

// Unwrap returns ErrCloneFailed.
func (e *CloneError) Unwrap() error {
	return ErrCloneFailed
}
