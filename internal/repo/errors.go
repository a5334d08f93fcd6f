// Package repo resolves user-supplied repository references into
// fetchable clone URLs. It accepts GitHub-style shorthand ("owner/name")
// and full URLs on an allow-listed set of hosts, and injects access tokens
// into HTTPS URLs.
package repo

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for repository reference handling.
var (
	// ErrInvalidRepoURL indicates the reference is neither shorthand nor a URL on an allowed host.
	ErrInvalidRepoURL = errors.New("invalid GitHub URL")

	// ErrCredentialsPresent indicates a token was supplied for a URL that already carries credentials.
	ErrCredentialsPresent = errors.New("URL already contains credentials")
)

// InvalidRefError reports a repository reference that failed resolution.
type InvalidRefError struct {
	Ref   string
	Hosts []string
}

// Error implements the error interface.
func (e *InvalidRefError) Error() string {
	if len(e.Hosts) == 1 && e.Hosts[0] == DefaultHost {
		return fmt.Sprintf("%s: %q", ErrInvalidRepoURL, e.Ref)
	}
	return fmt.Sprintf("invalid repository reference %q: expected owner/name or a URL on one of: %s",
		e.Ref, strings.Join(e.Hosts, ", "))
}

// Unwrap returns ErrInvalidRepoURL so callers can use errors.Is.
func (e *InvalidRefError) Unwrap() error {
	return ErrInvalidRepoURL
}
