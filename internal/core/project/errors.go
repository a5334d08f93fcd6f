// Package project validates the directory a template is cloned into.
// Names are checked against rules that keep a generated project portable
// across filesystems, including Windows device names on every platform.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrNameEmpty indicates an empty directory name.
	ErrNameEmpty = errors.New("project name must not be empty")

	// ErrNameTooLong indicates a name longer than MaxNameLength bytes.
	ErrNameTooLong = errors.New("project name is too long (max 255 bytes)")

	// ErrNameInvalidChars indicates a reserved filesystem character in the name.
	ErrNameInvalidChars = errors.New("project name contains invalid characters")

	// ErrNameReserved indicates a reserved device name such as "con" or "lpt1".
	ErrNameReserved = errors.New("project name is a reserved name")
)
