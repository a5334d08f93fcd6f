// Package clone turns a template alias or repository reference into a
// local checkout: it resolves the source, validates and prepares the
// target directory, builds the clone URL and runs git.
package clone

import "errors"

// ErrNoDefaultTemplate is returned when no template was named and the
// catalog marks none as default.
var ErrNoDefaultTemplate = errors.New("no default template; run 'cvue init' to seed the catalog or name a template")

// ErrTargetNotChild is returned when the target directory would be the
// working directory itself or lie outside it.
var ErrTargetNotChild = errors.New("target must be a new directory inside the working directory")
