// Package ui provides terminal interaction for cvue: prompts, spinners,
// progress bars and markdown rendering, each with a plain-text headless
// variant for non-TTY use.
package ui

import "errors"

// Errors returned by interactive components.
var (
	// ErrCancelled is returned when the user aborts a prompt.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrHeadlessNoDefault is returned when a prompt needs an answer but
	// stdin is not a terminal and no default is available.
	ErrHeadlessNoDefault = errors.New("ui: input required but not running in a terminal")

	// ErrNoOptions is returned by Select when given no options.
	ErrNoOptions = errors.New("ui: no options to select from")
)

// Prompter asks the user questions. Command code depends on this
// interface so it can be driven by scripted answers in tests.
type Prompter interface {
	// Select returns the index of the chosen option.
	Select(title string, options []string, def int) (int, error)
	// Input returns a line of text, pre-filled with initial.
	Input(title, initial string) (string, error)
	// Confirm returns a yes/no answer.
	Confirm(title string, def bool) (bool, error)
}

// Progress creates progress indicators.
type Progress interface {
	Start(title string, total int) ProgressBar
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
