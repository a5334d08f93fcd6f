package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Compile-time interface compliance check.
var _ Prompter = (*huhPrompter)(nil)

// huhPrompter implements Prompter with one huh.Form per question.
type huhPrompter struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewPrompter creates the terminal Prompter. In headless mode every
// question resolves to its default without touching stdin.
func NewPrompter(theme *Theme, hm *HeadlessManager) Prompter {
	return &huhPrompter{theme: theme, headless: hm}
}

// Select asks the user to pick one of options and returns its index.
func (p *huhPrompter) Select(title string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	if def < 0 || def >= len(options) {
		def = 0
	}
	if p.headless.IsHeadless() {
		return def, nil
	}

	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(label, i)
	}

	selected := def
	field := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&selected)

	if err := p.run(field); err != nil {
		return 0, err
	}
	return selected, nil
}

// Input asks for a line of text. Surrounding whitespace is trimmed.
func (p *huhPrompter) Input(title, initial string) (string, error) {
	if p.headless.IsHeadless() {
		if initial == "" {
			return "", fmt.Errorf("%s: %w", title, ErrHeadlessNoDefault)
		}
		return initial, nil
	}

	value := initial
	field := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		})

	if err := p.run(field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Confirm asks a yes/no question.
func (p *huhPrompter) Confirm(title string, def bool) (bool, error) {
	if p.headless.IsHeadless() {
		return def, nil
	}

	value := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := p.run(field); err != nil {
		return false, err
	}
	return value, nil
}

// run shows a single field as its own form.
func (p *huhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(newHuhTheme(p.theme)).
		WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt: %w", err)
	}
	return nil
}

// newHuhTheme maps the cvue palette onto a huh theme.
func newHuhTheme(theme *Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme.NoColor {
		return t
	}

	primary := lipgloss.Color(theme.Colors.Primary)
	green := lipgloss.Color(theme.Colors.Success)
	red := lipgloss.Color(theme.Colors.Error)
	text := lipgloss.Color(theme.Colors.Text)
	muted := lipgloss.Color(theme.Colors.Muted)
	border := lipgloss.Color(theme.Colors.Border)

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.Color("#374151"))

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
