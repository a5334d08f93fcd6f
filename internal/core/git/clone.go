package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Cloner clones a repository URL into a destination directory.
type Cloner interface {
	Clone(ctx context.Context, url, dest string) error
}

// Compile-time interface compliance check.
var _ Cloner = (*SystemCloner)(nil)

// SystemCloner implements Cloner using the system git binary.
type SystemCloner struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// NewCloner creates a Cloner that runs "git clone" and streams its output
// to stdout and stderr. Nil writers discard output.
func NewCloner(stdout, stderr io.Writer) *SystemCloner {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &SystemCloner{
		stdout: stdout,
		stderr: stderr,
		logger: slog.Default().With("module", "git"),
	}
}

// Clone runs "git clone <url> <dest>". The exit code is the only success
// signal; a non-zero exit is returned as *CloneError. No timeout is
// applied beyond ctx.
func (c *SystemCloner) Clone(ctx context.Context, url, dest string) error {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	c.logger.Debug("cloning repository", "dest", dest)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, gitPath, "clone", url, dest)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Stdout = c.stdout
	cmd.Stderr = io.MultiWriter(c.stderr, &stderr)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &CloneError{Code: exitErr.ExitCode(), Stderr: lastLine(stderr.String())}
		}
		return fmt.Errorf("run git clone: %w", err)
	}

	c.logger.Debug("clone complete", "dest", dest)
	return nil
}

// lastLine returns the last non-empty line of s, which for git is the fatal message.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
