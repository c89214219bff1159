// Package ghauth reads and installs the active token of the GitHub CLI.
//
// Both operations shell out to gh. Login inherits the caller's stdout and
// stderr so any prompt or message from gh reaches the user unchanged.
package ghauth

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/benaskins/gh-token-switch/internal/logbuf"
	"github.com/cockroachdb/errors"
)

var (
	// ErrUnavailable is returned when the active token cannot be read.
	ErrUnavailable = errors.New("active token unavailable")
	// ErrInstallFailed is returned when gh refuses a token.
	ErrInstallFailed = errors.New("installing token failed")
)

// stderrTailLines is how much gh output is kept for error messages.
const stderrTailLines = 5

// Helper reads and replaces the token the GitHub CLI is using.
type Helper interface {
	ActiveToken(ctx context.Context) (string, error)
	Login(ctx context.Context, token string) error
}

// CLI drives the gh binary.
type CLI struct {
	Binary   string
	Hostname string

	// Stdout and Stderr receive gh output during Login.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a CLI helper wired to the process's stdout and stderr.
func New(binary, hostname string) *CLI {
	if binary == "" {
		binary = "gh"
	}
	if hostname == "" {
		hostname = "github.com"
	}
	return &CLI{
		Binary:   binary,
		Hostname: hostname,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// ActiveToken runs `gh auth token` and returns the trimmed token.
func (c *CLI) ActiveToken(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.Binary, "auth", "token", "--hostname", c.Hostname)
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Mark(c.describe(err, "auth token", ""), ErrUnavailable)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", errors.Wrapf(ErrUnavailable, "'%s auth token' printed nothing", c.Binary)
	}
	return token, nil
}

// Login runs `gh auth login --with-token`, feeding token on stdin.
func (c *CLI) Login(ctx context.Context, token string) error {
	tail := logbuf.New(stderrTailLines)

	cmd := exec.CommandContext(ctx, c.Binary, "auth", "login", "--hostname", c.Hostname, "--with-token")
	cmd.Stdin = strings.NewReader(token)
	cmd.Stdout = c.Stdout
	cmd.Stderr = io.MultiWriter(nonNil(c.Stderr), tail)

	if err := cmd.Run(); err != nil {
		return errors.Mark(c.describe(err, "auth login", tail.String()), ErrInstallFailed)
	}
	return nil
}

func (c *CLI) describe(err error, sub, output string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return errors.WithHint(
			errors.Wrapf(err, "running '%s %s'", c.Binary, sub),
			"is the GitHub CLI installed and on PATH? https://cli.github.com",
		)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if output == "" {
			output = strings.TrimSpace(string(exitErr.Stderr))
		}
		if output != "" {
			return errors.Newf("'%s %s' exited with code %d: %s", c.Binary, sub, exitErr.ExitCode(), output)
		}
		return errors.Newf("'%s %s' exited with code %d", c.Binary, sub, exitErr.ExitCode())
	}
	return errors.Wrapf(err, "running '%s %s'", c.Binary, sub)
}

func nonNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
