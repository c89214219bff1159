package notify

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Desktop shows notifications with osascript on macOS and notify-send on
// Linux. Other platforms get a no-op.
type Desktop struct {
	goos string
}

// NewDesktop returns a notifier for the running platform.
func NewDesktop() *Desktop {
	return &Desktop{goos: runtime.GOOS}
}

func (d *Desktop) Notify(ctx context.Context, title, body string) error {
	name, args := d.command(title, body)
	if name == "" {
		return nil
	}
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "%s: %s", name, strings.TrimSpace(string(out)))
	}
	return nil
}

func (d *Desktop) command(title, body string) (string, []string) {
	switch d.goos {
	case "darwin":
		script := `display notification "` + escapeAppleScript(body) +
			`" with title "` + escapeAppleScript(title) + `"`
		return "osascript", []string{"-e", script}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "notify-send", []string{title, body}
	default:
		return "", nil
	}
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
