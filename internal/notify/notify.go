// Package notify decides whether a switch deserves a desktop notification
// and delivers it on a best-effort basis.
package notify

import (
	"context"
	"log/slog"
	"os"

	"github.com/benaskins/gh-token-switch/internal/config"
	"golang.org/x/term"
)

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// ShouldNotify applies the notification settings to one switch event.
// implicit is true when the alias was chosen by cycling; ttyPresent is true
// when any standard stream is attached to a terminal.
func ShouldNotify(cfg config.Notifications, implicit, ttyPresent bool) bool {
	if !cfg.Enabled {
		return false
	}
	if cfg.OnlyOnImplicitCycle && !implicit {
		return false
	}
	if cfg.OnlyWhenNoTTY && ttyPresent {
		return false
	}
	return true
}

// TTYPresent reports whether stdin, stdout or stderr is a terminal.
func TTYPresent() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		if term.IsTerminal(int(f.Fd())) {
			return true
		}
	}
	return false
}

// Maybe sends a notification if ShouldNotify allows it. Delivery errors are
// logged at debug level and otherwise dropped.
func Maybe(ctx context.Context, n Notifier, cfg config.Notifications, implicit, ttyPresent bool, title, body string) bool {
	if n == nil || !ShouldNotify(cfg, implicit, ttyPresent) {
		return false
	}
	if err := n.Notify(ctx, title, body); err != nil {
		slog.Debug("notification failed", "title", title, "error", err)
		return false
	}
	return true
}
