// Package switcher runs one gh-token-switch command against the alias
// directory and its collaborators.
//
// Every operation follows the same shape: validate, perform the external
// steps (keychain, gh), and only when all of them succeeded update the
// in-memory config and save it exactly once. A failure anywhere leaves the
// file on disk untouched.
package switcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/benaskins/gh-token-switch/internal/alias"
	"github.com/benaskins/gh-token-switch/internal/audit"
	"github.com/benaskins/gh-token-switch/internal/config"
	"github.com/benaskins/gh-token-switch/internal/ghauth"
	"github.com/benaskins/gh-token-switch/internal/keychain"
	"github.com/benaskins/gh-token-switch/internal/notify"
	"github.com/cockroachdb/errors"
)

// SaveFunc persists the config.
type SaveFunc func(*config.Config) error

// Options wires the collaborators of a Service. Store, Helper and Save are
// required.
type Options struct {
	Store    keychain.Store
	Helper   ghauth.Helper
	Save     SaveFunc
	Notifier notify.Notifier
	Audit    *audit.Logger
	// TTYPresent defaults to notify.TTYPresent.
	TTYPresent func() bool
}

// Service executes commands for a single invocation.
type Service struct {
	cfg      *config.Config
	store    keychain.Store
	helper   ghauth.Helper
	save     SaveFunc
	notifier notify.Notifier
	audit    *audit.Logger
	tty      func() bool
}

// New creates a Service operating on cfg.
func New(cfg *config.Config, opts Options) *Service {
	tty := opts.TTYPresent
	if tty == nil {
		tty = notify.TTYPresent
	}
	return &Service{
		cfg:      cfg,
		store:    opts.Store,
		helper:   opts.Helper,
		save:     opts.Save,
		notifier: opts.Notifier,
		audit:    opts.Audit,
		tty:      tty,
	}
}

// Config returns the config the service operates on.
func (s *Service) Config() *config.Config {
	return s.cfg
}

// Set stores token under name and records its fingerprint.
func (s *Service) Set(name, token string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return alias.ErrEmptyName
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return keychain.ErrEmptyToken
	}

	if err := s.store.Set(name, token); err != nil {
		return errors.Wrapf(err, "storing token for alias %q", name)
	}

	s.cfg.Record(name, token)
	return s.persist()
}

// Result describes a completed switch.
type Result struct {
	Alias    string
	Previous string
	Implicit bool
}

// Use switches to name, or cycles to the next alias when name is empty.
func (s *Service) Use(ctx context.Context, name string) (Result, error) {
	if name == "" {
		return s.Cycle(ctx)
	}
	return s.SwitchTo(ctx, name, audit.TriggerExplicit)
}

// Cycle activates the alias after the currently active one.
func (s *Service) Cycle(ctx context.Context) (Result, error) {
	current := s.Current(ctx)
	next, err := alias.ChooseNext(s.cfg.Aliases, current)
	if err != nil {
		return Result{}, err
	}
	slog.Debug("cycling", "from", current, "to", next)
	return s.switchTo(ctx, next, current, audit.TriggerCycle)
}

// SwitchTo activates name. trigger is recorded in the audit log; only
// audit.TriggerCycle counts as an implicit switch for notifications.
func (s *Service) SwitchTo(ctx context.Context, name, trigger string) (Result, error) {
	return s.switchTo(ctx, name, s.Current(ctx), trigger)
}

func (s *Service) switchTo(ctx context.Context, name, previous, trigger string) (Result, error) {
	res := Result{Alias: name, Previous: previous, Implicit: trigger == audit.TriggerCycle}

	token, err := s.store.Get(name)
	if err != nil {
		return res, errors.Wrapf(err, "no token found for alias %q", name)
	}

	if err := s.helper.Login(ctx, token); err != nil {
		s.record(audit.Entry{Action: audit.ActionSwitch, Alias: name, From: previous, Trigger: trigger}, err)
		s.notify(ctx, res.Implicit, "GitHub token switch failed", "Failed switching to: "+name)
		return res, errors.Wrapf(err, "switching to alias %q", name)
	}

	s.cfg.Record(name, token)
	s.cfg.LastUsed = name
	if err := s.persist(); err != nil {
		return res, err
	}

	s.record(audit.Entry{
		Action:      audit.ActionSwitch,
		Alias:       name,
		From:        previous,
		Fingerprint: s.cfg.Fingerprints[name],
		Trigger:     trigger,
	}, nil)
	s.notify(ctx, res.Implicit, "GitHub token switched", "Switched GitHub token: "+name)
	return res, nil
}

// Current returns the alias whose token gh is using, or "" when gh has no
// token or the token is not one this tool stored.
func (s *Service) Current(ctx context.Context) string {
	token, err := s.helper.ActiveToken(ctx)
	if err != nil {
		slog.Debug("reading active token", "error", err)
		return ""
	}
	name, _ := s.cfg.Resolve(token)
	return name
}

// Entry is one line of List output.
type Entry struct {
	Name     string
	Tracked  bool // a fingerprint is recorded
	Active   bool
	LastUsed bool
}

// String renders an entry the way `list` prints it without styling.
func (e Entry) String() string {
	marker := " "
	if e.Active {
		marker = "*"
	}
	return fmt.Sprintf("%s %s", marker, e.Name)
}

// List returns the aliases in cycle order.
func (s *Service) List(ctx context.Context) []Entry {
	var current string
	if len(s.cfg.Aliases) > 0 {
		current = s.Current(ctx)
	}

	entries := make([]Entry, 0, len(s.cfg.Aliases))
	for _, a := range s.cfg.Aliases {
		_, tracked := s.cfg.Fingerprints[a]
		entries = append(entries, Entry{
			Name:     a,
			Tracked:  tracked,
			Active:   a == current,
			LastUsed: a == s.cfg.LastUsed,
		})
	}
	return entries
}

// Rename moves the token stored under alias from to alias to and updates
// the directory to match.
func (s *Service) Rename(from, to string) error {
	if err := s.cfg.CheckRename(from, to); err != nil {
		return err
	}

	token, err := s.store.Get(from)
	if err != nil {
		return errors.Wrapf(err, "no token found for alias %q", from)
	}
	if err := s.store.Set(to, token); err != nil {
		return errors.Wrapf(err, "storing token for alias %q", to)
	}
	if err := s.store.Delete(from); err != nil {
		return errors.Wrapf(err, "deleting old alias %q", from)
	}

	if err := s.cfg.Rename(from, to); err != nil {
		return err
	}
	if err := s.persist(); err != nil {
		return err
	}

	s.record(audit.Entry{Action: audit.ActionRename, Alias: to, From: from, Fingerprint: s.cfg.Fingerprints[to]}, nil)
	return nil
}

// Delete forgets name. A keychain failure is logged and ignored so that a
// stale or missing entry never blocks cleaning up the directory.
func (s *Service) Delete(name string) error {
	if err := s.store.Delete(name); err != nil {
		slog.Debug("ignoring keychain delete failure", "alias", name, "error", err)
	}
	s.cfg.Delete(name)
	return s.persist()
}

func (s *Service) persist() error {
	if err := s.save(s.cfg); err != nil {
		return errors.Wrap(err, "saving alias directory")
	}
	return nil
}

func (s *Service) notify(ctx context.Context, implicit bool, title, body string) {
	if notify.Maybe(ctx, s.notifier, s.cfg.Notifications, implicit, s.tty(), title, body) {
		slog.Debug("notification sent", "title", title)
	}
}

func (s *Service) record(entry audit.Entry, opErr error) {
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	if err := s.audit.Log(entry); err != nil {
		slog.Debug("audit log write failed", "action", entry.Action, "error", err)
	}
}
