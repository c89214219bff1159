package keychain

import (
	"log/slog"

	"github.com/benaskins/gh-token-switch/internal/alias"
	"github.com/benaskins/gh-token-switch/internal/audit"
)

// AuditedStore wraps a Store and records every operation in the audit log.
type AuditedStore struct {
	inner Store
	audit *audit.Logger
}

// NewAuditedStore wraps an existing store with audit logging.
func NewAuditedStore(inner Store, auditLog *audit.Logger) *AuditedStore {
	return &AuditedStore{inner: inner, audit: auditLog}
}

func (s *AuditedStore) Set(name, token string) error {
	err := s.inner.Set(name, token)
	entry := audit.Entry{Action: audit.ActionTokenWrite, Alias: name}
	if err == nil {
		entry.Fingerprint = alias.Fingerprint(token)
	}
	s.log(entry, err)
	return err
}

func (s *AuditedStore) Get(name string) (string, error) {
	token, err := s.inner.Get(name)
	entry := audit.Entry{Action: audit.ActionTokenRead, Alias: name}
	if err == nil {
		entry.Fingerprint = alias.Fingerprint(token)
	}
	s.log(entry, err)
	return token, err
}

func (s *AuditedStore) Delete(name string) error {
	err := s.inner.Delete(name)
	s.log(audit.Entry{Action: audit.ActionTokenDelete, Alias: name}, err)
	return err
}

// log is best-effort; a broken audit log never blocks a token operation.
func (s *AuditedStore) log(entry audit.Entry, opErr error) {
	if opErr != nil {
		entry.Error = opErr.Error()
	}
	if err := s.audit.Log(entry); err != nil {
		slog.Debug("audit log write failed", "action", entry.Action, "alias", entry.Alias, "error", err)
	}
}
