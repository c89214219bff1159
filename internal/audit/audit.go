// Package audit records token operations in an append-only log.
//
// Every keychain access and every switch is written to audit.log next to
// the config file as newline-delimited JSON. Tokens are never logged; the
// fingerprint identifies which token was involved.
package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// Action describes what happened.
type Action string

const (
	ActionTokenRead   Action = "token_read"
	ActionTokenWrite  Action = "token_write"
	ActionTokenDelete Action = "token_delete"
	ActionSwitch      Action = "switch"
	ActionRename      Action = "rename"
)

// Trigger values for switch entries.
const (
	TriggerExplicit = "explicit"
	TriggerCycle    = "cycle"
	TriggerPick     = "pick"
)

// Entry is a single audit log record.
type Entry struct {
	Timestamp   time.Time `json:"ts"`
	Action      Action    `json:"action"`
	Alias       string    `json:"alias"`
	From        string    `json:"from,omitempty"` // previous alias on switch or rename
	Fingerprint string    `json:"fingerprint,omitempty"`
	Trigger     string    `json:"trigger,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// Logger writes audit entries to an append-only file. A nil *Logger
// discards everything.
type Logger struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewLogger creates or opens an audit log file for appending.
func NewLogger(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, "creating audit log dir")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "opening audit log")
	}
	return &Logger{file: f, path: path}, nil
}

// Log writes an audit entry.
func (l *Logger) Log(entry Entry) error {
	if l == nil {
		return nil
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "marshaling audit entry")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.file.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "writing audit entry")
	}
	return nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close closes the audit log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	return l.file.Close()
}
