// Package keychain stores GitHub tokens in the OS credential store, one
// entry per alias.
//
// Entries are generic passwords with:
//   - Service: "github-cli-login-switcher" (shared by every alias)
//   - Account: the alias name (e.g. "work")
//
// On macOS the item is kept out of iCloud sync and is only readable while
// the machine is unlocked. Elsewhere the platform Secret Service or Windows
// Credential Manager is used.
package keychain

import "github.com/cockroachdb/errors"

// ServiceName is the credential store service attribute for every alias.
const ServiceName = "github-cli-login-switcher"

var (
	// ErrNotFound is returned when no token is stored for an alias.
	ErrNotFound = errors.New("token not found")
	// ErrStore is returned when the credential store itself fails.
	ErrStore = errors.New("credential store error")
	// ErrEmptyToken is returned when storing a blank token.
	ErrEmptyToken = errors.New("token is empty")
)

// Store holds one token per alias.
type Store interface {
	// Set stores token under alias, replacing any previous value.
	Set(alias, token string) error
	// Get returns the token for alias or an error matching ErrNotFound.
	Get(alias string) (string, error)
	// Delete removes alias. Deleting a missing alias is not an error.
	Delete(alias string) error
}

func notFound(alias string) error {
	return errors.Wrapf(ErrNotFound, "alias %q", alias)
}

func storeErr(err error, op, alias string) error {
	return errors.Mark(errors.Wrapf(err, "keychain %s %q", op, alias), ErrStore)
}
