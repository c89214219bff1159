//go:build !darwin

package keychain

import (
	"github.com/cockroachdb/errors"
	"github.com/zalando/go-keyring"
)

// SystemStore keeps tokens in the Secret Service (Linux, BSD) or the
// Windows Credential Manager.
type SystemStore struct {
	service string
}

// NewSystemStore creates a keyring-backed token store.
func NewSystemStore() *SystemStore {
	return &SystemStore{service: ServiceName}
}

func (s *SystemStore) Set(alias, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := keyring.Set(s.service, alias, token); err != nil {
		return storeErr(err, "set", alias)
	}
	return nil
}

func (s *SystemStore) Get(alias string) (string, error) {
	token, err := keyring.Get(s.service, alias)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", notFound(alias)
		}
		return "", storeErr(err, "get", alias)
	}
	if token == "" {
		return "", notFound(alias)
	}
	return token, nil
}

func (s *SystemStore) Delete(alias string) error {
	err := keyring.Delete(s.service, alias)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return storeErr(err, "delete", alias)
	}
	return nil
}
