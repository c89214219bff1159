//go:build darwin

package keychain

import (
	"fmt"

	"github.com/cockroachdb/errors"
	gokeychain "github.com/keybase/go-keychain"
)

// SystemStore keeps tokens in the macOS login Keychain.
type SystemStore struct {
	service string
}

// NewSystemStore creates a Keychain-backed token store.
func NewSystemStore() *SystemStore {
	return &SystemStore{service: ServiceName}
}

// Set stores a token in the Keychain. Overwrites if it already exists.
func (s *SystemStore) Set(alias, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	// update = delete + add
	_ = s.Delete(alias)

	item := gokeychain.NewGenericPassword(
		s.service,
		alias,
		fmt.Sprintf("gh-token-switch: %s", alias),
		[]byte(token),
		"",
	)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	if err := gokeychain.AddItem(item); err != nil {
		return storeErr(err, "add", alias)
	}
	return nil
}

// Get retrieves a token from the Keychain.
func (s *SystemStore) Get(alias string) (string, error) {
	data, err := gokeychain.GetGenericPassword(s.service, alias, "", "")
	if err != nil {
		if errors.Is(err, gokeychain.ErrorItemNotFound) {
			return "", notFound(alias)
		}
		return "", storeErr(err, "get", alias)
	}
	if len(data) == 0 {
		return "", notFound(alias)
	}
	return string(data), nil
}

// Delete removes a token from the Keychain.
func (s *SystemStore) Delete(alias string) error {
	err := gokeychain.DeleteGenericPasswordItem(s.service, alias)
	if err != nil && !errors.Is(err, gokeychain.ErrorItemNotFound) {
		return storeErr(err, "delete", alias)
	}
	return nil
}
