//go:build integration

package keychain

import (
	"testing"

	"github.com/cockroachdb/errors"
)

// Integration tests use the real OS credential store.
// Run with: go test -tags integration ./internal/keychain/
//
// On macOS this needs an unlocked login Keychain (the first run may prompt
// for access approval); on Linux a running Secret Service.

func integrationStore() *SystemStore {
	return &SystemStore{service: "gh-token-switch.test"}
}

func cleanupIntegration(t *testing.T, s *SystemStore, aliases ...string) {
	t.Helper()
	for _, a := range aliases {
		s.Delete(a)
	}
}

func TestSystemStoreSetAndGet(t *testing.T) {
	s := integrationStore()
	name := "integration-set-get"
	defer cleanupIntegration(t, s, name)

	if err := s.Set(name, "hello-keychain"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, err := s.Get(name)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "hello-keychain" {
		t.Errorf("expected 'hello-keychain', got %q", val)
	}
}

func TestSystemStoreOverwrite(t *testing.T) {
	s := integrationStore()
	name := "integration-overwrite"
	defer cleanupIntegration(t, s, name)

	s.Set(name, "first")
	s.Set(name, "second")

	val, err := s.Get(name)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "second" {
		t.Errorf("expected 'second', got %q", val)
	}
}

func TestSystemStoreDelete(t *testing.T) {
	s := integrationStore()
	name := "integration-delete"

	s.Set(name, "to-delete")
	if err := s.Delete(name); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := s.Get(name); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(name); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}
