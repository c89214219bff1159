package main

import (
	"context"
	"strings"

	"github.com/benaskins/gh-token-switch/internal/alias"
	"github.com/benaskins/gh-token-switch/internal/ghauth"
	"github.com/benaskins/gh-token-switch/internal/keychain"
	"github.com/benaskins/gh-token-switch/internal/picker"
	"github.com/cockroachdb/errors"
)

const (
	ExitSuccess  = 0
	ExitGeneral  = 1
	ExitUsage    = 2
	ExitAuth     = 3
	ExitNotFound = 4
	ExitCanceled = 130
)

// ExitCode maps command errors to stable process exit codes for scripts.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, picker.ErrCanceled):
		return ExitCanceled
	case isUsageError(err):
		return ExitUsage
	case errors.Is(err, ghauth.ErrInstallFailed), errors.Is(err, ghauth.ErrUnavailable):
		return ExitAuth
	case errors.Is(err, keychain.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneral
	}
}

func isUsageError(err error) bool {
	if errors.IsAny(err,
		alias.ErrInsufficientAliases,
		alias.ErrIdenticalNames,
		alias.ErrAliasExists,
		alias.ErrEmptyName,
		keychain.ErrEmptyToken,
	) {
		return true
	}

	// cobra argument and flag errors are plain strings
	msg := strings.ToLower(err.Error())
	for _, f := range []string{
		"unknown flag",
		"unknown command",
		"unknown shorthand flag",
		"accepts ",
		"requires at least",
		"flag needs an argument",
	} {
		if strings.Contains(msg, f) {
			return true
		}
	}
	return false
}
