package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/benaskins/gh-token-switch/internal/alias"
	"github.com/benaskins/gh-token-switch/internal/config"
	"github.com/benaskins/gh-token-switch/internal/ghauth"
	"github.com/benaskins/gh-token-switch/internal/keychain"
	"github.com/benaskins/gh-token-switch/internal/picker"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	_, cycleErr := alias.ChooseNext([]string{"work"}, "")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"canceled", fmt.Errorf("wrapped: %w", context.Canceled), ExitCanceled},
		{"picker canceled", picker.ErrCanceled, ExitCanceled},
		{"insufficient aliases", cycleErr, ExitUsage},
		{"rename exists", errors.Wrapf(alias.ErrAliasExists, "alias %q", "work"), ExitUsage},
		{"identical", alias.ErrIdenticalNames, ExitUsage},
		{"empty token", keychain.ErrEmptyToken, ExitUsage},
		{"cobra args", errors.New("accepts 1 arg(s), received 0"), ExitUsage},
		{"cobra flag", errors.New("unknown flag: --nope"), ExitUsage},
		{"install failed", errors.Wrap(errors.Mark(errors.New("exit 1"), ghauth.ErrInstallFailed), "switching"), ExitAuth},
		{"unavailable", ghauth.ErrUnavailable, ExitAuth},
		{"not found", errors.Wrapf(keychain.ErrNotFound, "alias %q", "ghost"), ExitNotFound},
		{"save", errors.Mark(errors.New("disk full"), config.ErrSave), ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestPrintErrorIncludesHints(t *testing.T) {
	_, err := alias.ChooseNext(nil, "")

	var buf bytes.Buffer
	printError(&buf, err)

	out := buf.String()
	assert.Contains(t, out, "error: need at least 2 aliases to cycle")
	assert.Contains(t, out, "hint: add more with 'set <alias>'")
}
