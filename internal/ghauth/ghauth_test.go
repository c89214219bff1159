//go:build !windows

package ghauth

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGH writes a shell script standing in for gh. `auth token` prints the
// contents of a state file; `auth login` stores stdin there unless the
// token is "bad".
func fakeGH(t *testing.T) (binary, state string) {
	t.Helper()
	dir := t.TempDir()
	state = filepath.Join(dir, "token")
	binary = filepath.Join(dir, "gh")

	script := fmt.Sprintf(`#!/bin/sh
state=%q
case "$1 $2" in
"auth token")
	if [ -s "$state" ]; then cat "$state"; echo; exit 0; fi
	echo "no oauth token found for $4" >&2
	exit 1
	;;
"auth login")
	token=$(cat)
	if [ "$token" = "bad" ]; then
		echo "error validating token: HTTP 401" >&2
		exit 1
	fi
	printf '%%s' "$token" > "$state"
	echo "logged in to $4"
	;;
*)
	echo "unexpected args: $*" >&2
	exit 2
	;;
esac
`, state)
	require.NoError(t, os.WriteFile(binary, []byte(script), 0755))
	return binary, state
}

func newTestCLI(binary string) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	c := New(binary, "github.example.com")
	c.Stdout = &stdout
	c.Stderr = &stderr
	return c, &stdout, &stderr
}

func TestActiveTokenUnavailable(t *testing.T) {
	binary, _ := fakeGH(t)
	c, _, _ := newTestCLI(binary)

	_, err := c.ActiveToken(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "no oauth token found for github.example.com")
}

func TestLoginThenActiveToken(t *testing.T) {
	binary, _ := fakeGH(t)
	c, stdout, _ := newTestCLI(binary)
	ctx := context.Background()

	require.NoError(t, c.Login(ctx, "ghp_work"))
	assert.Contains(t, stdout.String(), "logged in to github.example.com")

	token, err := c.ActiveToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ghp_work", token)
}

func TestLoginFailureCarriesStderr(t *testing.T) {
	binary, state := fakeGH(t)
	c, _, stderr := newTestCLI(binary)

	err := c.Login(context.Background(), "bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInstallFailed))
	assert.Contains(t, err.Error(), "exited with code 1")
	assert.Contains(t, err.Error(), "HTTP 401")

	// The user saw gh's own message too.
	assert.Contains(t, stderr.String(), "error validating token")

	_, statErr := os.Stat(state)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMissingBinary(t *testing.T) {
	c, _, _ := newTestCLI("gh-token-switch-no-such-binary")
	ctx := context.Background()

	_, err := c.ActiveToken(ctx)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.NotEmpty(t, errors.GetAllHints(err))

	err = c.Login(ctx, "ghp_x")
	assert.True(t, errors.Is(err, ErrInstallFailed))
}

func TestNewDefaults(t *testing.T) {
	c := New("", "")
	assert.Equal(t, "gh", c.Binary)
	assert.Equal(t, "github.com", c.Hostname)
	assert.Equal(t, os.Stdout, c.Stdout)
}
