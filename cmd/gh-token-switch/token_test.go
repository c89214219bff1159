package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipeWith(t *testing.T, content string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	go func() {
		io.WriteString(w, content)
		w.Close()
	}()
	return r
}

func TestReadTokenFromPipe(t *testing.T) {
	token, err := readToken(pipeWith(t, "  ghp_piped\n"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "ghp_piped", token)
}

func TestReadTokenEmptyPipe(t *testing.T) {
	token, err := readToken(pipeWith(t, ""), io.Discard)
	require.NoError(t, err)
	assert.Empty(t, token)
}
