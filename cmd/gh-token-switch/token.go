package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// readToken prompts for a token without echo when in is a terminal, and
// otherwise reads all of in (e.g. `gh auth token | gh-token-switch set work`).
func readToken(in *os.File, prompt io.Writer) (string, error) {
	if term.IsTerminal(int(in.Fd())) {
		fmt.Fprint(prompt, "GitHub token: ")
		b, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", errors.Wrap(err, "reading token")
		}
		return strings.TrimSpace(string(b)), nil
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "reading token from stdin")
	}
	return strings.TrimSpace(string(b)), nil
}
