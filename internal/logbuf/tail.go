// Package logbuf keeps the last few lines written by a subprocess so they
// can be attached to an error after the process exits.
package logbuf

import (
	"bytes"
	"strings"
	"sync"
)

// Tail is an io.Writer that remembers the last N complete lines written to
// it, plus any trailing partial line.
type Tail struct {
	mu      sync.Mutex
	max     int
	lines   []string
	partial bytes.Buffer
}

// New creates a Tail that keeps at most n lines. n < 1 is treated as 1.
func New(n int) *Tail {
	if n < 1 {
		n = 1
	}
	return &Tail{max: n}
}

// Write implements io.Writer. It never fails.
func (t *Tail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.partial.Write(p)
	for {
		line, err := t.partial.ReadString('\n')
		if err != nil {
			// incomplete line, keep it for the next write
			t.partial.Reset()
			t.partial.WriteString(line)
			break
		}
		t.push(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

func (t *Tail) push(line string) {
	if len(t.lines) == t.max {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:t.max-1]
	}
	t.lines = append(t.lines, line)
}

// Lines returns the remembered lines, oldest first. A trailing partial line
// is included.
func (t *Tail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.lines), len(t.lines)+1)
	copy(out, t.lines)
	if t.partial.Len() > 0 {
		out = append(out, t.partial.String())
	}
	return out
}

// String joins the non-blank remembered lines with "; ", suitable for an
// error message.
func (t *Tail) String() string {
	var parts []string
	for _, l := range t.Lines() {
		if s := strings.TrimSpace(l); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}
