package logbuf

import (
	"io"
	"testing"
)

func TestTailBasicWrite(t *testing.T) {
	tl := New(5)
	tl.Write([]byte("line 1\nline 2\nline 3\n"))

	lines := tl.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "line 1" || lines[1] != "line 2" || lines[2] != "line 3" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestTailOverflow(t *testing.T) {
	tl := New(3)
	tl.Write([]byte("a\nb\nc\nd\ne\n"))

	lines := tl.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "c" || lines[1] != "d" || lines[2] != "e" {
		t.Errorf("expected [c d e], got %v", lines)
	}
}

func TestTailPartialWrites(t *testing.T) {
	tl := New(5)
	tl.Write([]byte("hel"))
	tl.Write([]byte("lo world\r\n"))
	tl.Write([]byte("no newline"))

	lines := tl.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "hello world" {
		t.Errorf("expected 'hello world', got %q", lines[0])
	}
	if lines[1] != "no newline" {
		t.Errorf("expected trailing partial line, got %q", lines[1])
	}
}

func TestTailString(t *testing.T) {
	tl := New(4)
	io.WriteString(tl, "error: bad credentials\n\n  hint: try again  \n")

	if got, want := tl.String(), "error: bad credentials; hint: try again"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTailEmpty(t *testing.T) {
	tl := New(0)
	if got := tl.String(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	tl.Write([]byte("a\nb\n"))
	if lines := tl.Lines(); len(lines) != 1 || lines[0] != "b" {
		t.Errorf("expected [b], got %v", lines)
	}
}
