package textmode

import (
	"bytes"
	"errors"
	"testing"
)

func TestScreenGuardInitAndDeinitSequence(t *testing.T) {
	var buf bytes.Buffer
	g, err := NewScreenGuard(&buf)
	if err != nil {
		t.Fatalf("NewScreenGuard() error: %v", err)
	}
	wantInit := "\x1b7\x1b[?47h\x1b[2J\x1b[H\x1b[?25h"
	if buf.String() != wantInit {
		t.Fatalf("init sequence = %q, want %q", buf.String(), wantInit)
	}

	if err := g.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error: %v", err)
	}
	want := wantInit + "\x1b[?47l\x1b8\x1b[?25h"
	if buf.String() != want {
		t.Fatalf("after Cleanup() = %q, want %q", buf.String(), want)
	}
}

func TestScreenGuardCleanupIdempotent(t *testing.T) {
	var buf bytes.Buffer
	g, err := NewScreenGuard(&buf)
	if err != nil {
		t.Fatalf("NewScreenGuard() error: %v", err)
	}
	if err := g.Cleanup(); err != nil {
		t.Fatalf("first Cleanup() error: %v", err)
	}
	after := buf.String()
	if err := g.Cleanup(); err != nil {
		t.Fatalf("second Cleanup() error: %v", err)
	}
	if buf.String() != after {
		t.Fatal("second Cleanup() wrote the deinit sequence again")
	}
}

func TestScreenGuardCloseAliasesCleanup(t *testing.T) {
	var buf bytes.Buffer
	g, _ := NewScreenGuard(&buf)
	if err := g.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !g.cleaned {
		t.Fatal("Close() should mark the guard cleaned")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestScreenGuardInitWriteError(t *testing.T) {
	if _, err := NewScreenGuard(failingWriter{}); err == nil {
		t.Fatal("NewScreenGuard() with a failing writer should return an error")
	}
}
