package textmode

import "testing"

func TestInputBufferGetcConsume(t *testing.T) {
	var b inputBuffer
	b.reset([]byte("abc"))

	for _, want := range []byte("abc") {
		c, ok := b.getc()
		if !ok || c != want {
			t.Fatalf("getc() = (%c, %v), want (%c, true)", c, ok, want)
		}
	}
	if !b.empty() {
		t.Fatal("buffer should be empty after consuming all bytes")
	}
	if _, ok := b.getc(); ok {
		t.Fatal("getc() on empty buffer should report ok=false")
	}
}

func TestInputBufferUngetcFastPath(t *testing.T) {
	var b inputBuffer
	b.reset([]byte("abc"))
	c, _ := b.getc()
	b.ungetc(c)
	if string(b.unread()) != "abc" {
		t.Fatalf("unread() = %q, want %q", b.unread(), "abc")
	}
}

func TestInputBufferUngetcAtStart(t *testing.T) {
	var b inputBuffer
	b.reset([]byte("bc"))
	b.ungetc('a')
	if string(b.unread()) != "abc" {
		t.Fatalf("unread() = %q, want %q", b.unread(), "abc")
	}
}

func TestInputBufferAppendPreservesPos(t *testing.T) {
	var b inputBuffer
	b.reset([]byte("ab"))
	b.getc()
	b.append([]byte("cd"))
	if string(b.unread()) != "bcd" {
		t.Fatalf("unread() = %q, want %q", b.unread(), "bcd")
	}
}

func TestInputBufferConsume(t *testing.T) {
	var b inputBuffer
	b.reset([]byte("abcdef"))
	b.consume(3)
	if string(b.unread()) != "def" {
		t.Fatalf("unread() = %q, want %q", b.unread(), "def")
	}
}
