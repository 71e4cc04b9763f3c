package textmode

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"
)

// initSequence switches the output TTY to alternate screen mode: save
// cursor, enter alternate screen, clear, home cursor, show cursor (spec.md
// §6).
var initSequence = []byte("\x1b7\x1b[?47h\x1b[2J\x1b[H\x1b[?25h")

// deinitSequence leaves alternate screen mode: leave alternate screen,
// restore cursor, show cursor (spec.md §6).
var deinitSequence = []byte("\x1b[?47l\x1b8\x1b[?25h")

// ScreenGuard holds the output TTY in alternate-screen mode for as long as
// it is alive. It is single-use: after Cleanup, further Cleanup calls are a
// no-op (spec.md §3, §4.2).
type ScreenGuard struct {
	w       io.Writer
	cleaned bool
}

// NewScreenGuard writes the init sequence to w and returns a guard that
// will write the deinit sequence on Cleanup.
func NewScreenGuard(w io.Writer) (*ScreenGuard, error) {
	if _, err := w.Write(initSequence); err != nil {
		return nil, writeStdoutErr(err)
	}
	g := &ScreenGuard{w: w}
	runtime.SetFinalizer(g, finalizeScreenGuard)
	return g, nil
}

// Cleanup writes the deinit sequence, once. Calling it more than once is a
// no-op.
func (g *ScreenGuard) Cleanup() error {
	if g.cleaned {
		return nil
	}
	g.cleaned = true
	runtime.SetFinalizer(g, nil)
	if _, err := g.w.Write(deinitSequence); err != nil {
		return writeStdoutErr(err)
	}
	return nil
}

// Close is an alias for Cleanup, so ScreenGuard satisfies io.Closer.
func (g *ScreenGuard) Close() error { return g.Cleanup() }

func finalizeScreenGuard(g *ScreenGuard) {
	if g.cleaned {
		return
	}
	log.Warn("ScreenGuard finalized without explicit Cleanup; leaving alternate screen late")
	if err := g.Cleanup(); err != nil {
		log.Warn("ScreenGuard cleanup from finalizer failed", "err", err)
	}
}
