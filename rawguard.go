package textmode

import (
	"runtime"

	"github.com/charmbracelet/log"
)

// RawGuard holds the terminal in raw mode for as long as it is alive:
// canonical line mode, echo, signal generation, input translation, and
// output processing are all disabled on construction and restored on
// cleanup. A RawGuard is single-use: once Cleanup has run, further calls to
// Cleanup are a no-op (spec.md §3, "Guards").
//
// Go has no destructor, so RawGuard backstops a forgotten Cleanup with a
// finalizer, the same best-effort-on-every-exit-path contract spec.md §4.1
// describes for guard destruction. Callers should still call Cleanup (or
// Close) explicitly via defer; the finalizer firing is logged as a warning
// because it means that didn't happen.
type RawGuard struct {
	state   rawState
	cleaned bool
}

// NewRawGuard saves the current termios state for the given file descriptor
// and puts it into raw mode.
func NewRawGuard(fd int) (*RawGuard, error) {
	state, err := rawGuardInit(fd)
	if err != nil {
		return nil, err
	}
	g := &RawGuard{state: state}
	runtime.SetFinalizer(g, finalizeRawGuard)
	return g, nil
}

// Cleanup restores the termios state saved at construction. Calling it more
// than once is a no-op.
func (g *RawGuard) Cleanup() error {
	if g.cleaned {
		return nil
	}
	g.cleaned = true
	runtime.SetFinalizer(g, nil)
	return rawGuardRestore(g.state)
}

// Close is an alias for Cleanup, so RawGuard satisfies io.Closer for use in
// defer chains.
func (g *RawGuard) Close() error { return g.Cleanup() }

func finalizeRawGuard(g *RawGuard) {
	if g.cleaned {
		return
	}
	log.Warn("RawGuard finalized without explicit Cleanup; restoring terminal state late")
	if err := g.Cleanup(); err != nil {
		log.Warn("RawGuard cleanup from finalizer failed", "err", err)
	}
}
