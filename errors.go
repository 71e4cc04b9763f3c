package textmode

import (
	"errors"
	"fmt"
)

// Error is the sentinel error category for a failure returned by this
// package. Use errors.Is against ErrReadStdin, ErrWriteStdout, or
// ErrSetTerminalMode to classify a returned error without string matching.
type Error struct {
	kind  errKind
	cause error
}

type errKind int

const (
	kindReadStdin errKind = iota
	kindWriteStdout
	kindSetTerminalMode
)

// Sentinel values for errors.Is comparisons. These never carry a cause
// themselves; wrap one of them with fmt.Errorf("...: %w", ErrReadStdin) is
// not how this package builds errors — use errors.Is(err, ErrReadStdin)
// against the value returned by a package function instead.
var (
	ErrReadStdin       = &Error{kind: kindReadStdin}
	ErrWriteStdout     = &Error{kind: kindWriteStdout}
	ErrSetTerminalMode = &Error{kind: kindSetTerminalMode}
)

func (e *Error) Error() string {
	switch e.kind {
	case kindReadStdin:
		return fmt.Sprintf("error reading from stdin: %v", e.cause)
	case kindWriteStdout:
		return fmt.Sprintf("error writing to stdout: %v", e.cause)
	case kindSetTerminalMode:
		return fmt.Sprintf("error setting terminal mode: %v", e.cause)
	default:
		return "textmode: unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the sentinel for this error's kind, so that
// errors.Is(err, ErrReadStdin) works regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

// errWindowsUnsupported is the cause wrapped into ErrSetTerminalMode on
// platforms where raw-mode terminal control is not yet implemented.
var errWindowsUnsupported = errors.New("windows terminal mode is not yet implemented")

func readStdinErr(cause error) error       { return &Error{kind: kindReadStdin, cause: cause} }
func writeStdoutErr(cause error) error     { return &Error{kind: kindWriteStdout, cause: cause} }
func setTerminalModeErr(cause error) error { return &Error{kind: kindSetTerminalMode, cause: cause} }
