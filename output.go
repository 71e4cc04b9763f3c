package textmode

import (
	"io"

	"github.com/arcedge/textmode/internal/vtscreen"
)

// OutputOption configures an Output at construction time.
type OutputOption func(*outputConfig)

type outputConfig struct {
	rows, cols  int
	enterScreen bool
}

// WithSize overrides the initial row/column count instead of querying the
// controlling TTY.
func WithSize(rows, cols int) OutputOption {
	return func(c *outputConfig) { c.rows, c.cols = rows, cols }
}

// Output manages drawing to an output byte sink via a double-buffered
// screen diff: callers mutate the in-memory next screen with the drawing
// methods below, then call Refresh to compute and send the minimal byte
// sequence that brings the real terminal in line with it.
type Output struct {
	w      io.Writer
	screen *ScreenGuard

	cur  *vtscreen.Parser
	next *vtscreen.Parser
}

// New creates an Output that writes to w, acquiring a ScreenGuard (entering
// alternate-screen mode) as part of construction.
func New(w io.Writer, opts ...OutputOption) (*Output, error) {
	o := newWithoutScreen(w, opts...)
	guard, err := NewScreenGuard(w)
	if err != nil {
		return nil, err
	}
	o.screen = guard
	return o, nil
}

// NewWithoutScreen creates an Output without entering alternate-screen
// mode, for embedding inside a larger program that manages its own
// ScreenGuard.
func NewWithoutScreen(w io.Writer, opts ...OutputOption) *Output {
	return newWithoutScreen(w, opts...)
}

func newWithoutScreen(w io.Writer, opts ...OutputOption) *Output {
	cfg := outputConfig{}
	cfg.rows, cfg.cols = terminalSize()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Output{
		w:    w,
		cur:  vtscreen.NewParser(cfg.rows, cfg.cols),
		next: vtscreen.NewParser(cfg.rows, cfg.cols),
	}
}

// TakeScreenGuard detaches this Output's ScreenGuard, if any, so its
// lifetime can be managed independently. The second return value is false
// if this Output never held one (constructed via NewWithoutScreen) or it
// was already taken.
func (o *Output) TakeScreenGuard() (*ScreenGuard, bool) {
	g := o.screen
	o.screen = nil
	return g, g != nil
}

// CursorPosition returns where the in-memory next screen's cursor
// currently is.
func (o *Output) CursorPosition() (row, col int) {
	return o.next.Screen().CursorPosition()
}

// Screen returns a read-only view of the in-memory next screen.
func (o *Output) Screen() *vtscreen.Screen { return o.next.Screen() }

// Write feeds arbitrary bytes into the next screen; they may contain their
// own escape sequences.
func (o *Output) Write(buf []byte) { o.next.Process(buf) }

// WriteString feeds UTF-8 text into the next screen.
func (o *Output) WriteString(s string) { o.next.Process([]byte(s)) }

// MoveTo positions the next screen's cursor at the given 0-indexed row and
// column.
func (o *Output) MoveTo(row, col int) {
	o.next.Write(append([]byte("\x1b["), cursorMoveParams(row, col)...))
}

func cursorMoveParams(row, col int) []byte {
	buf := appendUint(nil, uint(row+1))
	buf = append(buf, ';')
	buf = appendUint(buf, uint(col+1))
	buf = append(buf, 'H')
	return buf
}

// MoveRelative moves the cursor by dr rows and dc columns, emitting the
// appropriate directional CSI sequences for each nonzero delta.
func (o *Output) MoveRelative(dr, dc int) {
	if dr < 0 {
		o.next.Write(relMove(-dr, 'A'))
	} else if dr > 0 {
		o.next.Write(relMove(dr, 'B'))
	}
	if dc > 0 {
		o.next.Write(relMove(dc, 'C'))
	} else if dc < 0 {
		o.next.Write(relMove(-dc, 'D'))
	}
}

func relMove(n int, dir byte) []byte {
	buf := append([]byte("\x1b["), appendUint(nil, uint(n))...)
	return append(buf, dir)
}

// Clear erases the entire next screen.
func (o *Output) Clear() { o.next.Write([]byte("\x1b[2J")) }

// ClearLine erases from the cursor to the end of the current line.
func (o *Output) ClearLine() { o.next.Write([]byte("\x1b[K")) }

// ResetAttributes clears all SGR attributes back to their defaults.
func (o *Output) ResetAttributes() { o.next.Write([]byte("\x1b[m")) }

// SetFGColor sets the foreground color for subsequent writes.
func (o *Output) SetFGColor(c vtscreen.Color) {
	buf := append([]byte("\x1b["), c.AppendSGRFG(nil)...)
	o.next.Write(append(buf, 'm'))
}

// SetBGColor sets the background color for subsequent writes.
func (o *Output) SetBGColor(c vtscreen.Color) {
	buf := append([]byte("\x1b["), c.AppendSGRBG(nil)...)
	o.next.Write(append(buf, 'm'))
}

// SetBold toggles the bold attribute.
func (o *Output) SetBold(v bool) { o.next.Write(sgrToggle(v, 1, 22)) }

// SetItalic toggles the italic attribute.
func (o *Output) SetItalic(v bool) { o.next.Write(sgrToggle(v, 3, 23)) }

// SetUnderline toggles the underline attribute.
func (o *Output) SetUnderline(v bool) { o.next.Write(sgrToggle(v, 4, 24)) }

// SetInverse toggles the inverse-video attribute.
func (o *Output) SetInverse(v bool) { o.next.Write(sgrToggle(v, 7, 27)) }

func sgrToggle(v bool, on, off int) []byte {
	n := off
	if v {
		n = on
	}
	return append(append([]byte("\x1b["), appendUint(nil, uint(n))...), 'm')
}

// SetSize resizes both the cur and next screens.
func (o *Output) SetSize(rows, cols int) {
	o.cur.SetSize(rows, cols)
	o.next.SetSize(rows, cols)
}

// Refresh computes the diff from cur to next, writes it to the output
// sink, and folds it back into cur. If the write fails, cur is left
// untouched so a later Refresh re-sends the same diff.
func (o *Output) Refresh() error {
	diff := o.next.Screen().StateDiff(o.cur.Screen())
	if len(diff) == 0 {
		return nil
	}
	if _, err := o.w.Write(diff); err != nil {
		return writeStdoutErr(err)
	}
	o.cur.Process(diff)
	return nil
}

// HardRefresh writes a complete redraw of next and folds it into cur,
// rather than relying on the diff against cur's assumed state. Useful for
// recovery once the terminal's real state is unknown, e.g. after a resize.
func (o *Output) HardRefresh() error {
	contents := o.next.Screen().StateFormatted()
	if _, err := o.w.Write(contents); err != nil {
		return writeStdoutErr(err)
	}
	o.cur.Process(contents)
	return nil
}

// Close releases the ScreenGuard this Output holds, if any.
func (o *Output) Close() error {
	if o.screen == nil {
		return nil
	}
	return o.screen.Cleanup()
}

func appendUint(dst []byte, v uint) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, tmp[i:]...)
}
