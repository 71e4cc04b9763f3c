package textmode

import (
	"os"

	"golang.org/x/term"
)

// defaultRows/defaultCols are the fallback size used when the controlling
// TTY's dimensions can't be determined (spec.md §6).
const (
	defaultRows = 24
	defaultCols = 80
)

// terminalSize queries the size of the controlling TTY on stdout, falling
// back to 24x80 when that fails (e.g. stdout is redirected to a file).
func terminalSize() (rows, cols int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || rows <= 0 || cols <= 0 {
		return defaultRows, defaultCols
	}
	return rows, cols
}
