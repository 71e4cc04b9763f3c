//go:build !windows

package textmode

import (
	"golang.org/x/sys/unix"
)

// rawState is the platform snapshot RawGuard restores on cleanup.
type rawState struct {
	fd       int
	original unix.Termios
}

// rawGuardInit saves the current termios state for fd and switches it to
// raw mode: canonical mode, echo, signal generation, extended input
// processing, parity checking, 8th-bit stripping, and CR-to-NL translation
// are all disabled, output processing is disabled, and the character size
// is fixed at 8 bits.
func rawGuardInit(fd int) (rawState, error) {
	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return rawState{}, setTerminalModeErr(err)
	}

	raw := *original
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG | unix.IEXTEN
	raw.Iflag &^= unix.INPCK | unix.ISTRIP | unix.ICRNL
	raw.Oflag &^= unix.OPOST
	raw.Cflag &^= unix.CSIZE
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return rawState{}, setTerminalModeErr(err)
	}

	return rawState{fd: fd, original: *original}, nil
}

// rawGuardRestore writes the saved termios state back to its file
// descriptor.
func rawGuardRestore(s rawState) error {
	if err := unix.IoctlSetTermios(s.fd, ioctlSetTermios, &s.original); err != nil {
		return setTerminalModeErr(err)
	}
	return nil
}
