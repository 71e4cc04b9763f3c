//go:build linux

package textmode

import "golang.org/x/sys/unix"

// Linux names the termios get/set ioctls TCGETS/TCSETS; BSD-family kernels
// (see rawguard_ioctl_bsd.go) name them TIOCGETA/TIOCSETA. Both reach the
// same unix.Termios shape through golang.org/x/sys/unix.
const (
	ioctlGetTermios = unix.TCGETS
	ioctlSetTermios = unix.TCSETS
)
