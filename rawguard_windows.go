//go:build windows

package textmode

// rawState is the platform snapshot RawGuard restores on cleanup. Windows
// console-mode raw input is not yet implemented.
type rawState struct{}

// rawGuardInit always fails on Windows; see backend_windows.go in the
// teacher repo for the equivalent stub on the old input backend.
func rawGuardInit(fd int) (rawState, error) {
	return rawState{}, setTerminalModeErr(errWindowsUnsupported)
}

// rawGuardRestore is a no-op on Windows since rawGuardInit never succeeds.
func rawGuardRestore(s rawState) error {
	return nil
}
