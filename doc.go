// Package textmode drives an ANSI/VT-compatible terminal as a text-mode
// display: a double-buffered screen diff engine, a stateful input byte
// classifier, and two scoped terminal-mode guards.
//
// # Basic Usage
//
//	guard, err := textmode.NewRawGuard(int(os.Stdin.Fd()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer guard.Close()
//
//	out, err := textmode.New(os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer out.Close()
//
//	in := textmode.NewInputClassifier(os.Stdin)
//
//	out.MoveTo(5, 5)
//	out.WriteString("hello")
//	out.Refresh()
//
//	key, ok, err := in.ReadKey()
//
// # Components
//
//   - RawGuard puts the input TTY into raw mode and restores it on Cleanup.
//   - ScreenGuard switches the output TTY to alternate-screen mode and
//     restores it on Cleanup.
//   - InputClassifier turns a raw byte stream into Key values, configurable
//     via ClassifierConfig.
//   - Output maintains a pair of in-memory screens (cur/next); drawing
//     methods mutate next, and Refresh computes and sends the minimal diff
//     needed to bring the real terminal in line with it.
//
// # Concurrency
//
// Output and InputClassifier are not safe for concurrent use; each is
// meant to be driven by a single owning goroutine. Two instances may be
// driven concurrently by separate goroutines since they share no mutable
// state.
package textmode
