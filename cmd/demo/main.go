// Command demo drives a terminal with textmode: draw some colored text,
// refresh it to the screen, then read keys until 'q' or Ctrl+C.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/arcedge/textmode"
	"github.com/arcedge/textmode/internal/vtscreen"
	"golang.org/x/term"
)

func main() {
	raw, err := textmode.NewRawGuard(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("raw mode: %v", err)
	}
	defer raw.Close()

	out, err := textmode.New(os.Stdout)
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	defer out.Close()

	out.MoveTo(5, 5)
	out.WriteString("foo")
	if err := out.Refresh(); err != nil {
		log.Fatalf("refresh: %v", err)
	}

	out.MoveTo(8, 8)
	out.SetFGColor(vtscreen.Green)
	out.WriteString("bar")
	out.ResetAttributes()
	out.MoveTo(11, 11)
	out.WriteString("baz")
	if err := out.Refresh(); err != nil {
		log.Fatalf("refresh: %v", err)
	}

	// A resize invalidates textmode's assumption about the real terminal's
	// state; hard_refresh re-derives it from scratch instead of trusting the
	// diff against the old size. SIGWINCH delivery and key reads both feed
	// channels read by this single goroutine, since Output is not safe for
	// concurrent use.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)

	in := textmode.NewInputClassifier(os.Stdin)
	keys := make(chan textmode.Key)
	readErrs := make(chan error, 1)
	go func() {
		for {
			key, ok, err := in.ReadKey()
			if errors.Is(err, io.EOF) {
				close(keys)
				return
			}
			if err != nil {
				readErrs <- err
				return
			}
			if ok {
				keys <- key
			}
		}
	}()

	for {
		select {
		case <-winch:
			cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				continue
			}
			out.SetSize(rows, cols)
			if err := out.HardRefresh(); err != nil {
				log.Printf("hard refresh after resize: %v", err)
			}

		case err := <-readErrs:
			log.Fatalf("read key: %v", err)

		case key, open := <-keys:
			if !open {
				return
			}
			if c, isCtrl := key.AsCtrl(); isCtrl && c == 'c' {
				return
			}
			if c, isChar := key.AsChar(); isChar && c == 'q' {
				return
			}
			out.MoveTo(14, 5)
			out.WriteString(fmt.Sprintf("key: %v     ", key))
			if err := out.Refresh(); err != nil {
				log.Fatalf("refresh: %v", err)
			}
		}
	}
}
