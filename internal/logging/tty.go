package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

type fder interface{ Fd() uintptr }

// IsTTY reports whether w is a terminal. Only values with an Fd method,
// such as *os.File, can be terminals.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether r is a terminal a user can type into.
// Interactive pickers are only offered when it is.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colour codes should be written to w.
// NO_COLOR (https://no-color.org) and TERM=dumb disable colour.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
