// Package output builds termenv outputs with the color handling used across vis.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns Ascii when NO_COLOR is set and the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Redirected reports whether w is a file that is not a terminal, such as a
// log file or a pipe. Writers that are not files are never redirected.
func Redirected(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return !term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// New creates a termenv.Output for w. A nil writer selects os.Stderr.
// Output to a redirected file is never styled.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	profile := ColorProfile()
	if Redirected(w) {
		profile = termenv.Ascii
	}

	opts = append(opts,
		termenv.WithProfile(profile),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
