package shell

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var errColor = color.New(color.FgRed)

// InitColor turns colored error output off when stderr is not a terminal,
// so piped or redirected error text stays free of escape sequences. Call it
// once per process before any Errorf output.
func InitColor() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
}

// Errorf reports a single human-readable error line in red on w. Every
// recoverable failure in the shell funnels through here; none of them
// terminate the process.
func Errorf(w io.Writer, format string, a ...interface{}) {
	errColor.Fprintf(w, format+"\n", a...)
}
