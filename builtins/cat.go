package builtins

import (
	"io"

	"github.com/gosh-shell/gosh/core/shell"
)

// runCat concatenates the named files to stdout. A file that can't be read
// is reported and the remaining files are still written.
func runCat(p *shell.Proc) int {
	exitCode := 0
	for _, name := range p.Args()[1:] {
		fd, err := p.FS().Open(name)
		if err != nil {
			shell.Errorf(p.Stderr(), "cat: %v", err)
			exitCode = 1
			continue
		}

		if _, err := io.Copy(p.Stdout(), fd); err != nil {
			shell.Errorf(p.Stderr(), "cat: %s: %v", name, err)
			exitCode = 1
		}
		fd.Close()
	}
	return exitCode
}
