package builtins

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/gosh-shell/gosh/core/shell"
)

// runLs lists a directory's entries by name, one per line.
func runLs(p *shell.Proc) int {
	target := "."
	if args := p.Args(); len(args) > 1 {
		target = args[1]
	}

	entries, err := afero.ReadDir(p.FS(), target)
	if err != nil {
		shell.Errorf(p.Stderr(), "ls: %v", err)
		return 1
	}

	for _, entry := range entries {
		fmt.Fprintln(p.Stdout(), entry.Name())
	}
	return 0
}
