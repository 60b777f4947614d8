package builtins

import (
	"fmt"

	"github.com/gosh-shell/gosh/core/shell"
)

// runType reports how a command name would be resolved: as a shell builtin
// or as an executable found on the search path.
func runType(p *shell.Proc) int {
	args := p.Args()
	if len(args) < 2 {
		shell.Errorf(p.Stderr(), "type: missing argument")
		return 1
	}

	name := args[1]
	if p.IsBuiltin(name) {
		fmt.Fprintf(p.Stdout(), "%s is a shell builtin\n", name)
		return 0
	}

	if path, ok := shell.LookPath(p.FS(), name); ok {
		fmt.Fprintf(p.Stdout(), "%s is %s\n", name, path)
		return 0
	}

	shell.Errorf(p.Stderr(), "%s: not found", name)
	return 1
}
