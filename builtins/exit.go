package builtins

import (
	"strconv"

	"github.com/gosh-shell/gosh/core/shell"
)

// runExit persists history and asks the shell to terminate. A missing or
// unparseable code argument means 0.
func runExit(p *shell.Proc) int {
	if hist := p.History(); hist != nil {
		hist.Save()
	}

	code := 0
	if args := p.Args(); len(args) > 1 {
		if parsed, err := strconv.Atoi(args[1]); err == nil {
			code = parsed
		}
	}

	p.RequestExit(code)
	return code
}
