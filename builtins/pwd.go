package builtins

import (
	"fmt"
	"os"

	"github.com/gosh-shell/gosh/core/shell"
)

// runPwd implements the pwd builtin.
func runPwd(p *shell.Proc) int {
	wd, err := os.Getwd()
	if err != nil {
		shell.Errorf(p.Stderr(), "pwd: %v", err)
		return 1
	}

	fmt.Fprintln(p.Stdout(), wd)
	return 0
}
