package builtins

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gosh-shell/gosh/core/shell"
)

// runCd changes the shell's working directory. Without an argument it
// changes to the user's home directory; a leading "~" is expanded.
func runCd(p *shell.Proc) int {
	args := p.Args()

	var path string
	switch {
	case len(args) < 2:
		home, err := os.UserHomeDir()
		if err != nil {
			shell.Errorf(p.Stderr(), "cd: %v", err)
			return 1
		}
		path = home
	default:
		path = expandHome(args[1])
	}

	if err := os.Chdir(path); err != nil {
		shell.Errorf(p.Stderr(), "cd: %v", err)
		return 1
	}
	return 0
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
