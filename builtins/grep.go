package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gosh-shell/gosh/core/shell"
)

// runGrep writes lines containing the pattern as a plain substring. With no
// files the pattern is matched against standard input, which is how it
// consumes a preceding pipeline stage.
func runGrep(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "grep PATTERN [FILE]...",
		Short: "Search files for lines containing a pattern.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			shell.Errorf(p.Stderr(), "grep: missing search pattern")
			return 1
		}

		pattern := args[0]
		files := args[1:]
		showFileName := len(files) > 1

		return cmd.RunEachFileOrStdin(p, files, func(name string, fd io.Reader) error {
			w := p.Stdout()

			scanner := bufio.NewScanner(fd)
			for scanner.Scan() {
				line := scanner.Text()
				if !strings.Contains(line, pattern) {
					continue
				}
				if showFileName {
					fmt.Fprintf(w, "%s:", name)
				}
				fmt.Fprintln(w, line)
			}
			return scanner.Err()
		})
	})
}
