// Package builtins holds the shell's builtin command set: a closed,
// compile-time-checked collection dispatched through a single Run switch.
package builtins

import (
	"fmt"
	"io"

	getopt "github.com/pborman/getopt/v2"

	"github.com/gosh-shell/gosh/core/shell"
)

// SimpleCommand provides option parsing and help output shared by all
// builtins.
type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag
	// isn't added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was successful call the callback.
func (s *SimpleCommand) Run(p *shell.Proc, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(p.Args(), nil)
	if err != nil && !s.NeverBail {
		shell.Errorf(p.Stderr(), "error: %v", err)
		s.PrintHelp(p.Stdout())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(p.Stdout())
		return 0
	}

	return callback()
}

// RunE is like Run for callbacks that report errors rather than statuses.
func (s *SimpleCommand) RunE(p *shell.Proc, callback func() error) int {
	return s.Run(p, func() int {
		if err := callback(); err != nil {
			s.LogProgramError(p, err)
			return 1
		}
		return 0
	})
}

// LogProgramError reports a command-prefixed error line on the command's
// error stream.
func (s *SimpleCommand) LogProgramError(p *shell.Proc, err error) {
	shell.Errorf(p.Stderr(), "%s: %v", p.Args()[0], err)
}

// RunEachFileOrStdin invokes callback once per named file, or once with the
// command's stdin when no files are given. Per-file failures are reported
// and the remaining files still run.
func (s *SimpleCommand) RunEachFileOrStdin(p *shell.Proc, files []string, callback func(name string, fd io.Reader) error) int {
	if len(files) == 0 {
		if err := callback("", p.Stdin()); err != nil {
			s.LogProgramError(p, err)
			return 1
		}
		return 0
	}

	exitCode := 0
	for _, name := range files {
		fd, err := p.FS().Open(name)
		if err != nil {
			shell.Errorf(p.Stderr(), "%s: %s: %v", p.Args()[0], name, err)
			exitCode = 1
			continue
		}
		err = callback(name, fd)
		fd.Close()
		if err != nil {
			shell.Errorf(p.Stderr(), "%s: %s: %v", p.Args()[0], name, err)
			exitCode = 1
		}
	}
	return exitCode
}
