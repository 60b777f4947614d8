// Package shell implements the command-line interpreter: tokenization,
// pipeline splitting, redirection resolution and the execution engine that
// chains builtin and external commands.
package shell

import (
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/gosh-shell/gosh/core/history"
	"github.com/spf13/afero"
)

// DefaultPrompt is used when no prompt is configured.
const DefaultPrompt = "$ "

// Shell is the interactive read-eval loop driving the executor.
type Shell struct {
	Executor *Executor
	History  *history.History
	Readline *readline.Instance
}

// Options configures a new interactive shell.
type Options struct {
	FS       afero.Fs
	Registry Registry
	History  *history.History

	// Prompt literal, DefaultPrompt if empty.
	Prompt string

	// BuiltinNames feeds tab completion.
	BuiltinNames []string
}

// New builds an interactive shell reading from the process terminal.
func New(opts Options) (*Shell, error) {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	InitColor()

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
		AutoComplete: &pathCompleter{
			fs:       opts.FS,
			builtins: opts.BuiltinNames,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		Executor: &Executor{
			FS:       opts.FS,
			Registry: opts.Registry,
			History:  opts.History,
			Stdin:    os.Stdin,
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
		},
		History:  opts.History,
		Readline: rl,
	}, nil
}

// Run drives the read-eval loop until exit or end of input and returns the
// shell's exit code. History is persisted on both exit paths.
func (s *Shell) Run() int {
	defer s.Readline.Close()

	for {
		line, err := s.Readline.Readline()
		switch {
		case err == io.EOF:
			s.History.Save()
			return 0

		case err == readline.ErrInterrupt:
			// Interrupt drops the pending line.
			continue

		case err != nil:
			Errorf(os.Stderr, "gosh: %v", err)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.History.Add(line)
		s.Executor.RunLine(line)

		if code, quit := s.Executor.Quit(); quit {
			return code
		}
	}
}
