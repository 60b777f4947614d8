// Package shelltest runs builtin commands against an in-memory filesystem
// with captured streams, mirroring the exec.Cmd API for test convenience.
package shelltest

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/gosh-shell/gosh/core/history"
	"github.com/gosh-shell/gosh/core/shell"
)

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function under test.
	Process shell.ProcFunc
	// Process arguments, the first argument should be the process name.
	Argv []string

	// FS backs all file access, a fresh MemMapFs by default.
	FS afero.Fs
	// History backs the history builtin, empty by default.
	History *history.History

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// IsBuiltin backs the Proc's builtin predicate when set.
	IsBuiltin func(name string) bool

	ExitStatus int
}

// Command builds a Cmd running process with the given argv.
func Command(process shell.ProcFunc, name string, arg ...string) *Cmd {
	fs := afero.NewMemMapFs()
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		FS:      fs,
		History: history.New(fs),
	}
}

// Run executes the process and records its exit status.
func (c *Cmd) Run() error {
	if c.Stdin == nil {
		c.Stdin = strings.NewReader("")
	}
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}

	p := shell.NewProc(c.FS, c.History, c.Argv, c.Stdin, c.Stdout, c.Stderr)
	if c.IsBuiltin != nil {
		p.SetBuiltinLookup(c.IsBuiltin)
	}
	c.ExitStatus = c.Process(p)
	return nil
}

// Output runs the process and returns its stdout.
func (c *Cmd) Output() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CombinedOutput runs the process and returns interleaved stdout and
// stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
