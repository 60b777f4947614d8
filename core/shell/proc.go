package shell

import (
	"io"

	"github.com/gosh-shell/gosh/core/history"
	"github.com/spf13/afero"
)

// ProcFunc is the entry point of a builtin command. The return value is the
// command's exit status.
type ProcFunc func(p *Proc) int

// Proc is the execution context handed to a builtin invocation. Streams are
// passed explicitly; builtins never touch the process-wide os.Stdin/Stdout,
// so redirection needs no save/restore discipline.
type Proc struct {
	fs      afero.Fs
	history *history.History

	args []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// isBuiltin reports whether a name resolves to a builtin, used by
	// `type` and completion without reaching back into the registry.
	isBuiltin func(name string) bool

	exitRequested bool
	exitCode      int
}

// NewProc builds a context for one builtin invocation. args includes the
// command name at position zero, mirroring an argv.
func NewProc(fs afero.Fs, hist *history.History, args []string, stdin io.Reader, stdout, stderr io.Writer) *Proc {
	return &Proc{
		fs:      fs,
		history: hist,
		args:    args,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}
}

func (p *Proc) Args() []string { return p.args }

func (p *Proc) Stdin() io.Reader  { return p.stdin }
func (p *Proc) Stdout() io.Writer { return p.stdout }
func (p *Proc) Stderr() io.Writer { return p.stderr }

// FS is the filesystem the builtin operates on.
func (p *Proc) FS() afero.Fs { return p.fs }

// History is the shell's history log, nil outside an interactive shell.
func (p *Proc) History() *history.History { return p.history }

// SetBuiltinLookup installs the predicate backing IsBuiltin, normally the
// registry's; tests inject their own.
func (p *Proc) SetBuiltinLookup(f func(name string) bool) {
	p.isBuiltin = f
}

// IsBuiltin reports whether name is a builtin command.
func (p *Proc) IsBuiltin(name string) bool {
	if p.isBuiltin == nil {
		return false
	}
	return p.isBuiltin(name)
}

// RequestExit asks the shell to terminate with code once the current
// pipeline has been cleaned up.
func (p *Proc) RequestExit(code int) {
	p.exitRequested = true
	p.exitCode = code
}

// ExitRequested reports whether the builtin asked the shell to terminate.
func (p *Proc) ExitRequested() (int, bool) {
	return p.exitCode, p.exitRequested
}
