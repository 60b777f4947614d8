package shell

import (
	"io"
	"os/exec"

	"github.com/gosh-shell/gosh/core/history"
	"github.com/spf13/afero"
)

// Registry is the boundary to the builtin command set. The executor only
// distinguishes builtin from external through this predicate and never
// special-cases individual commands.
type Registry interface {
	IsBuiltin(name string) bool
	Invoke(name string, p *Proc) int
}

// Executor runs single commands and pipelines, wiring streams between
// builtin (in-process) and external (subprocess) stages.
type Executor struct {
	FS       afero.Fs
	Registry Registry
	History  *history.History

	// Inherited console streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	lastStatus int
	quit       bool
	quitCode   int
}

// RunLine tokenizes and executes one input line.
func (e *Executor) RunLine(line string) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return
	}
	if stages, ok := SplitPipeline(tokens); ok {
		e.runPipeline(stages)
		return
	}
	e.runSingle(tokens)
}

// LastStatus is the exit status of the most recently completed command.
func (e *Executor) LastStatus() int { return e.lastStatus }

// Quit reports whether a builtin requested shell termination, and with
// which code.
func (e *Executor) Quit() (int, bool) { return e.quitCode, e.quit }

func (e *Executor) newProc(args []string, stdin io.Reader, stdout, stderr io.Writer) *Proc {
	p := NewProc(e.FS, e.History, args, stdin, stdout, stderr)
	p.isBuiltin = e.Registry.IsBuiltin
	return p
}

func (e *Executor) invokeBuiltin(p *Proc) {
	e.lastStatus = e.Registry.Invoke(p.Args()[0], p)
	if code, ok := p.ExitRequested(); ok {
		e.quit = true
		e.quitCode = code
	}
}

func orWriter(preferred afero.File, fallback io.Writer) io.Writer {
	if preferred != nil {
		return preferred
	}
	return fallback
}

// releaseStageInput closes a pipe end handed off from an external producer
// once its consuming stage is done with it. Leaving it open would keep the
// producer blocked on write, and then the cleanup Wait would never return.
// The inherited console stream is never closed.
func (e *Executor) releaseStageInput(stdin io.Reader) {
	if rc, ok := stdin.(io.Closer); ok && stdin != e.Stdin {
		rc.Close()
	}
}

// runSingle executes a pipeline-free command with its redirections.
func (e *Executor) runSingle(tokens []string) {
	rest, redirs, err := resolveRedirections(e.FS, tokens)
	if err != nil {
		Errorf(e.Stderr, "%v", err)
		return
	}
	defer redirs.Close()

	if len(rest) == 0 {
		return
	}

	stdout := orWriter(redirs.Stdout, e.Stdout)
	stderr := orWriter(redirs.Stderr, e.Stderr)

	name := rest[0]
	if e.Registry.IsBuiltin(name) {
		e.invokeBuiltin(e.newProc(rest, e.Stdin, stdout, stderr))
		return
	}

	exe, ok := LookPath(e.FS, name)
	if !ok {
		Errorf(e.Stderr, "%s: command not found", name)
		e.lastStatus = 127
		return
	}

	cmd := &exec.Cmd{
		Path:   exe,
		Args:   rest,
		Stdin:  e.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
	e.lastStatus = runAndStatus(cmd, e.Stderr)
}

// runPipeline executes N >= 2 stages, threading each stage's output into
// the next stage's input. Builtin stages run synchronously against an
// executor-owned buffer; adjacent external stages stream through OS pipes
// concurrently. All opened handles are closed and all started processes
// reaped before returning, regardless of how far the pipeline got.
func (e *Executor) runPipeline(stages [][]string) {
	var (
		prevStdin io.Reader
		redirList []*Redirections
		buffers   []*pipeBuffer
		started   []*exec.Cmd
	)

	defer func() {
		// An unconsumed pipe end would leave its producer blocked on
		// write; close it before reaping.
		if rc, ok := prevStdin.(io.Closer); ok {
			rc.Close()
		}
		for _, cmd := range started {
			cmd.Wait()
		}
		for _, redirs := range redirList {
			redirs.Close()
		}
		for _, buf := range buffers {
			buf.Release()
		}
	}()

	for i, stageTokens := range stages {
		isLast := i == len(stages)-1

		rest, redirs, err := resolveRedirections(e.FS, stageTokens)
		if err != nil {
			Errorf(e.Stderr, "%v", err)
			return
		}
		redirList = append(redirList, redirs)

		// All tokens consumed by redirections: no command, abandon
		// the rest of the pipeline.
		if len(rest) == 0 {
			return
		}

		name := rest[0]
		stderr := orWriter(redirs.Stderr, e.Stderr)

		stdin := prevStdin
		if stdin == nil {
			stdin = e.Stdin
		}
		prevStdin = nil

		if e.Registry.IsBuiltin(name) {
			var stdout io.Writer
			var buf *pipeBuffer
			if isLast {
				stdout = orWriter(redirs.Stdout, e.Stdout)
			} else {
				buf = &pipeBuffer{}
				buffers = append(buffers, buf)
				stdout = buf
			}

			p := e.newProc(rest, stdin, stdout, stderr)
			e.invokeBuiltin(p)
			e.releaseStageInput(stdin)

			if e.quit {
				return
			}
			if !isLast {
				prevStdin = buf.Seal()
			}
			continue
		}

		exe, ok := LookPath(e.FS, name)
		if !ok {
			Errorf(e.Stderr, "%s: command not found", name)
			e.lastStatus = 127
			e.releaseStageInput(stdin)
			return
		}

		cmd := &exec.Cmd{
			Path:   exe,
			Args:   rest,
			Stdin:  stdin,
			Stderr: stderr,
		}

		if isLast {
			cmd.Stdout = orWriter(redirs.Stdout, e.Stdout)
			e.lastStatus = runAndStatus(cmd, e.Stderr)
			e.releaseStageInput(stdin)
			continue
		}

		out, err := cmd.StdoutPipe()
		if err != nil {
			Errorf(e.Stderr, "pipeline error: %v", err)
			e.releaseStageInput(stdin)
			return
		}
		if err := cmd.Start(); err != nil {
			Errorf(e.Stderr, "pipeline error: %v", err)
			e.releaseStageInput(stdin)
			return
		}
		// The child inherits its own copy of the descriptor at Start;
		// dropping ours now lets the producer see EPIPE if this stage
		// exits without draining its input.
		e.releaseStageInput(stdin)
		started = append(started, cmd)
		prevStdin = out
	}
}

// runAndStatus runs cmd to completion and maps the result to an exit
// status, reporting spawn failures.
func runAndStatus(cmd *exec.Cmd, errStream io.Writer) int {
	err := cmd.Run()
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	Errorf(errStream, "execution error: %v", err)
	return 1
}
