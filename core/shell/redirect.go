package shell

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// Redirections holds the opened targets for one pipeline stage. A nil file
// means the stream is inherited from the shell. The caller that received
// them owns closing both once the stage has fully executed.
type Redirections struct {
	Stdout afero.File
	Stderr afero.File
}

// Close releases both targets, ignoring close errors.
func (r *Redirections) Close() {
	if r.Stdout != nil {
		r.Stdout.Close()
	}
	if r.Stderr != nil {
		r.Stderr.Close()
	}
}

var (
	stderrOps = []string{"2>>", "2>"}
	stdoutOps = []string{"1>>", ">>", "1>", ">"}
)

func isAppendOp(op string) bool {
	return len(op) >= 2 && op[len(op)-2:] == ">>"
}

// resolveRedirections scans tokens for redirection operators, opens their
// target files and returns the remaining command tokens. Operators for
// stderr are resolved before stdout and only the first operator of each
// class is honored; the matched operator and its path are removed from the
// token stream. An operator with no path after it is left in place as an
// ordinary argument.
func resolveRedirections(fs afero.Fs, tokens []string) ([]string, *Redirections, error) {
	remaining := make([]string, len(tokens))
	copy(remaining, tokens)

	redirs := &Redirections{}

	open := func(path string, appendMode bool) (afero.File, error) {
		flags := os.O_WRONLY | os.O_CREATE
		if appendMode {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		return fs.OpenFile(path, flags, 0644)
	}

	for _, class := range []struct {
		ops  []string
		dest *afero.File
	}{
		{stderrOps, &redirs.Stderr},
		{stdoutOps, &redirs.Stdout},
	} {
		for _, op := range class.ops {
			idx := indexOf(remaining, op)
			if idx < 0 {
				continue
			}
			if idx+1 >= len(remaining) {
				break // no path, keep the operator as an argument
			}
			fd, err := open(remaining[idx+1], isAppendOp(op))
			if err != nil {
				redirs.Close()
				return nil, nil, fmt.Errorf("redirection error: %w", err)
			}
			*class.dest = fd
			remaining = append(remaining[:idx], remaining[idx+2:]...)
			break
		}
	}

	return remaining, redirs, nil
}

func indexOf(tokens []string, want string) int {
	for i, tok := range tokens {
		if tok == want {
			return i
		}
	}
	return -1
}
