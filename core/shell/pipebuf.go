package shell

import (
	"bytes"
	"io"
)

// pipeBuffer bridges a builtin stage's output into the next pipeline
// stage's input. It has two phases: the producing stage writes into it,
// then Seal flips it into a read-only view starting at the first byte.
// The executor allocates it, hands the sealed view to exactly one consumer
// and releases it when the pipeline finishes.
type pipeBuffer struct {
	buf    bytes.Buffer
	sealed bool
}

var _ io.Writer = (*pipeBuffer)(nil)

func (b *pipeBuffer) Write(p []byte) (int, error) {
	if b.sealed {
		return 0, io.ErrClosedPipe
	}
	return b.buf.Write(p)
}

// Seal ends the write phase and returns the reader for the consuming stage.
func (b *pipeBuffer) Seal() io.Reader {
	b.sealed = true
	return &b.buf
}

// Release drops the buffered bytes.
func (b *pipeBuffer) Release() {
	b.buf.Reset()
}
