package builtins

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/gosh-shell/gosh/core/shell/shelltest"
)

func TestCat(t *testing.T) {
	cmd := shelltest.Command(Cat.Run, "cat", "/a.txt", "/b.txt")
	assert.Nil(t, afero.WriteFile(cmd.FS, "/a.txt", []byte("first\n"), 0600))
	assert.Nil(t, afero.WriteFile(cmd.FS, "/b.txt", []byte("second\n"), 0600))

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, "first\nsecond\n", string(out))
	assert.Equal(t, 0, cmd.ExitStatus)
}

func TestCat_noArgs(t *testing.T) {
	cmd := shelltest.Command(Cat.Run, "cat")

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Empty(t, string(out))
	assert.Equal(t, 0, cmd.ExitStatus)
}

func TestCat_continuesPastMissingFile(t *testing.T) {
	cmd := shelltest.Command(Cat.Run, "cat", "/missing.txt", "/b.txt")
	assert.Nil(t, afero.WriteFile(cmd.FS, "/b.txt", []byte("second\n"), 0600))

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, "second\n", string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}
