package builtins

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosh-shell/gosh/core/shell/shelltest"
)

func TestCdAndPwd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink-free path comparison is unreliable on windows")
	}

	orig, err := os.Getwd()
	assert.Nil(t, err)
	defer os.Chdir(orig)

	dir, err := filepath.EvalSymlinks(t.TempDir())
	assert.Nil(t, err)

	cd := shelltest.Command(Cd.Run, "cd", dir)
	_, err = cd.CombinedOutput()
	assert.Nil(t, err)
	assert.Equal(t, 0, cd.ExitStatus)

	pwd := shelltest.Command(Pwd.Run, "pwd")
	out, err := pwd.Output()
	assert.Nil(t, err)
	assert.Equal(t, dir+"\n", string(out))
}

func TestCd_missingDir(t *testing.T) {
	orig, err := os.Getwd()
	assert.Nil(t, err)
	defer os.Chdir(orig)

	cd := shelltest.Command(Cd.Run, "cd", "/no/such/dir/anywhere")
	_, err = cd.CombinedOutput()
	assert.Nil(t, err)
	assert.Equal(t, 1, cd.ExitStatus)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	assert.Nil(t, err)

	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "src"), expandHome("~/src"))
	assert.Equal(t, "/tmp", expandHome("/tmp"))
	assert.Equal(t, "~user", expandHome("~user"))
}
