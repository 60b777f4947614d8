package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosh-shell/gosh/core/history"
	"github.com/gosh-shell/gosh/core/shell/shelltest"
)

func TestHistory_list(t *testing.T) {
	cmd := shelltest.Command(History.Run, "history")
	cmd.History.Add("echo hi")
	cmd.History.Add("pwd")

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, "    1  echo hi\n    2  pwd\n", string(out))
}

func TestHistory_lastN(t *testing.T) {
	cmd := shelltest.Command(History.Run, "history", "2")
	cmd.History.Add("first")
	cmd.History.Add("second")
	cmd.History.Add("third")

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, "    2  second\n    3  third\n", string(out))
}

func TestHistory_negativeCountListsAll(t *testing.T) {
	cmd := shelltest.Command(History.Run, "history", "-5")
	cmd.History.Add("first")
	cmd.History.Add("second")

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "    1  first\n    2  second\n", string(out))
}

func TestHistory_oversizedCountListsAll(t *testing.T) {
	cmd := shelltest.Command(History.Run, "history", "99")
	cmd.History.Add("only")

	out, err := cmd.Output()
	assert.Nil(t, err)
	assert.Equal(t, "    1  only\n", string(out))
}

func TestHistory_writeAndRead(t *testing.T) {
	write := shelltest.Command(History.Run, "history", "-w", "/hist.txt")
	write.History.Add("echo hi")
	write.History.Add("exit")

	_, err := write.Output()
	assert.Nil(t, err)
	assert.Equal(t, 0, write.ExitStatus)

	read := shelltest.Command(History.Run, "history", "-r", "/hist.txt")
	read.FS = write.FS
	read.History = history.New(write.FS)
	read.History.Add("pwd")

	_, err = read.Output()
	assert.Nil(t, err)
	assert.Equal(t, 0, read.ExitStatus)

	list := shelltest.Command(History.Run, "history")
	list.History = read.History

	out, err := list.Output()
	assert.Nil(t, err)
	assert.Equal(t, "    1  pwd\n    2  echo hi\n    3  exit\n", string(out))
}
