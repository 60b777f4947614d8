package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosh-shell/gosh/core/shell/shelltest"
)

func TestEcho(t *testing.T) {
	cases := goldenTestSuite{
		"no-args":     {[]string{"echo"}},
		"single-word": {[]string{"echo", "hello"}},
		"multi-word":  {[]string{"echo", "hello", "world"}},
		"escapes-off": {[]string{"echo", `a\tb`}},
		"escapes-on":  {[]string{"echo", "-e", `a\tb`}},
	}

	cases.Run(t, Echo.Run)
}

func TestEcho_unescape(t *testing.T) {
	assert.Equal(t, "a\tb", unescape(`a\tb`))
	assert.Equal(t, "a\nb", unescape(`a\nb`))
	assert.Equal(t, `a\b`, unescape(`a\\b`))
	assert.Equal(t, "A", unescape(`\x41`))
	assert.Equal(t, "A", unescape(`\0101`))
}

func TestEcho_joinsWithSpaces(t *testing.T) {
	cmd := shelltest.Command(Echo.Run, "echo", "a", "b", "c")
	out, err := cmd.Output()

	assert.Nil(t, err)
	assert.Equal(t, "a b c\n", string(out))
	assert.Equal(t, 0, cmd.ExitStatus)
}
