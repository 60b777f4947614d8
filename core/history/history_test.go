package history

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestHistory_roundTrip(t *testing.T) {
	t.Setenv(EnvHistFile, "/hist.txt")
	fs := afero.NewMemMapFs()

	first := New(fs)
	first.Add("echo hi")
	first.Add("cat /etc/hosts | grep localhost")
	first.Add("exit")
	first.Save()

	second := New(fs)
	second.Load()

	assert.Equal(t,
		[]string{"echo hi", "cat /etc/hosts | grep localhost", "exit"},
		second.Entries())
}

func TestHistory_saveAppendsOnlyNewEntries(t *testing.T) {
	t.Setenv(EnvHistFile, "/hist.txt")
	fs := afero.NewMemMapFs()

	h := New(fs)
	h.Add("first")
	h.Save()
	h.Add("second")
	h.Save()

	contents, err := afero.ReadFile(fs, "/hist.txt")
	assert.Nil(t, err)
	assert.Equal(t, "first\nsecond\n", string(contents))
}

func TestHistory_fallbackPath(t *testing.T) {
	t.Setenv(EnvHistFile, "")
	fs := afero.NewMemMapFs()

	h := New(fs)
	h.SetFallbackPath("/fallback.txt")
	h.Add("echo hi")
	h.Save()

	exists, _ := afero.Exists(fs, "/fallback.txt")
	assert.True(t, exists)
}

func TestHistory_noPathIsNoOp(t *testing.T) {
	t.Setenv(EnvHistFile, "")

	h := New(afero.NewMemMapFs())
	h.Add("echo hi")
	h.Save()
	h.Load()

	assert.Equal(t, []string{"echo hi"}, h.Entries())
}

func TestHistory_ignoresBlankLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, "/hist.txt",
		[]byte("one\n\n  \ntwo\n"), 0644))

	h := New(fs)
	assert.Nil(t, h.ReadFile("/hist.txt"))
	assert.Equal(t, []string{"one", "two"}, h.Entries())
}

func TestHistory_limit(t *testing.T) {
	h := New(afero.NewMemMapFs())
	h.SetLimit(2)
	h.Add("one")
	h.Add("two")
	h.Add("three")

	assert.Equal(t, []string{"two", "three"}, h.Entries())
}

func TestHistory_add(t *testing.T) {
	h := New(afero.NewMemMapFs())
	h.Add("")
	h.Add("echo hi")

	assert.Equal(t, []string{"echo hi"}, h.Entries())
}
