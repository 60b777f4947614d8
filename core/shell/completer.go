package shell

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// pathCompleter offers completion candidates for the word under the
// cursor: builtin names plus executables found in the PATH directories.
type pathCompleter struct {
	fs       afero.Fs
	builtins []string
}

// Do implements readline.AutoCompleter. It returns the candidate suffixes
// for the current word and the length of the prefix being completed.
func (c *pathCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := currentWord(line, pos)

	seen := make(map[string]bool)
	for _, name := range c.builtins {
		if strings.HasPrefix(name, prefix) {
			seen[name] = true
		}
	}
	for _, dir := range filepath.SplitList(os.Getenv(EnvPath)) {
		entries, err := afero.ReadDir(c.fs, dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
				seen[entry.Name()] = true
			}
		}
	}

	matches := make([]string, 0, len(seen))
	for name := range seen {
		matches = append(matches, name)
	}
	sort.Strings(matches)

	var out [][]rune
	for _, name := range matches {
		out = append(out, []rune(name[len(prefix):]+" "))
	}
	return out, len([]rune(prefix))
}

// currentWord extracts the word being typed at pos.
func currentWord(line []rune, pos int) string {
	if pos > len(line) {
		pos = len(line)
	}
	start := pos
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	return string(line[start:pos])
}
