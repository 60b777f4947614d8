package shell

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// EnvPath names the search-path environment variable.
const EnvPath = "PATH"

// LookPath resolves a command name to an executable path. A name with a
// directory component is used as-is; anything else is searched for in each
// directory of PATH, trying a platform executable suffix where applicable.
func LookPath(fs afero.Fs, name string) (string, bool) {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		if isRegularFile(fs, name) {
			return name, true
		}
		return "", false
	}

	for _, dir := range filepath.SplitList(os.Getenv(EnvPath)) {
		if dir == "" {
			continue
		}
		full := filepath.Join(dir, name)
		if isRegularFile(fs, full) {
			return full, true
		}
		if runtime.GOOS == "windows" && isRegularFile(fs, full+".exe") {
			return full + ".exe", true
		}
	}
	return "", false
}

func isRegularFile(fs afero.Fs, path string) bool {
	fi, err := fs.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
