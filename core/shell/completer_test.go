package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func completionStrings(c *pathCompleter, line string) []string {
	candidates, _ := c.Do([]rune(line), len([]rune(line)))

	var out []string
	for _, cand := range candidates {
		out = append(out, string(cand))
	}
	return out
}

func TestPathCompleter(t *testing.T) {
	t.Setenv(EnvPath, "/bin")

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/bin", 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"grepx", "gzip"} {
		fd, err := fs.Create("/bin/" + name)
		if err != nil {
			t.Fatal(err)
		}
		fd.Close()
	}

	c := &pathCompleter{
		fs:       fs,
		builtins: []string{"cd", "grep", "history"},
	}

	cases := map[string]struct {
		line string
		want []string
	}{
		"builtin and path matches": {"gr", []string{"ep ", "epx "}},
		"builtin only":             {"hist", []string{"ory "}},
		"path only":                {"gz", []string{"ip "}},
		"second word":              {"echo hi | gr", []string{"ep ", "epx "}},
		"no matches":               {"zzz", nil},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got := completionStrings(c, tc.line)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("completion of %q mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

func TestCurrentWord(t *testing.T) {
	cases := map[string]struct {
		line string
		pos  int
		want string
	}{
		"start of line": {"grep", 4, "grep"},
		"mid word":      {"grep", 2, "gr"},
		"after space":   {"echo hi", 7, "hi"},
		"empty":         {"echo ", 5, ""},
		"pos past end":  {"ab", 10, "ab"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			if got := currentWord([]rune(tc.line), tc.pos); got != tc.want {
				t.Errorf("currentWord(%q, %d) = %q, want %q", tc.line, tc.pos, got, tc.want)
			}
		})
	}
}
