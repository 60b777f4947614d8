package builtins

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/gosh-shell/gosh/core/shell"
)

type wcCount struct {
	lines int
	words int
	bytes int
	name  string
}

func countAll(name string, fd io.Reader) (*wcCount, error) {
	data, err := ioutil.ReadAll(fd)
	if err != nil {
		return nil, err
	}

	return &wcCount{
		lines: bytes.Count(data, []byte{'\n'}),
		words: len(strings.Fields(string(data))),
		bytes: len(data),
		name:  name,
	}, nil
}

func (w *wcCount) increment(other *wcCount) {
	w.lines += other.lines
	w.words += other.words
	w.bytes += other.bytes
}

// runWc writes newline, word and byte counts for each input in 7-wide
// right-aligned columns, with a trailing total line when more than one file
// is given.
func runWc(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "wc [-lwc] [FILE...]",
		Short: "Write the number of newlines, words, and bytes contained in each input file to the standard output.",
	}

	opts := cmd.Flags()
	writeLines := opts.Bool('l', "write the number of newlines in each file")
	writeWords := opts.Bool('w', "write the number of words in each file")
	writeBytes := opts.Bool('c', "write the number of bytes in each file")

	return cmd.Run(p, func() int {
		nonePicked := !(*writeLines || *writeWords || *writeBytes)

		var cols []func(*wcCount) int
		if *writeLines || nonePicked {
			cols = append(cols, func(w *wcCount) int { return w.lines })
		}
		if *writeWords || nonePicked {
			cols = append(cols, func(w *wcCount) int { return w.words })
		}
		if *writeBytes || nonePicked {
			cols = append(cols, func(w *wcCount) int { return w.bytes })
		}

		displayCount := func(count *wcCount) {
			parts := make([]string, 0, len(cols))
			for _, col := range cols {
				parts = append(parts, fmt.Sprintf("%7d", col(count)))
			}
			fmt.Fprintf(p.Stdout(), "%s %s\n", strings.Join(parts, " "), count.name)
		}

		files := opts.Args()
		total := &wcCount{name: "total"}

		exitCode := cmd.RunEachFileOrStdin(p, files, func(name string, fd io.Reader) error {
			count, err := countAll(name, fd)
			if err != nil {
				return err
			}
			displayCount(count)
			total.increment(count)
			return nil
		})

		if len(files) > 1 {
			displayCount(total)
		}
		return exitCode
	})
}
