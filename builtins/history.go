package builtins

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gosh-shell/gosh/core/shell"
)

// A leading signed number is a count word, not an option.
var countWord = regexp.MustCompile(`^-\d+$`)

// runHistory lists the recorded command history, or transfers it to and
// from files: -r merges a file into memory, -w rewrites a file with the
// full history, -a appends entries not yet persisted.
func runHistory(p *shell.Proc) int {
	if args := p.Args()[1:]; len(args) > 0 && countWord.MatchString(args[0]) {
		return listHistory(p, args[0])
	}

	cmd := &SimpleCommand{
		Use:   "history [N | -r FILE | -w FILE | -a FILE]",
		Short: "Display or manipulate the command history list.",
	}

	opts := cmd.Flags()
	readFile := opts.String('r', "", "read FILE and append its contents to the history list")
	writeFile := opts.String('w', "", "write the current history to FILE")
	appendFile := opts.String('a', "", "append new history lines to FILE")

	return cmd.Run(p, func() int {
		hist := p.History()
		if hist == nil {
			return 0
		}

		switch {
		case *readFile != "":
			if err := hist.ReadFile(*readFile); err != nil {
				shell.Errorf(p.Stderr(), "%v", err)
				return 1
			}
			return 0
		case *writeFile != "":
			if err := hist.WriteFile(*writeFile); err != nil {
				shell.Errorf(p.Stderr(), "%v", err)
				return 1
			}
			return 0
		case *appendFile != "":
			if err := hist.AppendFile(*appendFile); err != nil {
				shell.Errorf(p.Stderr(), "%v", err)
				return 1
			}
			return 0
		}

		count := ""
		if args := opts.Args(); len(args) > 0 {
			count = args[0]
		}
		return listHistory(p, count)
	})
}

// listHistory prints numbered history entries. A count selects the most
// recent entries; a count that isn't a usable non-negative number is
// ignored and the full list is shown.
func listHistory(p *shell.Proc, count string) int {
	hist := p.History()
	if hist == nil {
		return 0
	}

	entries := hist.Entries()
	start := 0
	if count != "" {
		if n, err := strconv.Atoi(count); err == nil && n >= 0 && n < len(entries) {
			start = len(entries) - n
		}
	}

	for i := start; i < len(entries); i++ {
		fmt.Fprintf(p.Stdout(), "%5d  %s\n", i+1, entries[i])
	}
	return 0
}
