package builtins

import (
	"sort"

	"github.com/gosh-shell/gosh/core/shell"
)

// Builtin identifies one member of the closed builtin command set. Adding a
// command means adding a constant here, a name below and a case in Run;
// the compiler flags anything left out.
type Builtin int

const (
	Exit Builtin = iota
	Echo
	Pwd
	Cd
	Type
	History
	Ls
	Cat
	Grep
	Wc
)

var byName = map[string]Builtin{
	"exit":    Exit,
	"echo":    Echo,
	"pwd":     Pwd,
	"cd":      Cd,
	"type":    Type,
	"history": History,
	"ls":      Ls,
	"cat":     Cat,
	"grep":    Grep,
	"wc":      Wc,
}

// Lookup resolves a command name to its builtin.
func Lookup(name string) (Builtin, bool) {
	b, ok := byName[name]
	return b, ok
}

// Names returns all builtin command names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run dispatches to the builtin's implementation.
func (b Builtin) Run(p *shell.Proc) int {
	switch b {
	case Exit:
		return runExit(p)
	case Echo:
		return runEcho(p)
	case Pwd:
		return runPwd(p)
	case Cd:
		return runCd(p)
	case Type:
		return runType(p)
	case History:
		return runHistory(p)
	case Ls:
		return runLs(p)
	case Cat:
		return runCat(p)
	case Grep:
		return runGrep(p)
	case Wc:
		return runWc(p)
	}
	return 1
}

// Registry adapts the builtin set to the executor's registry boundary.
type Registry struct{}

var _ shell.Registry = Registry{}

func (Registry) IsBuiltin(name string) bool {
	_, ok := Lookup(name)
	return ok
}

func (Registry) Invoke(name string, p *shell.Proc) int {
	b, ok := Lookup(name)
	if !ok {
		shell.Errorf(p.Stderr(), "%s: command not found", name)
		return 127
	}
	return b.Run(p)
}
