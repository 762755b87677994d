package launcher

import (
	"strconv"
	"strings"
)

// Build-time defaults, set with -ldflags "-X github.com/ZenLiuCN/dino/launcher.DefaultEntrypoint=main".
var (
	DefaultEntrypoint = "run"
	DefaultSilent     = "false"
)

// ErrorCode is the exit code of every launcher failure.
const ErrorCode = 1

// Options of a launch.
type Options struct {
	Dir        string // directory tried before the working and the executable ones
	Entrypoint string // entrypoint symbol name
	Silent     bool   // discard console output
	Verbose    bool   // debug logging on stderr
}

// Defaults are the build-time defaults.
func Defaults() Options {
	silent, _ := strconv.ParseBool(DefaultSilent)
	return Options{Entrypoint: DefaultEntrypoint, Silent: silent}
}

// Launchee is what to launch: the module identifier and its argument vector, slot 0 is reserved for the module path.
type Launchee struct {
	Module string
	Args   []string
}

// Parse leading -key=value or -key options of argv on top of opts.
//
// Parsing stops at the first token not starting with '-', which is the module identifier,
// or after a token made of dashes only. Unknown keys are ignored and the last write wins.
// A boolean is false only for the value "false", a bare -key sets it.
func Parse(argv []string, opts Options) (Options, Launchee) {
	i := 0
	for ; i < len(argv); i++ {
		arg := argv[i]
		if arg == "" || arg[0] != '-' {
			break
		}
		arg = strings.TrimLeft(arg, "-")
		if arg == "" {
			i++
			break
		}
		key, value, ok := strings.Cut(arg, "=")
		opts.set(key, value, ok)
	}
	l := Launchee{Args: []string{""}}
	if i < len(argv) {
		l.Module = argv[i]
		l.Args = append(l.Args, argv[i+1:]...)
	}
	return opts, l
}

func (o *Options) set(key, value string, hasValue bool) {
	switch key {
	case "s", "silent":
		o.Silent = !hasValue || value != "false"
	case "v", "verbose":
		o.Verbose = !hasValue || value != "false"
	case "d", "dir", "directory":
		if hasValue {
			o.Dir = value
		}
	case "e", "entry", "entrypoint":
		if hasValue {
			o.Entrypoint = value
		}
	}
}
