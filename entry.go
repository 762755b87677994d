package dino

import (
	"fmt"
)

// Entrypoint is a module function following the launcher contract: it takes an argument vector and returns an exit code.
type Entrypoint struct {
	name string
	path string
	call func(*Args) int32
}

// FindEntrypoint resolve the entrypoint symbol name inside lib.
//
// The native function must be `int name(struct { int argc; const char *const *argv; })`,
// which is not verified.
func FindEntrypoint(lib *Library, name string) (e Entrypoint, err error) {
	e.name = name
	e.path = lib.Path()
	e.call, err = bindMain(lib, name)
	return
}

// NewEntrypoint wraps a Go function as an Entrypoint, path is only used in errors.
func NewEntrypoint(name, path string, fn func(args []string) int) Entrypoint {
	e := Entrypoint{name: name, path: path}
	if fn != nil {
		e.call = func(a *Args) int32 {
			return int32(fn(a.Strings()))
		}
	}
	return e
}

// Valid reports if the entrypoint was resolved.
func (e Entrypoint) Valid() bool {
	return e.call != nil
}

// Name of the entrypoint symbol.
func (e Entrypoint) Name() string {
	return e.name
}

// Call the entrypoint with args, a nil args passes the module path only.
//
// A Go panic raised during the call is recovered and returned as ErrPanicked.
// Faults inside native code can not be recovered and terminate the process.
func (e Entrypoint) Call(args *Args) (code int, err error) {
	if e.call == nil {
		return 0, &Error{Op: "call", Path: e.path, Symbol: e.name, Err: ErrMissingSymbol}
	}
	if args == nil {
		args = NewArgs(e.path)
	}
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Op: "call", Path: e.path, Symbol: e.name, Err: fmt.Errorf("%w: %v", ErrPanicked, r)}
		}
	}()
	code = int(e.call(args))
	return
}
