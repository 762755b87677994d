package dino

import (
	"errors"

	"go.uber.org/zap"
)

// Library is a loaded (or failed to load) native shared library.
//
// Use Steps:
//
//  1. [Open] or [OpenName] to load the library, check [Library.Active] or the returned error.
//  2. [Library.Search], [Find] or [FindEntrypoint] to resolve symbols.
//  3. Call [Library.Close] to release the native handle, symbols resolved before are invalid afterward.
//
// Library is not thread-safe.
type Library struct {
	name   Name
	dir    string
	path   string
	handle Handle
}

// Open a shared library by its platform independent id, inside dir or the platform search path when dir is empty.
func Open(id string, dir string) (*Library, error) {
	return OpenName(NewName(id), dir)
}

// OpenName open a shared library by its full name, inside dir or the platform search path when dir is empty.
//
// The returned Library is never nil: when the open fails it is inactive but still knows its name and path.
func OpenName(name Name, dir string) (lib *Library, err error) {
	lib = &Library{name: name, dir: dir, path: JoinPath(dir, name.FullName())}
	lib.handle.free = closeLibrary
	lib.handle.path = lib.path
	var h uintptr
	h, err = openLibrary(lib.path)
	if err == nil && h == 0 {
		err = errors.New("native handle is nil after loading")
	}
	if err != nil {
		err = &Error{Op: "open", Path: lib.path, Err: err}
		report(err)
		return
	}
	lib.handle.ptr = h
	Logger().Debug("open library", zap.String("path", lib.path), zap.Uintptr("handle", h))
	return
}

// Name of the library.
func (l *Library) Name() Name {
	return l.name
}

// Dir the library was opened from, empty for the platform search path.
func (l *Library) Dir() string {
	return l.dir
}

// Path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Handle exposes the owned native handle.
func (l *Library) Handle() *Handle {
	return &l.handle
}

// Active reports if the native library is loaded.
func (l *Library) Active() bool {
	return l != nil && l.handle.Active()
}

// Search the address of an exported symbol.
//
// A zero address means the symbol is unusable: either the library is inactive or the symbol is absent.
func (l *Library) Search(symbol string) (uintptr, error) {
	if l == nil {
		return 0, &Error{Op: "search", Symbol: symbol, Err: ErrInactive}
	}
	if !l.Active() {
		return 0, &Error{Op: "search", Path: l.path, Symbol: symbol, Err: ErrInactive}
	}
	p, err := lookupSymbol(l.handle.ptr, symbol)
	if err != nil || p == 0 {
		e := &Error{Op: "search", Path: l.path, Symbol: symbol, Err: ErrMissingSymbol}
		if err != nil {
			e.Err = errors.Join(ErrMissingSymbol, err)
			report(e)
		}
		return 0, e
	}
	Logger().Debug("found symbol", zap.String("path", l.path), zap.String("symbol", symbol), zap.Uintptr("address", p))
	return p, nil
}

// Close release the native library. It is safe to call many times.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	return l.handle.Release()
}
