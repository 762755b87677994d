//go:build goloader

// Package object loads Go relocatable object files and archives at runtime through [goloader].
//
// The host executable must be built with a Go SDK prepared for goloader,
// and every package used by a module must be linked into the host.
//
// [goloader]: https://github.com/pkujhd/goloader
package object

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/ZenLiuCN/dino"
	"github.com/pkujhd/goloader"
	"go.uber.org/zap"
)

// Main is the entrypoint contract of an object module.
type Main = func(args []string) int

// Module is a linked Go object file.
type Module struct {
	file    string
	pkg     string
	symbols map[string]uintptr
	linker  *goloader.Linker
	module  *goloader.CodeModule
}

// Open read, link and load file as package pkg, types are registered before linking.
//
// The returned Module is never nil, it is inactive when any stage fails.
func Open(file, pkg string, types ...any) (m *Module, err error) {
	if pkg == "" {
		pkg = "main"
	}
	m = &Module{file: file, pkg: pkg, symbols: make(map[string]uintptr)}
	defer func() {
		if err != nil {
			err = &dino.Error{Op: "open", Path: file, Err: err}
			m.linker = nil
		}
	}()
	if _, err = os.Stat(file); err != nil {
		return
	}
	if err = goloader.RegSymbol(m.symbols); err != nil {
		return
	}
	if len(types) > 0 {
		dino.Logger().Debug("register types", zap.Int("count", len(types)))
		goloader.RegTypes(m.symbols, types...)
	}
	if m.linker, err = goloader.ReadObj(file, pkg); err != nil {
		return
	}
	if m.module, err = goloader.Load(m.linker, m.symbols); err != nil {
		return
	}
	dino.Logger().Debug("link object", zap.String("path", file), zap.String("pkg", pkg))
	return
}

// Opener for a [pool.Pool] of object modules of package pkg.
func Opener(pkg string) func(id, dir string) (*Module, error) {
	return func(id, dir string) (*Module, error) {
		return Open(dino.JoinPath(dir, id), pkg)
	}
}

// Path of the object file.
func (m *Module) Path() string {
	return m.file
}

// Package path the object was linked as.
func (m *Module) Package() string {
	return m.pkg
}

// Active reports if the module is linked.
func (m *Module) Active() bool {
	return m != nil && m.module != nil
}

// MissingSymbols dump the symbols the host does not provide.
func (m *Module) MissingSymbols() []string {
	if m.linker == nil {
		return nil
	}
	return goloader.UnresolvedSymbols(m.linker, m.symbols)
}

// Search the code address of sym, a name without package qualifier is looked up in the module package.
func (m *Module) Search(sym string) (uintptr, error) {
	if !m.Active() {
		return 0, &dino.Error{Op: "search", Path: m.file, Symbol: sym, Err: dino.ErrInactive}
	}
	sym = m.qualify(sym)
	p, ok := m.module.Syms[sym]
	if !ok || p == 0 {
		return 0, &dino.Error{Op: "search", Path: m.file, Symbol: sym, Err: dino.ErrMissingSymbol}
	}
	dino.Logger().Debug("found symbol", zap.String("path", m.file), zap.String("symbol", sym), zap.Uintptr("address", p))
	return p, nil
}

func (m *Module) qualify(sym string) string {
	if strings.IndexByte(sym, '.') < 0 {
		return m.pkg + "." + sym
	}
	return sym
}

// Entrypoint resolve name as a [Main].
func (m *Module) Entrypoint(name string) (dino.Entrypoint, error) {
	p, err := m.Search(name)
	if err != nil {
		return dino.Entrypoint{}, err
	}
	return dino.NewEntrypoint(name, m.file, As[Main](p)), nil
}

// Close unload the module, stdout is synced first so module output is not lost. It is safe to call many times.
func (m *Module) Close() (err error) {
	if m.module == nil {
		return nil
	}
	_ = os.Stdout.Sync()
	defer func() {
		if r := recover(); r != nil {
			err = &dino.Error{Op: "release", Path: m.file, Err: fmt.Errorf("%v", r)}
		}
	}()
	m.module.Unload()
	m.module = nil
	m.linker = nil
	m.symbols = nil
	return
}

// As convert a code address to the func type T.
//
// Unsafe: T must be a func type matching the real signature of the code.
func As[T any](addr uintptr) (x T) {
	fv := new(uintptr)
	*fv = addr
	p := unsafe.Pointer(fv)
	x = *(*T)(unsafe.Pointer(&p))
	return
}

// Inspect display symbols inside an object file.
func Inspect(file, pkg string) ([]string, error) {
	if pkg == "" {
		pkg = "main"
	}
	s, err := goloader.Parse(file, pkg)
	if err != nil {
		return nil, errors.Join(dino.ErrMissingSymbol, err)
	}
	return s, nil
}
