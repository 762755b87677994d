package pool

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ZenLiuCN/dino"
	"github.com/ZenLiuCN/fn"
	"go.uber.org/zap"
)

// Library is what a Pool manages, [dino.Library] is the native one.
type Library interface {
	Active() bool
	Path() string
	Close() error
}

// Opener open id inside dir, it should return an error for a library which is not active.
type Opener[L Library] func(id, dir string) (L, error)

// Pool records loaded libraries by path in load order.
type Pool[L Library] struct {
	Open    Opener[L]
	Modules map[string]L
	Loaded  []L
	sync.RWMutex
}

var (
	ErrNotFound  = errors.New("module not found")
	ErrNotLoad   = errors.New("module not loaded")
	ErrCorrupted = errors.New("recording corrupted")
)

// New create a Pool loading libraries by open.
func New[L Library](open Opener[L]) *Pool[L] {
	return &Pool[L]{Open: open, Modules: make(map[string]L)}
}

// Native create a Pool of native libraries.
func Native() *Pool[*dino.Library] {
	return New[*dino.Library](dino.Open)
}

// Load walks dirs in order and returns the first library id which opens.
//
// A library already loaded from the same path is returned as is.
// When nothing opens, the error wraps ErrNotFound and every attempt's error.
func (p *Pool[L]) Load(id string, dirs ...string) (lib L, err error) {
	p.Lock()
	defer p.Unlock()
	if len(dirs) == 0 {
		dirs = []string{""}
	}
	errs := []error{ErrNotFound}
	for _, dir := range dirs {
		lib, err = p.Open(id, dir)
		if err == nil && lib.Active() {
			if x, ok := p.Modules[lib.Path()]; ok {
				_ = lib.Close()
				dino.Logger().Debug("reuse loaded module", zap.String("path", x.Path()))
				return x, nil
			}
			p.Modules[lib.Path()] = lib
			p.Loaded = append(p.Loaded, lib)
			dino.Logger().Debug("loaded module", zap.String("id", id), zap.String("path", lib.Path()))
			return lib, nil
		}
		if err == nil {
			err = fmt.Errorf("%s: %w", lib.Path(), dino.ErrInactive)
		}
		dino.Logger().Debug("module not in directory", zap.String("id", id), zap.String("dir", dir), zap.Error(err))
		errs = append(errs, err)
	}
	return lib, errors.Join(errs...)
}

// Require fetch a loaded library by path.
func (p *Pool[L]) Require(path string) (lib L, err error) {
	p.RLock()
	defer p.RUnlock()
	var ok bool
	if lib, ok = p.Modules[path]; !ok {
		err = fmt.Errorf("%w: %s", ErrNotLoad, path)
	}
	return
}

// Paths of loaded libraries.
func (p *Pool[L]) Paths() []string {
	p.RLock()
	defer p.RUnlock()
	s := fn.MapKeys(p.Modules)
	slices.Sort(s)
	return s
}

// Unload close and forget the library loaded from path.
func (p *Pool[L]) Unload(path string) error {
	p.Lock()
	defer p.Unlock()
	m, ok := p.Modules[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotLoad, path)
	}
	i := slices.IndexFunc(p.Loaded, func(l L) bool { return l.Path() == path })
	if i < 0 {
		return ErrCorrupted
	}
	delete(p.Modules, path)
	p.Loaded = slices.Delete(p.Loaded, i, i+1)
	return m.Close()
}

// Close every library in reverse load order.
func (p *Pool[L]) Close() error {
	p.Lock()
	defer p.Unlock()
	var errs []error
	for i := len(p.Loaded) - 1; i >= 0; i-- {
		m := p.Loaded[i]
		delete(p.Modules, m.Path())
		if err := m.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.Loaded = p.Loaded[:0]
	return errors.Join(errs...)
}
