//go:build goloader

package launcher

import (
	"path/filepath"

	"github.com/ZenLiuCN/dino"
	"github.com/ZenLiuCN/dino/object"
	"github.com/ZenLiuCN/dino/pool"
)

func init() {
	backends[".o"] = objects{}
	backends[".a"] = objects{}
}

// objects loads Go object files of package main.
type objects struct{}

func (objects) FileName(id string) string {
	return id
}

func (objects) Load(id string, dirs []string) (target, error) {
	p := pool.New[*object.Module](object.Opener("main"))
	m, err := p.Load(id, dirs...)
	if err != nil {
		return nil, err
	}
	return &objectTarget{pool: p, m: m}, nil
}

type objectTarget struct {
	pool *pool.Pool[*object.Module]
	m    *object.Module
}

func (t *objectTarget) Path() string {
	return t.m.Path()
}

func (t *objectTarget) FileName() string {
	return filepath.Base(t.m.Path())
}

func (t *objectTarget) Entrypoint(name string) (dino.Entrypoint, error) {
	return t.m.Entrypoint(name)
}

func (t *objectTarget) Close() error {
	return t.pool.Close()
}
