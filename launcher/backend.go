package launcher

import (
	"path/filepath"

	"github.com/ZenLiuCN/dino"
	"github.com/ZenLiuCN/dino/pool"
)

// target is a loaded module the launcher can run.
type target interface {
	Path() string
	FileName() string
	Entrypoint(name string) (dino.Entrypoint, error)
	Close() error
}

// backend loads module identifiers through a search chain.
type backend interface {
	FileName(id string) string
	Load(id string, dirs []string) (target, error)
}

// backends by identifier extension, anything else is a native library.
var backends = map[string]backend{}

func backendFor(id string) backend {
	if b, ok := backends[filepath.Ext(id)]; ok {
		return b
	}
	return native{}
}

type native struct{}

func (native) FileName(id string) string {
	return dino.NewName(id).FullName()
}

func (native) Load(id string, dirs []string) (target, error) {
	p := pool.Native()
	lib, err := p.Load(id, dirs...)
	if err != nil {
		return nil, err
	}
	return &nativeTarget{pool: p, lib: lib}, nil
}

type nativeTarget struct {
	pool *pool.Pool[*dino.Library]
	lib  *dino.Library
}

func (t *nativeTarget) Path() string {
	return t.lib.Path()
}

func (t *nativeTarget) FileName() string {
	return t.lib.Name().FullName()
}

func (t *nativeTarget) Entrypoint(name string) (dino.Entrypoint, error) {
	return dino.FindEntrypoint(t.lib, name)
}

func (t *nativeTarget) Close() error {
	return t.pool.Close()
}
