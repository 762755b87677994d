//go:build goloader

package object

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/ZenLiuCN/dino"
	"github.com/ZenLiuCN/fn"
)

const sampleObject = "testdata/sample.o"

func answer() int { return 42 }

func TestAs(t *testing.T) {
	p := reflect.ValueOf(answer).Pointer()
	if got := As[func() int](p)(); got != 42 {
		t.Errorf("As() call = %d, want 42", got)
	}
}

func TestOpenMissing(t *testing.T) {
	m, err := Open("testdata/missing.o", "")
	if err == nil || m.Active() {
		t.Fatalf("expected an inactive module, err=%v", err)
	}
	if m.Package() != "main" {
		t.Errorf("Package() = %q", m.Package())
	}
	if _, err = m.Search("Run"); !errors.Is(err, dino.ErrInactive) {
		t.Errorf("Search() = %v", err)
	}
	if err = m.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestSample(t *testing.T) {
	if _, err := os.Stat(sampleObject); err != nil {
		t.Skipf("compile testdata/sample.go first: %v", err)
	}
	m := fn.Panic1(Open(sampleObject, "main"))
	defer m.Close()
	t.Log(m.MissingSymbols())
	e := fn.Panic1(m.Entrypoint("Run"))
	code, err := e.Call(dino.NewArgs(sampleObject, "a", "b"))
	if err != nil || code != 2 {
		t.Errorf("Run() = %d, %v", code, err)
	}
	e = fn.Panic1(m.Entrypoint("main.Panic"))
	if _, err = e.Call(nil); !errors.Is(err, dino.ErrPanicked) {
		t.Errorf("Panic() error = %v", err)
	}
	if _, err = m.Entrypoint("Nope"); !errors.Is(err, dino.ErrMissingSymbol) {
		t.Errorf("Entrypoint() error = %v", err)
	}
}
