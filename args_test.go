package dino

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func cString(p *byte) string {
	var b []byte
	for q := unsafe.Pointer(p); *(*byte)(q) != 0; q = unsafe.Add(q, 1) {
		b = append(b, *(*byte)(q))
	}
	return string(b)
}

func TestArgsPin(t *testing.T) {
	a := NewArgs("/path/libfoo.so", "one", "", "three")
	if a.Len() != 4 || a.Empty() {
		t.Fatalf("Len() = %d", a.Len())
	}
	argc, argv := a.pin()
	defer a.unpin()
	if argc != 4 {
		t.Fatalf("argc = %d", argc)
	}
	ptrs := unsafe.Slice(argv, argc+1)
	var got []string
	for _, p := range ptrs[:argc] {
		got = append(got, cString(p))
	}
	if diff := cmp.Diff(a.Strings(), got); diff != "" {
		t.Errorf("marshalled arguments mismatch (-want +got):\n%s", diff)
	}
	if ptrs[argc] != nil {
		t.Error("argv is not nil terminated")
	}
}

func TestArgsSetPath(t *testing.T) {
	a := NewArgs("", "x")
	a.SetPath("p")
	if diff := cmp.Diff([]string{"p", "x"}, a.Strings()); diff != "" {
		t.Errorf("unexpected arguments (-want +got):\n%s", diff)
	}
	var e Args
	e.SetPath("p")
	if e.Len() != 1 {
		t.Errorf("Len() = %d", e.Len())
	}
}
