package dino

import "runtime"

// Args is the argument vector handed to an entrypoint.
//
// The native layout is a count and a pointer to NUL terminated strings,
// slot 0 conventionally holds the path of the module itself.
type Args struct {
	values []string
	bufs   [][]byte
	ptrs   []*byte
	pinner runtime.Pinner
	pinned bool
}

// NewArgs create an argument vector with path at slot 0 followed by args.
func NewArgs(path string, args ...string) *Args {
	a := &Args{values: make([]string, 0, len(args)+1)}
	a.values = append(a.values, path)
	a.values = append(a.values, args...)
	return a
}

// Len is the argument count including slot 0.
func (a *Args) Len() int {
	return len(a.values)
}

// Empty reports no argument at all.
func (a *Args) Empty() bool {
	return len(a.values) == 0
}

// Strings returns a copy of the arguments.
func (a *Args) Strings() []string {
	return append([]string(nil), a.values...)
}

// SetPath replace slot 0.
func (a *Args) SetPath(path string) {
	if len(a.values) == 0 {
		a.values = append(a.values, path)
		return
	}
	a.values[0] = path
}

// pin marshals the values to native strings and pins them until unpin.
// The pointer array carries a trailing nil like a process argv.
func (a *Args) pin() (argc int32, argv **byte) {
	if !a.pinned {
		a.bufs = a.bufs[:0]
		a.ptrs = a.ptrs[:0]
		for _, v := range a.values {
			b := make([]byte, len(v)+1)
			copy(b, v)
			a.bufs = append(a.bufs, b)
			a.ptrs = append(a.ptrs, &b[0])
			a.pinner.Pin(&b[0])
		}
		a.ptrs = append(a.ptrs, nil)
		a.pinner.Pin(&a.ptrs[0])
		a.pinned = true
	}
	return int32(len(a.values)), &a.ptrs[0]
}

func (a *Args) unpin() {
	if a.pinned {
		a.pinner.Unpin()
		a.pinned = false
	}
}
