//go:build windows && amd64

package dino

import (
	"runtime"
	"unsafe"
)

// cArgs mirrors the native struct { int argc; const char *const *argv; }.
type cArgs struct {
	argc int32
	argv unsafe.Pointer
}

// Structs larger than 8 bytes are passed by reference on windows x64.
type nativeMain = func(args *cArgs) int32

func bindMain(lib *Library, name string) (func(*Args) int32, error) {
	f, err := Find[nativeMain](lib, name)
	if err != nil {
		return nil, err
	}
	fn := f.Get()
	return func(a *Args) int32 {
		argc, argv := a.pin()
		defer a.unpin()
		c := &cArgs{argc: argc, argv: unsafe.Pointer(argv)}
		var p runtime.Pinner
		p.Pin(c)
		defer p.Unpin()
		return fn(c)
	}, nil
}
