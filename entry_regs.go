//go:build !(windows && amd64)

package dino

// Struct { int; pointer } travels in two integer registers (or two stack slots),
// the same as two scalar arguments.
type nativeMain = func(argc int32, argv **byte) int32

func bindMain(lib *Library, name string) (func(*Args) int32, error) {
	f, err := Find[nativeMain](lib, name)
	if err != nil {
		return nil, err
	}
	fn := f.Get()
	return func(a *Args) int32 {
		argc, argv := a.pin()
		defer a.unpin()
		return fn(argc, argv)
	}, nil
}
