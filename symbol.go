package dino

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Func is a resolved symbol bound to the Go function type T.
//
// Func does not own anything: it is only valid while the Library it was found in stays open.
type Func[T any] struct {
	addr uintptr
	fn   T
}

// Valid reports if the symbol address is not zero.
func (f Func[T]) Valid() bool {
	return f.addr != 0
}

// Addr of the native symbol.
func (f Func[T]) Addr() uintptr {
	return f.addr
}

// Get the bound function. Calling the result of an invalid Func panics.
func (f Func[T]) Get() T {
	return f.fn
}

// Find searches symbol in lib and binds it to the function type T.
//
// Unsafe: nothing verifies that the native function really has the signature T,
// a mismatch is undefined behaviour at call time. T must be a func type whose
// parameters and results purego can marshal, otherwise ErrSignature is returned.
func Find[T any](lib *Library, symbol string) (f Func[T], err error) {
	var addr uintptr
	if addr, err = lib.Search(symbol); err != nil {
		return
	}
	if f.fn, err = bind[T](addr); err != nil {
		err = &Error{Op: "search", Path: lib.Path(), Symbol: symbol, Err: err}
		return
	}
	f.addr = addr
	return
}

// Bind an address which comes from elsewhere to the function type T, with the same caveats as [Find].
func Bind[T any](addr uintptr) (f Func[T], err error) {
	if addr == 0 {
		return f, ErrMissingSymbol
	}
	if f.fn, err = bind[T](addr); err != nil {
		return
	}
	f.addr = addr
	return
}

func bind[T any](addr uintptr) (fn T, err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case error:
			err = fmt.Errorf("%w: %T: %w", ErrSignature, fn, r)
		default:
			err = fmt.Errorf("%w: %T: %v", ErrSignature, fn, r)
		}
	}()
	purego.RegisterFunc(&fn, addr)
	return
}
