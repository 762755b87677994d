package dino

import (
	"go.uber.org/zap"
)

// noCopy makes go vet's copylocks check reject copies of the containing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle owns at most one native library handle.
//
// A Handle must not be copied after first use; ownership moves with [Handle.Move].
// The native handle is released exactly once, by [Handle.Release] or by a Move overwriting it.
type Handle struct {
	_    noCopy
	ptr  uintptr
	path string
	free func(uintptr) error
}

// NewHandle takes the ownership of a native handle, which will be released by the platform close primitive.
func NewHandle(ptr uintptr) *Handle {
	return &Handle{ptr: ptr, free: closeLibrary}
}

// Get the native handle, zero when empty.
func (h *Handle) Get() uintptr {
	return h.ptr
}

// Active reports if the Handle holds a native handle.
func (h *Handle) Active() bool {
	return h.ptr != 0
}

// Move releases the current native handle then takes the one owned by src, src is empty afterward.
// A nil src or h itself leaves everything unchanged.
func (h *Handle) Move(src *Handle) {
	if src == nil || src == h {
		return
	}
	_ = h.Release()
	h.ptr, src.ptr = src.ptr, 0
	h.free, src.free = src.free, nil
	h.path, src.path = src.path, ""
}

// Release closes the native handle if any. It is safe to call many times.
//
// The stored value is cleared before any failure is reported, a failure is sent to the
// diagnostic channel and returned.
func (h *Handle) Release() (err error) {
	if h.ptr == 0 {
		return nil
	}
	p := h.ptr
	h.ptr = 0
	free := h.free
	if free == nil {
		free = closeLibrary
	}
	Logger().Debug("release native handle", zap.String("path", h.path), zap.Uintptr("handle", p))
	if err = free(p); err != nil {
		err = &Error{Op: "release", Path: h.path, Err: err}
		report(err)
	}
	return
}
