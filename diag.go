package dino

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrorFunc receives the text of a native loader diagnostic.
type ErrorFunc func(msg string)

var onError atomic.Pointer[ErrorFunc]

// SetOnError installs the process wide diagnostic callback and returns the previous one.
//
// Every failure to open, resolve or close a native library is delivered to f,
// in addition to the error returned by the operation. A nil f uninstalls the callback.
// There is no buffering: diagnostics raised while no callback is installed are dropped.
func SetOnError(f ErrorFunc) (prev ErrorFunc) {
	var p *ErrorFunc
	if f != nil {
		p = &f
	}
	if old := onError.Swap(p); old != nil {
		prev = *old
	}
	return
}

// OnError returns the installed diagnostic callback, or nil.
func OnError() ErrorFunc {
	if p := onError.Load(); p != nil {
		return *p
	}
	return nil
}

func report(err error) {
	if err == nil {
		return
	}
	Logger().Debug("native loader diagnostic", zap.Error(err))
	if f := OnError(); f != nil {
		f(err.Error())
	}
}
