//go:build !(darwin || freebsd || linux || netbsd || windows)

package dino

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("native libraries are not supported on " + runtime.GOOS)

func openLibrary(string) (uintptr, error) {
	return 0, errUnsupported
}

func lookupSymbol(uintptr, string) (uintptr, error) {
	return 0, errUnsupported
}

func closeLibrary(uintptr) error {
	return errUnsupported
}
