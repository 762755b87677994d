package dino

import (
	"errors"
	"strings"
)

var (
	// ErrInactive occurs when searching a Library which failed to open or already closed.
	ErrInactive = errors.New("library not active")
	// ErrMissingSymbol occurs when can't found a symbol.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrSignature occurs when a symbol can not bind to the requested Go type.
	ErrSignature = errors.New("invalid symbol signature")
	// ErrPanicked occurs when an entrypoint call panics.
	ErrPanicked = errors.New("entrypoint panicked")
)

// Error describes a failed loader operation.
//
// Op is one of "open", "search", "release" or "call".
type Error struct {
	Op     string
	Path   string
	Symbol string
	Err    error
}

func (e *Error) Error() string {
	s := strings.Builder{}
	s.WriteString(e.Op)
	if e.Path != "" {
		s.WriteString(" [")
		s.WriteString(e.Path)
		s.WriteByte(']')
	}
	if e.Symbol != "" {
		s.WriteString(" symbol [")
		s.WriteString(e.Symbol)
		s.WriteByte(']')
	}
	if e.Err != nil {
		s.WriteString(": ")
		s.WriteString(e.Err.Error())
	}
	return s.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
