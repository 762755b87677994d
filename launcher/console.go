package launcher

import (
	"fmt"
	"io"
)

// Console gates the launcher output, everything is discarded when silent.
type Console struct {
	out io.Writer
	err io.Writer
}

// NewConsole over out and err.
func NewConsole(out, err io.Writer, silent bool) *Console {
	if silent {
		return &Console{out: io.Discard, err: io.Discard}
	}
	return &Console{out: out, err: err}
}

// Err is the gated diagnostic stream.
func (c *Console) Err() io.Writer {
	return c.err
}

// Printf to the output stream.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// Errorf to the diagnostic stream.
func (c *Console) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.err, format, args...)
}
