package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/vbauerster/clikit/internal/termios"
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a buffered writer that updates a single terminal line. The
// contents of writer will be flushed when Flush is called.
type Writer struct {
	*bytes.Buffer
	out      io.Writer
	fd       int
	terminal bool
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	if out == nil {
		out = io.Discard
	}
	w := &Writer{
		Buffer: new(bytes.Buffer),
		out:    out,
		fd:     -1,
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		w.terminal = termios.IsTerminal(w.fd)
	}
	return w
}

// Flush writes buffered bytes to the underlying writer. The buffer is
// reset regardless of the outcome.
func (w *Writer) Flush() error {
	defer w.Reset()
	if w.Len() == 0 {
		return nil
	}
	_, err := w.out.Write(w.Bytes())
	return err
}

// IsTerminal reports whether underlying writer is a terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal
}

// GetTermSize returns WxH of underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	if !w.terminal {
		return -1, -1, ErrNotTTY
	}
	return termios.GetSize(w.fd)
}
