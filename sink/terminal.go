package sink

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Terminal writes newline-terminated lines to a writer, one Write per line.
// Writes are serialized so concurrent lines never interleave.
type Terminal struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewTerminal creates a terminal sink on w (default: os.Stdout)
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{w: w, buf: make([]byte, 0, 256)}
}

// Stdout returns a terminal sink on the process's standard output. A
// colorized sink goes through go-colorable so ANSI escapes also render on
// consoles that do not interpret them natively.
func Stdout(colorize bool) *Terminal {
	if colorize {
		return NewTerminal(colorable.NewColorableStdout())
	}
	return NewTerminal(os.Stdout)
}

// WriteLine appends a newline to line and writes it.
func (t *Terminal) WriteLine(line string) error {
	t.mu.Lock()
	t.buf = append(t.buf[:0], line...)
	t.buf = append(t.buf, '\n')
	_, err := t.w.Write(t.buf)
	if cap(t.buf) > 64*1024 {
		t.buf = make([]byte, 0, 256)
	}
	t.mu.Unlock()
	return err
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
