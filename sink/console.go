package sink

import (
	"io"
	"os"
	"sync"
)

// ConsoleWriter is the contract of a native console bridge: it receives a
// complete line without its newline and hands it to the platform's logging
// facility.
type ConsoleWriter interface {
	WriteConsole(line string) error
}

// ConsoleWriterFunc adapts a plain function to a ConsoleWriter.
type ConsoleWriterFunc func(line string) error

// WriteConsole calls f(line).
func (f ConsoleWriterFunc) WriteConsole(line string) error {
	return f(line)
}

// ConsoleBridge is the sink used on mobile builds.
type ConsoleBridge struct {
	mu sync.Mutex
	w  ConsoleWriter
}

// NewConsoleBridge creates a sink forwarding to w (default: StderrConsole)
func NewConsoleBridge(w ConsoleWriter) *ConsoleBridge {
	if w == nil {
		w = StderrConsole()
	}
	return &ConsoleBridge{w: w}
}

// WriteLine forwards line to the console writer.
func (b *ConsoleBridge) WriteLine(line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.w.WriteConsole(line)
}

// StderrConsole writes lines to standard error. gomobile applications
// route stderr to logcat on Android and to the device console on iOS.
func StderrConsole() ConsoleWriter {
	return WriterConsole(os.Stderr)
}

// WriterConsole returns a ConsoleWriter that appends a newline to each
// line and writes it to w.
func WriterConsole(w io.Writer) ConsoleWriter {
	return ConsoleWriterFunc(func(line string) error {
		_, err := io.WriteString(w, line+"\n")
		return err
	})
}
