package formatter

import (
	"bytes"
	"errors"
	"sync"

	"github.com/philipp01105/logonce/core"
)

// ErrMissingLine is returned for an entry that carries no source line.
// Every call site routed through the facade supplies one, so this signals
// an integration bug rather than a runtime condition.
var ErrMissingLine = errors.New("formatter: entry has no source line")

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format renders an entry as a single line without a trailing newline
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer) error
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
