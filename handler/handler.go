package handler

import (
	"github.com/philipp01105/logonce/core"
)

// Handler is a logging backend: the installed (filter, formatter, sink)
// chain every facade call is routed through.
type Handler interface {
	// Enabled reports whether an entry at level would be handled.
	// The facade asks before building the entry.
	Enabled(level core.Level) bool

	// Handle processes a log entry. The entry must not be retained
	// after Handle returns.
	Handle(entry *core.Entry) error
}
