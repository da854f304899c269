package logger

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/handler"
)

var (
	// ErrAlreadyInstalled is returned by Install once a backend is set.
	ErrAlreadyInstalled = errors.New("logger: a backend is already installed")
	// ErrNilHandler is returned by Install for a nil backend.
	ErrNilHandler = errors.New("logger: backend is nil")
)

// Facade routes log calls to at most one installed backend. Until a
// backend is installed every call is discarded; once installed it stays
// for the lifetime of the Facade.
type Facade struct {
	backend atomic.Pointer[backend]
	root    Logger
}

type backend struct {
	h handler.Handler
}

// NewFacade creates a facade with no backend
func NewFacade() *Facade {
	f := &Facade{}
	f.root = Logger{facade: f}
	return f
}

// Install sets h as the backend. It fails if a backend is already set;
// concurrent callers race on a single compare-and-swap, so at most one
// wins and nobody observes a partially installed backend.
func (f *Facade) Install(h handler.Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	if !f.backend.CompareAndSwap(nil, &backend{h: h}) {
		return ErrAlreadyInstalled
	}
	return nil
}

// Installed reports whether a backend is set
func (f *Facade) Installed() bool {
	return f.backend.Load() != nil
}

// Enabled reports whether an entry at level would reach the backend
func (f *Facade) Enabled(level core.Level) bool {
	b := f.backend.Load()
	return b != nil && b.h.Enabled(level)
}

// Logger returns the facade's logger whose target is the calling package
func (f *Facade) Logger() *Logger {
	return &Logger{facade: f}
}

// WithTarget returns a logger that stamps every entry with target
// instead of the calling package
func (f *Facade) WithTarget(target string) *Logger {
	return &Logger{facade: f, target: target}
}

// Emit hands a fully described record to the backend. Bridges from other
// logging libraries use it after resolving the call site themselves.
// An empty target falls back to the caller's package.
func (f *Facade) Emit(level core.Level, target string, caller core.CallerInfo, msg string, fields ...core.Field) {
	b := f.backend.Load()
	if b == nil || !b.h.Enabled(level) {
		return
	}
	if target == "" {
		target = caller.Package()
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Target = target
	entry.Message = msg
	entry.Caller = caller
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	_ = b.h.Handle(entry)
	core.PutEntry(entry)
}

// Logger emits entries through a Facade. It is immutable and safe for
// concurrent use.
type Logger struct {
	facade *Facade
	target string
}

// Target returns the fixed target, or "" when the calling package is used
func (l *Logger) Target() string {
	return l.target
}

// Enabled reports whether an entry at level would reach the backend
func (l *Logger) Enabled(level core.Level) bool {
	return l.facade.Enabled(level)
}

// log resolves the call site skip frames above its caller and emits.
func (l *Logger) log(skip int, level core.Level, msg string, fields []core.Field) {
	b := l.facade.backend.Load()
	if b == nil || !b.h.Enabled(level) {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	entry.Caller = core.GetCaller(skip + 1)
	entry.Target = l.target
	if entry.Target == "" {
		entry.Target = entry.Caller.Package()
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	_ = b.h.Handle(entry)
	core.PutEntry(entry)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(1, level, msg, fields)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	l.log(1, core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(1, core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(1, core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(1, core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(1, core.ErrorLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(1, core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(1, core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(1, core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(1, core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(1, core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}
