package logger

import (
	"fmt"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/handler"
)

// std is the process-wide facade
var std = NewFacade()

// Default returns the process-wide facade
func Default() *Facade {
	return std
}

// Install sets the process-wide backend. Only the first call succeeds.
func Install(h handler.Handler) error {
	return std.Install(h)
}

// Enabled reports whether the process-wide backend admits level
func Enabled(level core.Level) bool {
	return std.Enabled(level)
}

// WithTarget returns a process-wide logger with a fixed target
func WithTarget(target string) *Logger {
	return std.WithTarget(target)
}

// Package-level convenience functions using the process-wide facade

// Trace logs a trace message
func Trace(msg string, fields ...core.Field) {
	std.root.log(1, core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func Debug(msg string, fields ...core.Field) {
	std.root.log(1, core.DebugLevel, msg, fields)
}

// Info logs an info message
func Info(msg string, fields ...core.Field) {
	std.root.log(1, core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func Warn(msg string, fields ...core.Field) {
	std.root.log(1, core.WarnLevel, msg, fields)
}

// Error logs an error message
func Error(msg string, fields ...core.Field) {
	std.root.log(1, core.ErrorLevel, msg, fields)
}

// Tracef logs a formatted trace message
func Tracef(format string, args ...interface{}) {
	if !std.Enabled(core.TraceLevel) {
		return
	}
	std.root.log(1, core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	if !std.Enabled(core.DebugLevel) {
		return
	}
	std.root.log(1, core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) {
	if !std.Enabled(core.InfoLevel) {
		return
	}
	std.root.log(1, core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	if !std.Enabled(core.WarnLevel) {
		return
	}
	std.root.log(1, core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	if !std.Enabled(core.ErrorLevel) {
		return
	}
	std.root.log(1, core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}
