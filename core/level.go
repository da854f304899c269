package core

import (
	"strconv"
	"strings"
)

// Level is both the severity of a log entry and the threshold of a filter.
// Levels are ordered; a filter admits every entry at or above it.
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// OffLevel is only meaningful as a filter; it admits nothing.
	OffLevel
)

var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	OffLevel:   "OFF",
}

// String returns the upper-case label of the level
func (l Level) String() string {
	if l < TraceLevel || l > OffLevel {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Valid reports whether l is a severity an entry can carry.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= ErrorLevel
}

// Admits reports whether an entry at level entry passes a filter set to l.
func (l Level) Admits(entry Level) bool {
	return l != OffLevel && entry.Valid() && entry >= l
}

// LevelFromInt maps the numeric level accepted by the initializer to a
// filter: 1 Trace, 2 Debug, 3 Info, 4 Warn, 5 Error. Every other value
// disables logging.
func LevelFromInt(n int) Level {
	switch n {
	case 1:
		return TraceLevel
	case 2:
		return DebugLevel
	case 3:
		return InfoLevel
	case 4:
		return WarnLevel
	case 5:
		return ErrorLevel
	default:
		return OffLevel
	}
}

// Int is the inverse of LevelFromInt. OffLevel and unknown levels return 0.
func (l Level) Int() int {
	if !l.Valid() {
		return 0
	}
	return int(l) + 1
}

// ParseLevel converts a level name or its numeric form to a Level.
// Anything it does not recognise is OffLevel.
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return LevelFromInt(n)
	}
	switch strings.ToUpper(s) {
	case "TRACE":
		return TraceLevel
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return OffLevel
	}
}
