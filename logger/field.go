package logger

import (
	"time"

	"github.com/philipp01105/logonce/core"
)

// Field is a key-value pair rendered after the message
type Field = core.Field

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Type: core.StringType, Str: val}
}

// Int creates an int field
func Int(key string, val int) Field {
	return Field{Key: key, Type: core.Int64Type, Int64: int64(val)}
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	var n int64
	if val {
		n = 1
	}
	return Field{Key: key, Type: core.BoolType, Int64: n}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an "error" field; a nil error renders as <nil>
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Type: core.StringType, Str: "<nil>"}
	}
	return Field{Key: "error", Type: core.ErrorType, Str: err.Error()}
}

// Any creates a field rendered with %v
func Any(key string, val interface{}) Field {
	return Field{Key: key, Type: core.AnyType, Any: val}
}
