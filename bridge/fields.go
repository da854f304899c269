package bridge

import (
	"fmt"
	"time"

	"github.com/philipp01105/logonce/core"
)

// selfPrefix keeps the bridges' own frames out of caller lookups.
const selfPrefix = "github.com/philipp01105/logonce/bridge."

// TargetKey is the field key that, when present on a bridged record,
// sets the record's target instead of being printed.
const TargetKey = "target"

// valueToField converts a loosely typed value (zap map encoder output,
// logrus data) to a core.Field.
func valueToField(key string, v interface{}) core.Field {
	switch val := v.(type) {
	case string:
		return core.Field{Key: key, Type: core.StringType, Str: val}
	case int:
		return core.Field{Key: key, Type: core.Int64Type, Int64: int64(val)}
	case int32:
		return core.Field{Key: key, Type: core.Int64Type, Int64: int64(val)}
	case int64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: val}
	case uint32:
		return core.Field{Key: key, Type: core.Int64Type, Int64: int64(val)}
	case float64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: val}
	case float32:
		return core.Field{Key: key, Type: core.Float64Type, Float64: float64(val)}
	case bool:
		var n int64
		if val {
			n = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: n}
	case time.Duration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
	case time.Time:
		return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
	case error:
		return core.Field{Key: key, Type: core.ErrorType, Str: val.Error()}
	case fmt.Stringer:
		return core.Field{Key: key, Type: core.StringType, Str: val.String()}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: v}
	}
}
