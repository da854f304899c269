package bridge

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/logger"
)

// ZapCore is a zapcore.Core writing to a logger.Facade. Named loggers
// become the target, with zap's dots turned into path separators.
type ZapCore struct {
	facade *logger.Facade
	fields []core.Field
}

// NewZapCore creates a zapcore.Core forwarding to f
//
//	zl := zap.New(bridge.NewZapCore(logger.Default()), zap.AddCaller())
func NewZapCore(f *logger.Facade) *ZapCore {
	return &ZapCore{facade: f}
}

// Enabled reports whether the installed backend admits level.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return c.facade.Enabled(zapLevelToCore(level))
}

// With returns a core carrying fields on every entry.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ZapCore{
		facade: c.facade,
		fields: make([]core.Field, len(c.fields), len(c.fields)+len(fields)),
	}
	copy(clone.fields, c.fields)
	clone.fields = appendZapFields(clone.fields, fields)
	return clone
}

// Check adds this core when the entry's level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write forwards an entry. Without zap.AddCaller the call site is found
// by walking the stack past zap's frames.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var caller core.CallerInfo
	if ent.Caller.Defined {
		caller = core.CallerInfo{
			File:     ent.Caller.File,
			Line:     ent.Caller.Line,
			Function: ent.Caller.Function,
			Defined:  true,
		}
	} else {
		caller = core.CallerOutside("go.uber.org/zap", selfPrefix)
	}

	all := make([]core.Field, len(c.fields), len(c.fields)+len(fields))
	copy(all, c.fields)
	all = appendZapFields(all, fields)

	target := strings.ReplaceAll(ent.LoggerName, ".", "/")
	c.facade.Emit(zapLevelToCore(ent.Level), target, caller, ent.Message, all...)
	return nil
}

// Sync is a no-op; sinks write synchronously.
func (c *ZapCore) Sync() error {
	return nil
}

func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendZapFields encodes each field on its own so output keeps call order.
func appendZapFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		for k, v := range enc.Fields {
			dst = append(dst, valueToField(k, v))
		}
	}
	return dst
}
