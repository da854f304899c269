package bridge

import (
	"context"
	"log/slog"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/logger"
)

// SlogHandler implements slog.Handler on top of a logger.Facade, so
// slog.Logger calls reach the same backend as the facade's own calls.
type SlogHandler struct {
	facade *logger.Facade
	target string
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a slog.Handler forwarding to f
func NewSlogHandler(f *logger.Facade) *SlogHandler {
	return &SlogHandler{facade: f}
}

// Enabled reports whether the installed backend admits level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.facade.Enabled(slogLevelToCore(level))
}

// Handle forwards a record; its PC supplies the call site.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	target := s.target
	fields := make([]core.Field, len(s.attrs), len(s.attrs)+record.NumAttrs())
	copy(fields, s.attrs)

	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			target = a.Value.String()
			return true
		}
		fields = appendSlogAttr(fields, s.group, a)
		return true
	})

	s.facade.Emit(slogLevelToCore(record.Level), target, core.CallerFromPC(record.PC), record.Message, fields...)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h := s.clone()
	for _, a := range attrs {
		if s.group == "" && a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			h.target = a.Value.String()
			continue
		}
		h.attrs = appendSlogAttr(h.attrs, s.group, a)
	}
	return h
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	h := s.clone()
	if s.group != "" {
		h.group = s.group + "." + name
	} else {
		h.group = name
	}
	return h
}

func (s *SlogHandler) clone() *SlogHandler {
	attrs := make([]core.Field, len(s.attrs))
	copy(attrs, s.attrs)
	return &SlogHandler{
		facade: s.facade,
		target: s.target,
		attrs:  attrs,
		group:  s.group,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr flattens a into fields, prefixing keys with the group path.
func appendSlogAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			fields = appendSlogAttr(fields, key, ga)
		}
		return fields
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		return append(fields, valueToField(key, a.Value.Bool()))
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	default:
		return append(fields, valueToField(key, a.Value.Any()))
	}
}
