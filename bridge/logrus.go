package bridge

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/logger"
)

// LogrusHook forwards logrus entries to a logger.Facade. Add it with
// AddHook and point the logrus logger's output at io.Discard.
type LogrusHook struct {
	facade *logger.Facade
}

// NewLogrusHook creates a hook forwarding to f
func NewLogrusHook(f *logger.Facade) *LogrusHook {
	return &LogrusHook{facade: f}
}

// Levels returns every logrus level; filtering is left to the backend.
func (h *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire forwards one entry. Data fields are printed sorted by key.
func (h *LogrusHook) Fire(e *logrus.Entry) error {
	level := logrusLevelToCore(e.Level)
	if !h.facade.Enabled(level) {
		return nil
	}

	var caller core.CallerInfo
	if e.HasCaller() {
		caller = core.CallerInfo{
			File:     e.Caller.File,
			Line:     e.Caller.Line,
			Function: e.Caller.Function,
			Defined:  true,
		}
	} else {
		caller = core.CallerOutside("github.com/sirupsen/logrus", selfPrefix)
	}

	var target string
	keys := make([]string, 0, len(e.Data))
	for k, v := range e.Data {
		if s, ok := v.(string); ok && k == TargetKey {
			target = s
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]core.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, valueToField(k, e.Data[k]))
	}

	h.facade.Emit(level, target, caller, e.Message, fields...)
	return nil
}

func logrusLevelToCore(level logrus.Level) core.Level {
	switch level {
	case logrus.TraceLevel:
		return core.TraceLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	default:
		return core.ErrorLevel
	}
}
