package bridge

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/logger"
)

// ZerologHook forwards zerolog events to a logger.Facade. zerolog does not
// expose an event's fields to hooks, so only the message is forwarded.
type ZerologHook struct {
	facade *logger.Facade
	target string
}

// NewZerologHook creates a hook forwarding to f
//
//	zl := zerolog.New(io.Discard).Hook(bridge.NewZerologHook(logger.Default()))
func NewZerologHook(f *logger.Facade) *ZerologHook {
	return &ZerologHook{facade: f}
}

// WithTarget returns a hook that stamps events with target
func (h *ZerologHook) WithTarget(target string) *ZerologHook {
	return &ZerologHook{facade: h.facade, target: target}
}

// Run implements zerolog.Hook.
func (h *ZerologHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	l, ok := zerologLevelToCore(level)
	if !ok || !h.facade.Enabled(l) {
		return
	}
	h.facade.Emit(l, h.target, core.CallerOutside("github.com/rs/zerolog", selfPrefix), msg)
}

func zerologLevelToCore(level zerolog.Level) (core.Level, bool) {
	switch level {
	case zerolog.TraceLevel:
		return core.TraceLevel, true
	case zerolog.DebugLevel:
		return core.DebugLevel, true
	case zerolog.InfoLevel, zerolog.NoLevel:
		return core.InfoLevel, true
	case zerolog.WarnLevel:
		return core.WarnLevel, true
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return core.ErrorLevel, true
	default:
		return core.OffLevel, false
	}
}
