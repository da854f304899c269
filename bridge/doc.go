// Package bridge routes other logging APIs into a logger.Facade, so code
// written against log/slog, zap, logrus or zerolog ends up in the same
// installed backend and the same line format.
//
//   - NewSlogHandler: a slog.Handler; use with slog.New or slog.SetDefault.
//   - NewZapCore: a zapcore.Core; use with zap.New.
//   - NewLogrusHook: a logrus.Hook.
//   - NewZerologHook: a zerolog.Hook.
//
// Levels above Error (zap DPanic/Panic/Fatal, logrus Panic/Fatal, zerolog
// Fatal/Panic) map to Error; levels below Debug map to Trace. The call site
// comes from the library when it records one (slog's PC, zap.AddCaller,
// logrus ReportCaller) and otherwise from the first stack frame outside
// the library. A string attribute or field named "target" replaces the
// record's target.
package bridge
