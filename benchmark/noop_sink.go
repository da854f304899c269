// Package benchmark compares the logonce line pipeline with other Go
// logging libraries writing equivalent human-readable output to a
// discarding sink.
package benchmark

import (
	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/formatter"
	"github.com/philipp01105/logonce/handler"
	"github.com/philipp01105/logonce/logger"
)

// noopSink discards lines but touches them so the write is not elided.
type noopSink struct{}

func (noopSink) WriteLine(line string) error {
	_ = len(line)
	return nil
}

// newFacade returns a facade with the desktop pipeline writing to noopSink.
func newFacade(level core.Level, colorize bool) *logger.Facade {
	f := logger.NewFacade()
	_ = f.Install(handler.NewDispatchBuilder().
		Format(formatter.NewLineFormatter(formatter.Config{Colorize: colorize})).
		Chain(noopSink{}).
		Level(level).
		Build())
	return f
}
