// Package handler provides the Handler interface and Dispatch, the
// backend that the initializer installs.
//
// A Dispatch is assembled with a DispatchBuilder:
//
//	d := handler.NewDispatchBuilder().
//	    Format(formatter.NewLineFormatter(formatter.Config{Colorize: true})).
//	    Chain(sink.Stdout(true)).
//	    Level(core.InfoLevel).
//	    Build()
//
// Build snapshots the builder, so the Dispatch it returns never changes.
// Handle checks the level first, formats the entry once into a pooled
// buffer and writes the line to every chained sink in order. A Dispatch
// built without any sink accepts entries and drops them; that is the
// backend used on platforms with no guaranteed console.
//
// Every Dispatch tracks filtered entries per level, processed lines,
// formatter rejections and failed writes in a Stats value.
package handler
