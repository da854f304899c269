package handler

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/formatter"
	"github.com/philipp01105/logonce/sink"
)

// Dispatch filters entries by level, formats them once and writes the
// line to every chained sink. It is immutable once built.
type Dispatch struct {
	level           core.Level
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	sinks           []sink.Sink
	stats           *Stats
	bufPool         sync.Pool
}

// DispatchBuilder provides a fluent API for building a Dispatch
type DispatchBuilder struct {
	level     core.Level
	formatter formatter.Formatter
	sinks     []sink.Sink
}

// NewDispatchBuilder starts an empty chain: no filter (every level
// passes), the plain line formatter, no sinks.
func NewDispatchBuilder() *DispatchBuilder {
	return &DispatchBuilder{level: core.TraceLevel}
}

// Format sets the formatter
func (b *DispatchBuilder) Format(f formatter.Formatter) *DispatchBuilder {
	b.formatter = f
	return b
}

// Level sets the filter threshold
func (b *DispatchBuilder) Level(level core.Level) *DispatchBuilder {
	b.level = level
	return b
}

// Chain adds an output. Each line is written to every output in order.
func (b *DispatchBuilder) Chain(s sink.Sink) *DispatchBuilder {
	if s != nil {
		b.sinks = append(b.sinks, s)
	}
	return b
}

// Build creates the Dispatch
func (b *DispatchBuilder) Build() *Dispatch {
	f := b.formatter
	if f == nil {
		f = formatter.NewLineFormatter(formatter.Config{})
	}
	d := &Dispatch{
		level:     b.level,
		formatter: f,
		sinks:     append([]sink.Sink(nil), b.sinks...),
		stats:     NewStats(),
	}
	d.bufferFormatter, _ = f.(formatter.BufferFormatter)
	d.bufPool.New = func() interface{} {
		buf := new(bytes.Buffer)
		buf.Grow(256)
		return buf
	}
	return d
}

// Level returns the filter threshold
func (d *Dispatch) Level() core.Level {
	return d.level
}

// Enabled reports whether the filter admits level
func (d *Dispatch) Enabled(level core.Level) bool {
	return d.level.Admits(level)
}

// Handle filters, formats and writes an entry. With no sinks chained the
// entry is accepted and dropped. The last sink error is returned.
func (d *Dispatch) Handle(entry *core.Entry) error {
	if !d.level.Admits(entry.Level) {
		d.stats.IncrementFiltered(entry.Level)
		return nil
	}
	if len(d.sinks) == 0 {
		return nil
	}

	line, err := d.format(entry)
	if err != nil {
		d.stats.FormatErrors.Add(1)
		return err
	}

	var lastErr error
	for _, s := range d.sinks {
		if err := s.WriteLine(line); err != nil {
			d.stats.WriteErrors.Add(1)
			lastErr = err
			continue
		}
		d.stats.ProcessedTotal.Add(1)
	}
	return lastErr
}

func (d *Dispatch) format(entry *core.Entry) (string, error) {
	if d.bufferFormatter == nil {
		b, err := d.formatter.Format(entry)
		return string(b), err
	}

	buf := d.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	err := d.bufferFormatter.FormatEntry(entry, buf)
	line := buf.String()
	if buf.Cap() <= 64*1024 {
		d.bufPool.Put(buf)
	}
	return line, err
}

// Stats returns a snapshot of the current statistics
func (d *Dispatch) Stats() Snapshot {
	return d.stats.GetSnapshot()
}
