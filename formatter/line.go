package formatter

import (
	"bytes"

	"github.com/philipp01105/logonce/core"
)

const (
	levelWidth  = 5
	targetWidth = 14
	// separates the header columns from the message
	messageSep = " --- "
)

// Config holds LineFormatter configuration
type Config struct {
	// Colorize wraps the level and target columns in ANSI escapes
	Colorize bool
	// Prefix is written before the timestamp (e.g. "[R] ")
	Prefix string
	// Separator splits the target into namespace segments (default: "/")
	Separator string
	// TimestampFormat specifies the time layout (default: core.TimestampLayout)
	TimestampFormat string
}

// LineFormatter renders an entry as
//
//	<timestamp> <level> <target:line> --- <message> [key=value ...]
//
// with the level right-aligned to 5 columns and the target column
// left-aligned to 14.
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = core.TimestampLayout
	}
	return &LineFormatter{Config: cfg}
}

// Format formats an entry as a line
func (f *LineFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatEntry(entry, buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatEntry writes the formatted entry into buf. Nothing is written when
// the entry has no source line.
func (f *LineFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) error {
	if !entry.Caller.Defined || entry.Caller.Line <= 0 {
		return ErrMissingLine
	}
	level := entry.Level
	if !level.Valid() {
		level = core.ErrorLevel
	}

	buf.WriteString(f.Prefix)
	buf.Write(entry.Time.Local().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')

	if f.Colorize {
		buf.WriteString(coloredLevels[level])
	} else {
		buf.WriteString(plainLevels[level])
	}
	buf.WriteByte(' ')

	target := TargetWithLine(entry.Target, f.Separator, entry.Caller.Line)
	for len(target) < targetWidth {
		target += " "
	}
	if f.Colorize {
		buf.WriteString(targetColor.Sprint(target))
	} else {
		buf.WriteString(target)
	}

	buf.WriteString(messageSep)
	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
	return nil
}
