package logonce

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/formatter"
	"github.com/philipp01105/logonce/handler"
	"github.com/philipp01105/logonce/logger"
	"github.com/philipp01105/logonce/sink"
)

// Platform selects the output a configured backend writes to.
type Platform int

const (
	// PlatformBuild uses the platform this binary was built for
	PlatformBuild Platform = iota
	// PlatformOther builds the chain without any output
	PlatformOther
	// PlatformDesktop writes colored lines to standard output
	PlatformDesktop
	// PlatformMobile writes plain lines to the native console
	PlatformMobile
)

// String returns the name of the platform
func (p Platform) String() string {
	switch p {
	case PlatformBuild:
		return "build"
	case PlatformOther:
		return "other"
	case PlatformDesktop:
		return "desktop"
	case PlatformMobile:
		return "mobile"
	default:
		return "unknown"
	}
}

// BuildPlatform returns the platform selected by build constraints:
// desktop on macOS, mobile on iOS and Android, other everywhere else.
func BuildPlatform() Platform {
	return buildPlatform
}

// ColorMode controls ANSI colors on the desktop platform.
type ColorMode int

const (
	// ColorAuto colors when stdout is a terminal and NO_COLOR is unset
	ColorAuto ColorMode = iota
	// ColorAlways colors unconditionally
	ColorAlways
	// ColorNever never colors
	ColorNever
)

// mobilePrefix marks lines in the shared device console
const mobilePrefix = "[R] "

// ConfigError is returned when the configured backend cannot be installed.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "logonce: " + e.Err.Error()
}

// Unwrap returns the underlying install error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Configurator builds the backend for a level and installs it. The zero
// value targets logger.Default() on the build platform.
type Configurator struct {
	// Facade receives the backend (default: logger.Default())
	Facade *logger.Facade
	// Platform selects the output (default: BuildPlatform())
	Platform Platform
	// Stdout is the desktop output (default: os.Stdout)
	Stdout io.Writer
	// Color controls desktop colors (default: ColorAuto)
	Color ColorMode
	// Console is the mobile native console (default: sink.StderrConsole())
	Console sink.ConsoleWriter
}

// Configure installs a backend filtering at core.LevelFromInt(level).
// Levels outside 1..5 install a backend that admits nothing. Installing
// is the only step that can fail.
func (c *Configurator) Configure(level int) error {
	b := handler.NewDispatchBuilder()

	switch c.platform() {
	case PlatformMobile:
		b.Format(formatter.NewLineFormatter(formatter.Config{Prefix: mobilePrefix})).
			Chain(sink.NewConsoleBridge(c.Console))
	case PlatformDesktop:
		colorize := c.colorize()
		b.Format(formatter.NewLineFormatter(formatter.Config{Colorize: colorize})).
			Chain(c.stdout(colorize))
	default:
		b.Format(formatter.NewLineFormatter(formatter.Config{}))
	}

	b.Level(core.LevelFromInt(level))

	if err := c.facade().Install(b.Build()); err != nil {
		return &ConfigError{Err: errors.Wrap(err, "apply logger config failed")}
	}
	return nil
}

// Configure installs the backend for level into logger.Default() using
// the build platform.
func Configure(level int) error {
	return new(Configurator).Configure(level)
}

func (c *Configurator) facade() *logger.Facade {
	if c.Facade != nil {
		return c.Facade
	}
	return logger.Default()
}

func (c *Configurator) platform() Platform {
	if c.Platform == PlatformBuild {
		return buildPlatform
	}
	return c.Platform
}

func (c *Configurator) colorize() bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if c.Stdout != nil {
		return sink.IsTerminal(c.Stdout)
	}
	return sink.IsTerminal(os.Stdout)
}

func (c *Configurator) stdout(colorize bool) sink.Sink {
	if c.Stdout != nil {
		return sink.NewTerminal(c.Stdout)
	}
	return sink.Stdout(colorize)
}
