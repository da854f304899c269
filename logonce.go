// Package logonce configures the process-wide logging backend, once.
//
//	func main() {
//	    logonce.Enable(3) // Info and above
//	    logger.Info("started")
//	}
//
// Enable takes a numeric level: 1 Trace, 2 Debug, 3 Info, 4 Warn, 5 Error.
// Any other value installs a backend that drops everything. The first call
// wins; every later call, from any goroutine and with any level, does
// nothing.
//
// The backend formats lines as
//
//	2024-03-09 14:05:06.789  INFO server:42     --- listening
//
// and writes them where the build platform expects: colored to standard
// output on macOS, to the native console on iOS and Android. Other
// platforms get a backend without an output.
//
// Records from log/slog, zap, logrus and zerolog can join the same output
// through the adapters in the bridge package.
package logonce

import (
	"os"

	"github.com/philipp01105/logonce/core"
)

// EnvLevel names the variable EnableFromEnv reads.
const EnvLevel = "LOGONCE_LEVEL"

// Enable installs the process-wide backend at level on first call and is a
// no-op afterwards. It panics with a *ConfigError if the backend cannot be
// installed, e.g. because something else already installed one into
// logger.Default().
func Enable(level int) {
	enable(&processGuard, new(Configurator), level)
}

func enable(g *Guard, c *Configurator, level int) {
	if err := g.Do(func() error { return c.Configure(level) }); err != nil {
		panic(err)
	}
}

// TryEnable is Enable returning the install error instead of panicking.
func TryEnable(level int) error {
	return processGuard.Do(func() error { return Configure(level) })
}

// EnableFromEnv calls Enable with the level in LOGONCE_LEVEL, given as a
// number or a level name. An unset or unknown value disables logging.
func EnableFromEnv() {
	Enable(LevelFromEnv())
}

// LevelFromEnv returns the numeric level in LOGONCE_LEVEL, 0 when unset
// or not recognised.
func LevelFromEnv() int {
	return core.ParseLevel(os.Getenv(EnvLevel)).Int()
}
