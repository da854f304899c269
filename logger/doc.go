// Package logger is the logging facade applications call.
//
// Calls go through a Facade, which holds at most one backend. Nothing is
// printed until a backend is installed; Install succeeds once per Facade
// and the backend is fixed from then on. The root logonce package installs
// the process-wide backend for Default, so most programs only need
//
//	logonce.Enable(3)
//	logger.Info("ready")
//
// Every entry records its call site. The target of the entry is the import
// path of the calling package unless the logger was created with
// WithTarget:
//
//	log := logger.WithTarget("app::net::server")
//	log.Warnf("retrying in %s", delay)
//
// The level check happens before the entry is built, so calls below the
// installed filter cost one atomic load and a comparison.
package logger
