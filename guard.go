package logonce

import (
	"sync"
	"sync/atomic"
)

// Guard runs an initialization exactly once. Concurrent first callers are
// serialized: one runs the function, the others wait for it and then see
// the guard done. The guard only becomes done when the function succeeds,
// so a failed initialization can be attempted again by a later call.
type Guard struct {
	done atomic.Bool
	mu   sync.Mutex
}

// Do runs fn unless a previous call already succeeded. It returns fn's
// error, or nil when fn was not run.
func (g *Guard) Do(fn func() error) error {
	if g.done.Load() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done.Load() {
		return nil
	}
	if err := fn(); err != nil {
		return err
	}
	g.done.Store(true)
	return nil
}

// Done reports whether an initialization has succeeded
func (g *Guard) Done() bool {
	return g.done.Load()
}

var processGuard Guard

// ProcessGuard returns the guard Enable uses for the process-wide backend.
func ProcessGuard() *Guard {
	return &processGuard
}
