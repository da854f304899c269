package handler

import (
	"sync/atomic"

	"github.com/philipp01105/logonce/core"
)

// Stats tracks dispatch statistics
type Stats struct {
	// filtered counts entries rejected by the level filter, per level
	filtered [core.OffLevel]atomic.Uint64
	// ProcessedTotal counts lines handed to sinks
	ProcessedTotal atomic.Uint64
	// FormatErrors counts entries the formatter rejected
	FormatErrors atomic.Uint64
	// WriteErrors counts failed sink writes
	WriteErrors atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementFiltered atomically increments the filtered counter for a level
func (s *Stats) IncrementFiltered(level core.Level) {
	if level.Valid() {
		s.filtered[level].Add(1)
	}
}

// GetFiltered returns the filtered count for a level
func (s *Stats) GetFiltered(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.filtered[level].Load()
}

// GetTotalFiltered returns the filtered count across all levels
func (s *Stats) GetTotalFiltered() uint64 {
	var total uint64
	for i := range s.filtered {
		total += s.filtered[i].Load()
	}
	return total
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Filtered       map[core.Level]uint64
	ProcessedTotal uint64
	FormatErrors   uint64
	WriteErrors    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	filtered := make(map[core.Level]uint64, len(s.filtered))
	for l := core.TraceLevel; l < core.OffLevel; l++ {
		filtered[l] = s.GetFiltered(l)
	}
	return Snapshot{
		Filtered:       filtered,
		ProcessedTotal: s.ProcessedTotal.Load(),
		FormatErrors:   s.FormatErrors.Load(),
		WriteErrors:    s.WriteErrors.Load(),
	}
}
