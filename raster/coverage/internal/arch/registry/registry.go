// Package registry provides the implementation registry for the coverage
// accumulation kernel.
//
// Architecture-specific implementations register themselves via init()
// functions, and the coverage package uses the registry to select the best
// implementation at runtime based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-raster/internal/cpu"
)

// AccumulateFn converts signed-area deltas in src into alpha bytes in dst,
// starting the running sum at acc and returning the updated sum.
//
// For every index i, the written byte is the truncation of
// clamp(|acc + src[0] + ... + src[i]|, 0, 1) * 255. Implementations must
// process src in strictly increasing index order and may assume
// len(dst) >= len(src); callers validate lengths.
type AccumulateFn func(acc float32, src []float32, dst []uint8) float32

// OpEntry is one registered accumulation kernel implementation.
type OpEntry struct {
	Name       string
	SIMDLevel  cpu.SIMDLevel
	Priority   int
	Accumulate AccumulateFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default accumulation kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
