package registry

import (
	"sync"

	"github.com/cwbudde/algo-synth/internal/cpu"
)

// Partial describes one sine partial of a bank.
type Partial struct {
	Frequency float64 // Hz
	Phase     float64 // radians
	Attack    float64 // seconds
	Decay     float64 // seconds
	Gain      float64
}

// Kernel is a bank of quadrature oscillators with exponential AD
// envelopes, processed in groups of Lanes partials.
type Kernel interface {
	// Lanes returns the group width.
	Lanes() int
	// Size returns the number of partials.
	Size() int
	// SetPartial stores the settings of partial i for the next Start.
	SetPartial(i int, p Partial)
	// Start computes coefficients and restarts every envelope.
	Start(sampleRate float64)
	// Release shortens every decay to at most seconds.
	Release(sampleRate, seconds float64)
	// Add accumulates gain times the bank output into dst.
	Add(dst []float64, gain float64)
	// DecayGain returns the sum of the decay envelopes.
	DecayGain() float64
	IsTerminated() bool
}

// NewFn builds a kernel with room for size partials.
type NewFn func(size int) Kernel

// OpEntry is one registered kernel width.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	New       NewFn
}

// OpRegistry stores the available kernel widths.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry filled by the arch packages.
var Global = &OpRegistry{}

// Register adds an entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// ensureSorted orders the entries by priority once after registration.
func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

// Lookup returns the highest-priority entry supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

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

// ListEntries returns a copy of the entries in registration order, or
// priority order once Lookup has run.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Sorted returns a copy of the entries, highest priority first.
func (r *OpRegistry) Sorted() []OpEntry {
	r.ensureSorted()
	return r.ListEntries()
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
