package oscbank

import (
	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/registry"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

// Partial describes one sine partial.
type Partial = registry.Partial

// Kernel is a bank instance of a fixed width.
type Kernel = registry.Kernel

// Factory creates banks of the selected width.
type Factory struct {
	entry *registry.OpEntry
}

// Name returns the kernel name, e.g. "avx2".
func (f Factory) Name() string { return f.entry.Name }

// Level returns the SIMD level the kernel was registered for.
func (f Factory) Level() cpu.SIMDLevel { return f.entry.SIMDLevel }

// New returns a bank with room for size partials.
func (f Factory) New(size int) Kernel { return f.entry.New(size) }

// Select returns the highest-priority kernel supported by features. It
// fails with a configuration error when no kernel is registered or the
// best one is narrower than floor.
func Select(features cpu.Features, floor cpu.SIMDLevel) (Factory, error) {
	entry := registry.Global.Lookup(features)
	if entry == nil {
		return Factory{}, core.NewConfigurationError("oscbank", "no kernel registered for %s", features.Architecture)
	}
	if !entry.SIMDLevel.Meets(floor) {
		return Factory{}, core.NewConfigurationError("oscbank",
			"best kernel %s (%v) is below the required SIMD floor %v", entry.Name, entry.SIMDLevel, floor)
	}
	return Factory{entry: entry}, nil
}

// Detect selects against the running CPU.
func Detect(floor cpu.SIMDLevel) (Factory, error) {
	return Select(cpu.DetectFeatures(), floor)
}

// Kernels lists the registered kernel names in priority order.
func Kernels() []string {
	entries := registry.Global.Sorted()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
