//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/registry"
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/kernel"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  10,
		New:       newBank,
	})
}

// newBank groups partials in pairs, one NEON register of float64.
func newBank(size int) registry.Kernel {
	return kernel.New[[2]float64](size)
}
