//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/registry"
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/kernel"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		New:       newBank,
	})
}

// newBank groups four partials, one YMM register of float64.
func newBank(size int) registry.Kernel {
	return kernel.New[[4]float64](size)
}
