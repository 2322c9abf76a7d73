//go:build amd64 && !purego

package avx512

import (
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/registry"
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/kernel"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,
		New:       newBank,
	})
}

// newBank groups eight partials, one ZMM register of float64.
func newBank(size int) registry.Kernel {
	return kernel.New[[8]float64](size)
}
