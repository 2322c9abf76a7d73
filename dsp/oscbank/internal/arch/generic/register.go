package generic

import (
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/registry"
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/kernel"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		New:       newBank,
	})
}

// newBank processes one partial per step.
func newBank(size int) registry.Kernel {
	return kernel.New[[1]float64](size)
}
