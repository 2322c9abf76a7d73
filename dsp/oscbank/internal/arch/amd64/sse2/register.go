//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/registry"
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/kernel"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		New:       newBank,
	})
}

// newBank groups partials in pairs, one XMM register of float64.
func newBank(size int) registry.Kernel {
	return kernel.New[[2]float64](size)
}
