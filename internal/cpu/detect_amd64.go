//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// SSE2 is part of the amd64 baseline; the rest come from CPUID.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		Architecture: runtime.GOARCH,
	}
}
