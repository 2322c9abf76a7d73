//go:build amd64 && !purego

package oscbank

import (
	_ "github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/amd64/avx2"   // register AVX2 kernel
	_ "github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/amd64/avx512" // register AVX-512 kernel
	_ "github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/amd64/sse2"   // register SSE2 kernel
	_ "github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/generic"      // register scalar kernel
)
