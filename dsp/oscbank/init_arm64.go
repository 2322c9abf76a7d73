//go:build arm64 && !purego

package oscbank

import (
	_ "github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/generic"
)
