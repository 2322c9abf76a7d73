//go:build purego || (!amd64 && !arm64)

package oscbank

import (
	_ "github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/generic"
)
