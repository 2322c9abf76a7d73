package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// ErrInvalidRange is wrapped by every constructor error in this package.
var ErrInvalidRange = errors.New("invalid scale range")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %w", ErrInvalidRange, core.NewConfigurationError("scale", format, args...))
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validateBounds(min, max float64) error {
	if !finite(min, max) {
		return invalid("bounds must be finite: [%f, %f]", min, max)
	}
	if min >= max {
		return invalid("min must be < max: [%f, %f]", min, max)
	}
	return nil
}
