package engine

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Block helpers for the final stage of an engine. All slices passed to
// one call must have equal length.

// ApplyGain scales buf in place.
func ApplyGain(buf []float64, gain float64) {
	vecmath.ScaleBlockInPlace(buf, gain)
}

// ApplyGainCurve multiplies buf by a per-sample gain, typically the
// output of a smoother rendered for the block.
func ApplyGainCurve(buf, curve []float64) {
	vecmath.MulBlockInPlace(buf, curve)
}

// MixCurves writes dry*dryCurve + wet*wetCurve to dst, with both gains
// given per sample. wet is scaled in place. dst may alias dry.
func MixCurves(dst, dry, wet, dryCurve, wetCurve []float64) {
	vecmath.MulBlockInPlace(wet, wetCurve)
	vecmath.MulAddBlock(dst, dry, dryCurve, wet)
}

// FoldMono writes (a + b) / 2 to dst.
func FoldMono(dst, a, b []float64) {
	vecmath.AddMulBlock(dst, a, b, 0.5)
}

// Finish applies the safety clamp to every output channel.
func Finish(out [][]float64, frames int) {
	for _, ch := range out {
		core.ClampBlock(ch[:frames])
	}
}

// Peak returns the largest absolute sample over all channels.
func Peak(out [][]float64) float64 {
	peak := 0.0
	for _, ch := range out {
		peak = max(peak, vecmath.MaxAbs(ch))
	}
	return peak
}
