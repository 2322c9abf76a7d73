package envelope

// ExpDecay is a single exponential decay from 1.
type ExpDecay struct {
	value float64
	alpha float64
}

// Reset retriggers the decay.
func (e *ExpDecay) Reset(sampleRate, seconds float64) {
	e.value = 1
	e.alpha = SegmentAlpha(sampleRate, seconds)
}

func (e *ExpDecay) IsTerminated() bool { return e.value <= Threshold }

// Process returns the current value and advances one sample.
func (e *ExpDecay) Process() float64 {
	out := e.value
	e.value *= e.alpha
	return out
}
