package osc

import "math"

const (
	defaultSlope      = 8.0
	defaultPulseWidth = 0.5
	maxPTROrder       = 5
	minPTROrder       = 2
)

// ptrSegments holds, per order, the polynomial pieces of the transition
// region in ascending powers of n = phase/tick. Beyond the last piece the
// ramp is linear: T*(2n - order).
var ptrSegments = [maxPTROrder + 1][][]float64{
	2: {
		{0, 0, 0, 1.0 / 3},
		{2.0 / 3, -2, 2, -1.0 / 3},
	},
	3: {
		{0, 0, 0, 0, 1.0 / 12},
		{-1.0 / 4, 1, -3.0 / 2, 1, -1.0 / 6},
		{15.0 / 4, -7, 9.0 / 2, -1, 1.0 / 12},
	},
	4: {
		{0, 0, 0, 0, 0, 1.0 / 60},
		{1.0 / 15, -1.0 / 3, 2.0 / 3, -2.0 / 3, 1.0 / 3, -1.0 / 20},
		{-47.0 / 15, 23.0 / 3, -22.0 / 3, 10.0 / 3, -2.0 / 3, 1.0 / 20},
		{196.0 / 15, -58.0 / 3, 32.0 / 3, -8.0 / 3, 1.0 / 3, -1.0 / 60},
	},
	5: {
		{0, 0, 0, 0, 0, 0, 1.0 / 360},
		{-1.0 / 72, 1.0 / 12, -5.0 / 24, 5.0 / 18, -5.0 / 24, 1.0 / 12, -1.0 / 90},
		{127.0 / 72, -21.0 / 4, 155.0 / 24, -25.0 / 6, 35.0 / 24, -1.0 / 4, 1.0 / 60},
		{-1331.0 / 72, 141.0 / 4, -655.0 / 24, 65.0 / 6, -55.0 / 24, 1.0 / 4, -1.0 / 90},
		{2765.0 / 72, -601.0 / 12, 625.0 / 24, -125.0 / 18, 25.0 / 24, -1.0 / 12, 1.0 / 360},
	},
}

// ptrRamp evaluates the band-limited ramp of the given order at phi.
func ptrRamp(order int, phi, tick float64) float64 {
	n := phi / tick
	if n < 0 {
		return 0
	}
	if n >= float64(order) {
		return tick * (2*n - float64(order))
	}

	coeffs := ptrSegments[order][int(n)]
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*n + coeffs[i]
	}
	return tick * acc
}

// Trapezoid is an anti-aliased trapezoid oscillator. Slope sets the edge
// steepness (1 gives a triangle), pulse width the length of the top
// plateau as a fraction of the period. The output is roughly in [-1, 1]
// with the DC offset removed.
type Trapezoid struct {
	sampleRate float64
	phase      float64
	tick       float64
	slope      float64
	pw         float64
}

// NewTrapezoid returns an oscillator at freqHz.
func NewTrapezoid(sampleRate, freqHz float64) *Trapezoid {
	o := &Trapezoid{sampleRate: sampleRate, slope: defaultSlope, pw: defaultPulseWidth}
	o.SetFreq(freqHz)
	return o
}

// SetSampleRate changes the rate and keeps the frequency.
func (o *Trapezoid) SetSampleRate(sampleRate float64) {
	hz := o.tick * o.sampleRate
	o.sampleRate = sampleRate
	o.SetFreq(hz)
}

// SetFreq sets the frequency. Negative values are ignored.
func (o *Trapezoid) SetFreq(hz float64) {
	if hz < 0 || o.sampleRate <= 0 {
		return
	}
	o.tick = math.Min(hz/o.sampleRate, 0.5)
}

func (o *Trapezoid) SetPhase(phase float64)   { o.phase = phase }
func (o *Trapezoid) AddPhase(phase float64)   { o.phase += phase }
func (o *Trapezoid) SetSlope(slope float64)   { o.slope = slope }
func (o *Trapezoid) SetPulseWidth(pw float64) { o.pw = pw }
func (o *Trapezoid) Reset()                   { o.phase = 0 }

// Process advances one sample.
func (o *Trapezoid) Process() float64 {
	if o.tick <= 0 {
		return 0
	}
	o.phase += o.tick
	o.phase -= math.Floor(o.phase)
	return trapezoidPTR(o.phase, o.tick, o.slope, o.pw)
}

func trapezoidPTR(phase, tick, slope, pw float64) float64 {
	order := maxPTROrder
	if lim := int(0.25 / tick); lim < order {
		order = max(lim, minPTROrder)
	}
	ptrLen := float64(order) * tick

	slope = min(max(slope, 1), 0.25/ptrLen)

	if maxPw := 1 - 1/slope; pw > maxPw {
		pw = math.Max(0, maxPw)
	}

	y := 1 - 2*slope*ptrLen
	dc := (y*y + pw*slope*y) / (2*y + slope - 1)

	rise := 0.25 / slope
	top := 0.5 / slope
	switch {
	case phase <= rise:
		return slope*ptrRamp(order, phase, tick) - dc
	case phase <= top:
		return y - slope*ptrRamp(order, top-phase, tick) - dc
	case phase <= top+pw:
		return y - dc
	case phase <= 0.75/slope+pw:
		return y - slope*ptrRamp(order, phase-top-pw, tick) - dc
	case phase <= 1/slope+pw:
		return slope*ptrRamp(order, 1/slope+pw-phase, tick) - dc
	}
	return -dc
}
