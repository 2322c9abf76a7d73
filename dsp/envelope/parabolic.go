package envelope

// ParabolicAD moves a position under constant acceleration, then constant
// braking, up to a peak of 1 and back to 0. curve in (0, 1) sets where
// acceleration turns into braking within each segment.
type ParabolicAD struct {
	sampleRate float64
	counter    uint32
	position   float64
	velocity   float64

	accelA, brakeA float64
	accelD, brakeD float64
	timeA, timeP   uint32
	timeD, timeE   uint32
}

// Setup sets the sample rate.
func (e *ParabolicAD) Setup(sampleRate float64) { e.sampleRate = sampleRate }

// Reset retriggers the envelope from zero.
func (e *ParabolicAD) Reset(attack, attackCurve, decay, decayCurve float64) {
	attackCurve = clampCurve(attackCurve)
	decayCurve = clampCurve(decayCurve)
	attack = max(attack, 1/e.sampleRate)
	decay = max(decay, 1/e.sampleRate)

	e.counter = 0
	e.position = 0
	e.velocity = 0

	fs2 := e.sampleRate * e.sampleRate

	tempA := 2 / (attack * attack) / fs2
	e.accelA = tempA / attackCurve
	e.brakeA = tempA / (1 - attackCurve)
	e.timeA = uint32(attack * attackCurve * e.sampleRate)
	e.timeP = uint32(attack * e.sampleRate)

	tempD := 2 / (decay * decay) / fs2
	e.accelD = tempD / decayCurve
	e.brakeD = tempD / (1 - decayCurve)
	e.timeD = e.timeP + uint32(decay*decayCurve*e.sampleRate)
	e.timeE = e.timeP + uint32(decay*e.sampleRate)
}

func clampCurve(c float64) float64 {
	return min(max(c, 0.01), 0.99)
}

// Terminate jumps to the end of the decay.
func (e *ParabolicAD) Terminate() { e.counter = e.timeE }

// IsTerminated reports whether the decay has finished.
func (e *ParabolicAD) IsTerminated() bool { return e.counter >= e.timeE }

// Process advances one sample.
func (e *ParabolicAD) Process() float64 {
	switch {
	case e.counter < e.timeA:
		e.velocity += e.accelA
	case e.counter < e.timeP:
		e.velocity -= e.brakeA
	case e.counter == e.timeP:
		e.velocity = 0
	case e.counter < e.timeD:
		e.velocity -= e.accelD
	case e.counter < e.timeE && e.position > 0:
		e.velocity += e.brakeD
	default:
		e.counter = e.timeE
		return 0
	}
	e.counter++
	e.position += e.velocity
	return max(e.position, 0)
}
