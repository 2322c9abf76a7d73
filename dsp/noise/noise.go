// Package noise provides seeded noise sources and a slew rate limiter.
// Generators are reproducible for a given seed and do not allocate after
// construction.
package noise

import "math/rand/v2"

const (
	gaussianSigma = 0.3
	seedStream    = 0x9e3779b97f4a7c15
	brownStep     = 0.01
)

// White produces uniform or gaussian white noise.
type White struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewWhite returns a generator seeded with seed.
func NewWhite(seed uint64) *White {
	src := rand.NewPCG(seed, seedStream)
	return &White{src: src, rng: rand.New(src)}
}

// Seed restarts the sequence.
func (w *White) Seed(seed uint64) { w.src.Seed(seed, seedStream) }

// Uniform returns a value in [-1, 1).
func (w *White) Uniform() float64 { return 2*w.rng.Float64() - 1 }

// Gaussian returns a normal deviate with standard deviation 0.3.
func (w *White) Gaussian() float64 { return gaussianSigma * w.rng.NormFloat64() }

// Brown is a bounded random walk in [0, 1]. Drift in [0, 1] scales the
// step size; zero holds the current value.
type Brown struct {
	white *White
	drift float64
	value float64
}

// NewBrown returns a walk starting at 0.5.
func NewBrown(seed uint64, drift float64) *Brown {
	return &Brown{white: NewWhite(seed), drift: drift, value: 0.5}
}

func (b *Brown) SetDrift(drift float64) { b.drift = drift }

// Seed restarts the sequence at 0.5.
func (b *Brown) Seed(seed uint64) {
	b.white.Seed(seed)
	b.value = 0.5
}

// Process advances one step. The walk reflects at the bounds.
func (b *Brown) Process() float64 {
	b.value += brownStep * b.drift * b.white.Uniform()
	if b.value > 1 {
		b.value = 2 - b.value
	} else if b.value < 0 {
		b.value = -b.value
	}
	return b.value
}

// RateLimiter bounds the rate of change of a signal, in units per second.
type RateLimiter struct {
	dt   float64
	y1   float64
	rise float64
	fall float64
}

// NewRateLimiter returns a limiter with symmetric 10000 units/s slew.
func NewRateLimiter(sampleRate float64) *RateLimiter {
	r := &RateLimiter{rise: 10000, fall: -10000}
	r.Setup(sampleRate)
	return r
}

func (r *RateLimiter) Setup(sampleRate float64) { r.dt = 1 / sampleRate }

func (r *RateLimiter) Reset() { r.y1 = 0 }

// SetRate sets the slew limits. rising should be positive and falling
// negative; the signs are corrected otherwise.
func (r *RateLimiter) SetRate(rising, falling float64) {
	if rising < 0 {
		rising = -rising
	}
	if falling > 0 {
		falling = -falling
	}
	r.rise, r.fall = rising, falling
}

// Process limits one sample.
func (r *RateLimiter) Process(input float64) float64 {
	rate := (input - r.y1) / r.dt
	switch {
	case rate > r.rise:
		r.y1 += r.dt * r.rise
	case rate < r.fall:
		r.y1 += r.dt * r.fall
	default:
		r.y1 = input
	}
	return r.y1
}
