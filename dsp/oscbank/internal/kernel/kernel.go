// Package kernel holds the oscillator bank arithmetic, written once over
// fixed-size lane arrays. Each arch package instantiates it with the
// array width matching its vector registers, so the lane loops compile to
// straight-line code of constant trip count.
package kernel

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/oscbank/internal/arch/registry"
)

// Lanes is the set of supported group widths.
type Lanes interface {
	~[1]float64 | ~[2]float64 | ~[4]float64 | ~[8]float64
}

type group[V Lanes] struct {
	// Settings.
	freq, phase, attack, decay, gain V

	// Quadrature oscillator; u is cos, v is sin.
	u, v, k1, k2 V

	// Envelope.
	valueA, alphaA, valueD, alphaD V
}

// Bank implements registry.Kernel for one lane width.
type Bank[V Lanes] struct {
	groups    []group[V]
	size      int
	lanes     int
	norm      float64
	decayGain float64
}

var _ registry.Kernel = (*Bank[[4]float64])(nil)

// New returns a bank with room for size partials, rounded up to whole
// groups. Padding lanes stay silent.
func New[V Lanes](size int) *Bank[V] {
	var z V
	lanes := len(z)
	size = max(size, 1)

	return &Bank[V]{
		groups: make([]group[V], (size+lanes-1)/lanes),
		size:   size,
		lanes:  lanes,
		norm:   1 / float64(size),
	}
}

func (b *Bank[V]) Lanes() int { return b.lanes }
func (b *Bank[V]) Size() int  { return b.size }

func (b *Bank[V]) SetPartial(i int, p registry.Partial) {
	if i < 0 || i >= b.size {
		return
	}
	g := &b.groups[i/b.lanes]
	j := i % b.lanes
	g.freq[j] = p.Frequency
	g.phase[j] = p.Phase
	g.attack[j] = p.Attack
	g.decay[j] = p.Decay
	g.gain[j] = p.Gain
}

func (b *Bank[V]) Start(sampleRate float64) {
	nyquist := sampleRate / 2
	b.decayGain = 1

	for gi := range b.groups {
		g := &b.groups[gi]
		var z V
		for j := 0; j < len(z); j++ {
			f := g.freq[j]
			gain := g.gain[j]
			if f <= 0 || f >= nyquist {
				f, gain = 0, 0
			}

			g.k1[j] = math.Tan(math.Pi * f / sampleRate)
			g.k2[j] = 2 * g.k1[j] / (1 + g.k1[j]*g.k1[j])
			g.v[j], g.u[j] = math.Sincos(g.phase[j])

			g.valueA[j] = 1
			g.alphaA[j] = envelope.SegmentAlpha(sampleRate, g.attack[j])
			g.valueD[j] = 1
			g.alphaD[j] = envelope.SegmentAlpha(sampleRate, g.decay[j])

			if peak := envelope.ADPeak(g.attack[j], g.decay[j]); peak > 0 {
				gain /= peak
			} else {
				gain = 0
			}
			g.gain[j] = gain
		}
	}
}

func (b *Bank[V]) Release(sampleRate, seconds float64) {
	alpha := envelope.SegmentAlpha(sampleRate, seconds)
	for gi := range b.groups {
		g := &b.groups[gi]
		var z V
		for j := 0; j < len(z); j++ {
			g.alphaD[j] = min(g.alphaD[j], alpha)
		}
	}
}

func (b *Bank[V]) process() float64 {
	sum := 0.0
	decayGain := 0.0
	for gi := range b.groups {
		g := &b.groups[gi]
		var z V
		for j := 0; j < len(z); j++ {
			tmp := g.u[j] - g.k1[j]*g.v[j]
			g.v[j] += g.k2[j] * tmp
			g.u[j] = tmp - g.k1[j]*g.v[j]

			g.valueA[j] *= g.alphaA[j]
			g.valueD[j] *= g.alphaD[j]

			decayGain += g.valueD[j]
			sum += g.gain[j] * (1 - g.valueA[j]) * g.valueD[j] * g.v[j]
		}
	}
	b.decayGain = decayGain
	return sum * b.norm
}

func (b *Bank[V]) Add(dst []float64, gain float64) {
	for i := range dst {
		dst[i] += gain * b.process()
	}
}

func (b *Bank[V]) DecayGain() float64 { return b.decayGain }

func (b *Bank[V]) IsTerminated() bool { return b.decayGain <= envelope.Threshold }
