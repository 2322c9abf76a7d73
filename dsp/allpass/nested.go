package allpass

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Branch holds the per-sample settings of one nesting level.
type Branch struct {
	Seconds   float64
	OuterFeed float64 // in [-1, 1]
	InnerFeed float64 // in [-1, 1]
}

// Nested is a lattice of Schroeder sections. Level i feeds back its own
// previous output through OuterFeed and wraps level i+1 inside its
// section.
type Nested struct {
	Branches []Branch

	in       []float64
	buffer   []float64
	sections []Section
}

// NewNested returns a network with depth levels.
func NewNested(depth int) (*Nested, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("nesting depth must be > 0: %d", depth)
	}
	return &Nested{
		Branches: make([]Branch, depth),
		in:       make([]float64, depth),
		buffer:   make([]float64, depth),
		sections: make([]Section, depth),
	}, nil
}

// Depth returns the number of nesting levels.
func (n *Nested) Depth() int { return len(n.sections) }

// Setup allocates every level for maxTime seconds.
func (n *Nested) Setup(sampleRate, maxTime float64) error {
	for i := range n.sections {
		if err := n.sections[i].Setup(sampleRate, maxTime); err != nil {
			return err
		}
	}
	n.Reset()
	return nil
}

// Reset clears all state and branch settings.
func (n *Nested) Reset() {
	core.Zero(n.in)
	core.Zero(n.buffer)
	for i := range n.sections {
		n.sections[i].Reset()
		n.Branches[i] = Branch{}
	}
}

// ClearState silences the network but keeps the branch settings.
func (n *Nested) ClearState() {
	core.Zero(n.in)
	core.Zero(n.buffer)
	for i := range n.sections {
		n.sections[i].Reset()
	}
}

// Process runs one sample through the network.
func (n *Nested) Process(input, sampleRate float64) float64 {
	for i := range n.in {
		input -= n.Branches[i].OuterFeed * n.buffer[i]
		n.in[i] = input
	}

	out := n.in[len(n.in)-1]
	for i := len(n.sections) - 1; i >= 0; i-- {
		b := &n.Branches[i]
		n.buffer[i] = n.sections[i].Process(out, sampleRate, b.Seconds, b.InnerFeed) + b.OuterFeed*n.in[i]
		out = n.buffer[i]
	}
	return out
}

// Stability evaluates the outer feedback gains scaled by multiplier.
func (n *Nested) Stability(multiplier float64) Stability {
	var st Stability
	st.accumulate(len(n.Branches), func(i int) float64 { return multiplier * n.Branches[i].OuterFeed })
	return st
}
