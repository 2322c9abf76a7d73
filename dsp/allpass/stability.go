package allpass

import "math"

// Stability holds three sufficient stability criteria of a lattice
// network with N levels and outer gains g_i:
//
//	S = Σ|g_i|           stable when S < 1
//	T = Σ g_i² / N       stable when T < 1/N
//	A = max |g_i|        stable when A < 1/N
//
// Any one satisfied criterion is enough. A network that satisfies none
// may still be stable, but is not guaranteed to be.
type Stability struct {
	N int

	S          float64
	SumSquares float64
	T          float64
	A          float64

	StableS bool
	StableT bool
	StableA bool
}

// Evaluate computes the criteria for gains scaled by multiplier.
func Evaluate(gains []float64, multiplier float64) Stability {
	var st Stability
	st.accumulate(len(gains), func(i int) float64 { return multiplier * gains[i] })
	return st
}

func (st *Stability) accumulate(n int, gain func(int) float64) {
	*st = Stability{N: n}
	if n == 0 {
		st.StableS, st.StableT, st.StableA = true, true, true
		return
	}

	for i := 0; i < n; i++ {
		g := math.Abs(gain(i))
		st.S += g
		st.SumSquares += g * g
		if g > st.A {
			st.A = g
		}
	}

	fn := float64(n)
	st.T = st.SumSquares / fn
	st.StableS = st.S < 1
	st.StableT = st.T < 1/fn
	st.StableA = st.A < 1/fn
}

// Guaranteed reports whether at least one criterion holds.
func (st Stability) Guaranteed() bool {
	return st.StableS || st.StableT || st.StableA
}
