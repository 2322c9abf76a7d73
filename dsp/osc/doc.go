// Package osc provides per-sample oscillators: a polynomial transition
// region (PTR) trapezoid, a quadrature sine, a two-pole sine recursion
// and a tempo-aware LFO.
//
// Oscillators hold no buffers and never allocate in Process.
package osc
