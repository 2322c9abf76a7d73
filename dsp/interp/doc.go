// Package interp provides the fractional read kernels used by delay lines.
//
//   - [Linear2]:  2-point linear interpolation, the default for modulated delays
//   - [Hermite4]: 4-point cubic Hermite, smoother for slow sweeps
//
// [Mode] selects one of them on a delay line at setup time.
package interp
