// Package allpass implements Schroeder allpass sections and nested
// (lattice) networks built from them.
//
// A network whose feedback gains are too large self-oscillates. That state
// is reachable by design: Stability reports three sufficient criteria, and
// nothing in this package limits the gains.
package allpass
