// Package oscbank provides banks of sine partials with exponential
// attack-decay envelopes, the building block of the additive engines.
//
// The bank arithmetic is written once and instantiated per vector width.
// Each width registers itself at init time with the SIMD level it needs;
// Select picks the widest one the CPU supports. Engines select once at
// construction, so the per-sample path never branches on width.
//
// Build with -tags purego to register only the scalar kernel.
package oscbank
