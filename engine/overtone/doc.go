// Package overtone is a polyphonic additive synthesizer. Each voice is a
// bank of Partials sine oscillators with per-partial attack-decay
// envelopes, rendered by the widest oscillator bank kernel the CPU
// supports.
//
// Partial n sounds at pitchMultiply * (n + r + n*r) times the note
// frequency, where r is a per-partial random offset scaled by the random
// frequency amount. A non-zero pitch modulo wraps that ratio.
//
// The mono voice mix feeds a three voice stereo chorus. The chorus mix
// parameter blends it in; at zero both outputs carry the same signal.
package overtone
