// Package envelope implements the gain and modulation envelopes used by
// the engines.
//
// The exponential envelopes derive a per-sample multiplier
// alpha = Threshold^(1/(seconds*sampleRate)) at retrigger time, so each
// segment reaches Threshold after exactly the requested time. All
// envelopes are reset in place and never allocate.
package envelope

// Threshold is the level treated as silence.
const Threshold = 1e-5
