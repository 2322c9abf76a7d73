// Package engine defines the contract between a host and the synthesis
// and effect engines, plus the host-side helpers built on it: a named
// registry, offline rendering to buffers and WAV files, and a
// beep.Streamer adapter for real-time playback pipelines.
//
// A host calls Setup once per sample rate, Startup before playback, then
// for every block: pushes the block's note events to Queue, calls
// SetParameters, and calls Process. Engines dispatch queued events at
// their frame offsets and clear the queue when the block is done.
package engine
