// Package voice manages note events and voices: a note stack for
// last-note priority, a fixed-size voice allocator with stealing, and a
// preallocated per-block event queue.
//
// None of the types allocate after construction and none are safe for
// concurrent use; they belong to the audio thread.
package voice
