package voice

import "math"

// State is the lifecycle state of a voice.
type State uint8

const (
	Idle State = iota
	Active
	Releasing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Releasing:
		return "releasing"
	default:
		return "unknown"
	}
}

type slot struct {
	id    int32
	state State
	gain  float64
}

// Allocator assigns note ids to a fixed set of voices.
//
// NoteOn prefers a voice already playing the same id, then the first idle
// voice. When every voice is busy it steals the quietest voice that is not
// in its attack, or the quietest voice overall if all are attacking.
// Loudness is the gain passed to NoteOn, or the last SetGain.
type Allocator struct {
	slots     []slot
	limit     int
	attacking func(voice int) bool
}

// NewAllocator returns an allocator for n voices. attacking reports
// whether a voice is still in its attack segment; nil treats every voice
// as past its attack.
func NewAllocator(n int, attacking func(voice int) bool) *Allocator {
	if n < 1 {
		n = 1
	}
	return &Allocator{slots: make([]slot, n), limit: n, attacking: attacking}
}

// Len returns the number of voices.
func (a *Allocator) Len() int { return len(a.slots) }

// SetLimit restricts allocation to the first n voices. Voices above the
// limit keep playing until terminated.
func (a *Allocator) SetLimit(n int) {
	a.limit = min(max(n, 1), len(a.slots))
}

// NoteOn returns the voice to (re)trigger for id and whether a sounding
// voice was stolen.
func (a *Allocator) NoteOn(id int32, gain float64) (voice int, stolen bool) {
	voice = -1
	for i := 0; i < a.limit; i++ {
		if a.slots[i].state != Idle && a.slots[i].id == id {
			voice = i
			break
		}
		if voice < 0 && a.slots[i].state == Idle {
			voice = i
		}
	}

	if voice < 0 {
		voice = a.quietest()
		stolen = true
	}

	a.slots[voice] = slot{id: id, state: Active, gain: gain}
	return voice, stolen
}

func (a *Allocator) quietest() int {
	best, bestAny := -1, 0
	bestGain, bestAnyGain := math.Inf(1), math.Inf(1)
	for i := 0; i < a.limit; i++ {
		g := a.slots[i].gain
		if g < bestAnyGain {
			bestAny, bestAnyGain = i, g
		}
		if a.attacking != nil && a.attacking(i) {
			continue
		}
		if g < bestGain {
			best, bestGain = i, g
		}
	}
	if best < 0 {
		return bestAny
	}
	return best
}

// NoteOff moves the active voice playing id to Releasing and returns it.
// An unknown id returns -1 and false.
func (a *Allocator) NoteOff(id int32) (int, bool) {
	for i := range a.slots {
		if a.slots[i].state == Active && a.slots[i].id == id {
			a.slots[i].state = Releasing
			return i, true
		}
	}
	return -1, false
}

// SetGain updates the loudness used to pick a voice to steal.
func (a *Allocator) SetGain(voice int, gain float64) {
	if voice >= 0 && voice < len(a.slots) {
		a.slots[voice].gain = gain
	}
}

// Terminate returns a voice to Idle.
func (a *Allocator) Terminate(voice int) {
	if voice >= 0 && voice < len(a.slots) {
		a.slots[voice] = slot{}
	}
}

func (a *Allocator) State(voice int) State { return a.slots[voice].state }

func (a *Allocator) ID(voice int) int32 { return a.slots[voice].id }

// Sounding returns the number of voices not Idle.
func (a *Allocator) Sounding() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].state != Idle {
			n++
		}
	}
	return n
}

// Reset returns every voice to Idle.
func (a *Allocator) Reset() {
	clear(a.slots)
}
