package voice

// Kind distinguishes queued events.
type Kind uint8

const (
	NoteOnEvent Kind = iota
	NoteOffEvent
)

// Event is a note event scheduled at a frame offset within the current
// block.
type Event struct {
	Kind     Kind
	Frame    int
	ID       int32
	Pitch    int16
	Tuning   float64
	Velocity float64
}

// Target receives dispatched events.
type Target interface {
	NoteOn(id int32, pitch int16, tuning, velocity float64)
	NoteOff(id int32)
}

// DefaultQueueSize is the event capacity used by the engines.
const DefaultQueueSize = 1024

// Queue buffers the note events of one block. The host pushes events in
// frame order before calling Process; the engine drains them per frame and
// clears the queue at block end. Events beyond the capacity are dropped
// and counted.
type Queue struct {
	events  []Event
	head    int
	dropped int
}

// NewQueue returns a queue with room for capacity events.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &Queue{events: make([]Event, 0, capacity)}
}

// Push enqueues ev and reports whether it fit.
func (q *Queue) Push(ev Event) bool {
	if len(q.events) == cap(q.events) {
		q.dropped++
		return false
	}
	q.events = append(q.events, ev)
	return true
}

// PushNoteOn enqueues a note-on.
func (q *Queue) PushNoteOn(frame int, id int32, pitch int16, tuning, velocity float64) bool {
	return q.Push(Event{Kind: NoteOnEvent, Frame: frame, ID: id, Pitch: pitch, Tuning: tuning, Velocity: velocity})
}

// PushNoteOff enqueues a note-off.
func (q *Queue) PushNoteOff(frame int, id int32) bool {
	return q.Push(Event{Kind: NoteOffEvent, Frame: frame, ID: id})
}

// Pop returns the next event due at or before frame.
func (q *Queue) Pop(frame int) (Event, bool) {
	if q.head >= len(q.events) || q.events[q.head].Frame > frame {
		return Event{}, false
	}
	ev := q.events[q.head]
	q.head++
	return ev, true
}

// Dispatch delivers every event due at or before frame to t.
func (q *Queue) Dispatch(frame int, t Target) {
	for ev, ok := q.Pop(frame); ok; ev, ok = q.Pop(frame) {
		switch ev.Kind {
		case NoteOnEvent:
			t.NoteOn(ev.ID, ev.Pitch, ev.Tuning, ev.Velocity)
		case NoteOffEvent:
			t.NoteOff(ev.ID)
		}
	}
}

// Next returns the frame of the next undelivered event. Engines that
// render in segments use it to find where the current segment ends.
func (q *Queue) Next() (frame int, ok bool) {
	if q.head >= len(q.events) {
		return 0, false
	}
	return q.events[q.head].Frame, true
}

// Pending returns the number of events not yet popped.
func (q *Queue) Pending() int { return len(q.events) - q.head }

// Dropped returns the number of events rejected since construction.
func (q *Queue) Dropped() int { return q.dropped }

// Clear empties the queue. The drop counter is kept.
func (q *Queue) Clear() {
	q.events = q.events[:0]
	q.head = 0
}
