package voice

import (
	"slices"
	"testing"
)

func TestStackTwoVoiceScenario(t *testing.T) {
	s := NewStack(8)
	s.Push(Note{ID: 1, Pitch: 60})
	s.Push(Note{ID: 2, Pitch: 64})

	if got := s.IDs(nil); !slices.Equal(got, []int32{1, 2}) {
		t.Fatalf("got %v want [1 2]", got)
	}

	if !s.Remove(1) {
		t.Fatal("Remove(1) reported absent")
	}
	if got := s.IDs(nil); !slices.Equal(got, []int32{2}) {
		t.Fatalf("got %v want [2]", got)
	}

	if s.Remove(1) {
		t.Fatal("second Remove(1) reported present")
	}
	if got := s.IDs(nil); !slices.Equal(got, []int32{2}) {
		t.Fatalf("got %v want [2]", got)
	}

	last, ok := s.Last()
	if !ok || last.Pitch != 64 {
		t.Fatalf("Last = %+v, %v", last, ok)
	}
}

func TestStackLastNotePriority(t *testing.T) {
	s := NewStack(8)
	s.Push(Note{ID: 1, Pitch: 60})
	s.Push(Note{ID: 2, Pitch: 62})
	s.Push(Note{ID: 3, Pitch: 64})

	s.Remove(3)
	if n, _ := s.Last(); n.Pitch != 62 {
		t.Fatalf("after releasing top: pitch %d want 62", n.Pitch)
	}
	s.Remove(1)
	if n, _ := s.Last(); n.Pitch != 62 {
		t.Fatalf("after releasing bottom: pitch %d want 62", n.Pitch)
	}
	s.Clear()
	if _, ok := s.Last(); ok || s.Len() != 0 {
		t.Fatal("Clear left notes")
	}
}

func TestStackDropsOldestWhenFull(t *testing.T) {
	s := NewStack(3)
	for id := int32(1); id <= 5; id++ {
		s.Push(Note{ID: id})
	}
	if got := s.IDs(nil); !slices.Equal(got, []int32{3, 4, 5}) {
		t.Fatalf("got %v want [3 4 5]", got)
	}
	if cap(s.notes) != 3 {
		t.Fatalf("stack grew to %d", cap(s.notes))
	}
}

func TestAllocatorLifecycle(t *testing.T) {
	a := NewAllocator(2, nil)

	v1, stolen := a.NoteOn(10, 1)
	if v1 != 0 || stolen {
		t.Fatalf("first note: voice %d stolen %v", v1, stolen)
	}
	v2, _ := a.NoteOn(11, 1)
	if v2 != 1 {
		t.Fatalf("second note: voice %d", v2)
	}

	if v, ok := a.NoteOff(10); !ok || v != 0 || a.State(0) != Releasing {
		t.Fatalf("NoteOff: voice %d ok %v state %v", v, ok, a.State(0))
	}
	if _, ok := a.NoteOff(99); ok {
		t.Fatal("unknown note-off reported a voice")
	}

	a.Terminate(0)
	if a.State(0) != Idle || a.Sounding() != 1 {
		t.Fatalf("after Terminate: state %v sounding %d", a.State(0), a.Sounding())
	}

	if v, stolen := a.NoteOn(12, 1); v != 0 || stolen {
		t.Fatalf("reuse idle: voice %d stolen %v", v, stolen)
	}
}

func TestAllocatorRetriggerSameID(t *testing.T) {
	a := NewAllocator(4, nil)
	a.NoteOn(1, 1)
	a.NoteOn(2, 1)
	if v, stolen := a.NoteOn(2, 0.5); v != 1 || stolen {
		t.Fatalf("retrigger: voice %d stolen %v", v, stolen)
	}
}

func TestAllocatorStealsQuietestNonAttacking(t *testing.T) {
	attacking := []bool{false, true, false}
	a := NewAllocator(3, func(v int) bool { return attacking[v] })
	a.NoteOn(1, 0.8)
	a.NoteOn(2, 0.1) // quietest, but attacking
	a.NoteOn(3, 0.5)

	v, stolen := a.NoteOn(4, 1)
	if !stolen || v != 2 {
		t.Fatalf("stole voice %d (stolen %v), want 2", v, stolen)
	}
	if a.ID(2) != 4 || a.State(2) != Active {
		t.Fatalf("voice 2 holds id %d state %v", a.ID(2), a.State(2))
	}

	attacking = []bool{true, true, true}
	if v, _ := a.NoteOn(5, 1); v != 1 {
		t.Fatalf("all attacking: stole voice %d, want quietest 1", v)
	}
}

func TestAllocatorLimit(t *testing.T) {
	a := NewAllocator(4, nil)
	a.SetLimit(2)
	a.NoteOn(1, 1)
	a.NoteOn(2, 0.5)
	if v, stolen := a.NoteOn(3, 1); !stolen || v != 1 {
		t.Fatalf("voice %d stolen %v, want 1 true", v, stolen)
	}
	a.Reset()
	if a.Sounding() != 0 {
		t.Fatal("Reset left voices sounding")
	}
}

type recorder struct {
	log []string
}

func (r *recorder) NoteOn(id int32, pitch int16, tuning, velocity float64) {
	r.log = append(r.log, "on")
}

func (r *recorder) NoteOff(id int32) {
	r.log = append(r.log, "off")
}

func TestQueueDrainsPerFrame(t *testing.T) {
	q := NewQueue(4)
	q.PushNoteOn(0, 1, 60, 0, 1)
	q.PushNoteOn(3, 2, 62, 0, 1)
	q.PushNoteOff(3, 1)

	if _, ok := q.Pop(2); !ok {
		t.Fatal("frame 0 event not due at frame 2")
	}
	if _, ok := q.Pop(2); ok {
		t.Fatal("frame 3 event popped at frame 2")
	}
	if f, ok := q.Next(); !ok || f != 3 {
		t.Fatalf("Next = %d, %v, want 3, true", f, ok)
	}

	var r recorder
	q.Dispatch(3, &r)
	if !slices.Equal(r.log, []string{"on", "off"}) {
		t.Fatalf("dispatched %v", r.log)
	}
	if q.Pending() != 0 {
		t.Fatalf("%d events pending", q.Pending())
	}
	if _, ok := q.Next(); ok {
		t.Fatal("Next reported an event on a drained queue")
	}
}

func TestQueueOverflowDropsAndCounts(t *testing.T) {
	q := NewQueue(2)
	if !q.PushNoteOn(0, 1, 60, 0, 1) || !q.PushNoteOn(0, 2, 60, 0, 1) {
		t.Fatal("push within capacity failed")
	}
	if q.PushNoteOff(1, 1) {
		t.Fatal("push beyond capacity succeeded")
	}
	if q.Dropped() != 1 || q.Pending() != 2 {
		t.Fatalf("dropped %d pending %d", q.Dropped(), q.Pending())
	}

	q.Clear()
	if q.Pending() != 0 || q.Dropped() != 1 {
		t.Fatalf("after Clear: pending %d dropped %d", q.Pending(), q.Dropped())
	}
	if cap(q.events) != 2 {
		t.Fatalf("queue grew to %d", cap(q.events))
	}
}
