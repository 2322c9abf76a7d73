package voice

// Note is a held note.
type Note struct {
	ID       int32
	Pitch    int16
	Tuning   float64 // cents
	Velocity float64 // [0, 1]
}

// Stack holds the currently pressed notes in press order. When full, the
// oldest note is dropped to make room.
type Stack struct {
	notes []Note
}

// DefaultStackSize is the stack capacity used by the engines.
const DefaultStackSize = 128

// NewStack returns a stack with room for capacity notes.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultStackSize
	}
	return &Stack{notes: make([]Note, 0, capacity)}
}

// Push appends a note. Duplicate ids are not checked.
func (s *Stack) Push(n Note) {
	if len(s.notes) == cap(s.notes) {
		copy(s.notes, s.notes[1:])
		s.notes = s.notes[:len(s.notes)-1]
	}
	s.notes = append(s.notes, n)
}

// Remove deletes the first note with id and reports whether one was
// found. Removing an absent id leaves the stack unchanged.
func (s *Stack) Remove(id int32) bool {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Last returns the most recently pushed note still held.
func (s *Stack) Last() (Note, bool) {
	if len(s.notes) == 0 {
		return Note{}, false
	}
	return s.notes[len(s.notes)-1], true
}

// IDs appends the held ids, oldest first, to dst.
func (s *Stack) IDs(dst []int32) []int32 {
	for _, n := range s.notes {
		dst = append(dst, n.ID)
	}
	return dst
}

func (s *Stack) Len() int { return len(s.notes) }

func (s *Stack) Clear() { s.notes = s.notes[:0] }
