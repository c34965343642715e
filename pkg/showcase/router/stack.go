package router

// StackEntry records a screen to come back to: the screen, the input to rerun it with and
// whatever resume state it left behind (for the pager, the active section).
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Stack is the return path used by transition and error functions. A failure boundary pushes
// the failed screen before routing to the fallback; "Try Again" pops it.
type Stack struct {
	entries []StackEntry
}

func NewStack() *Stack {
	return &Stack{}
}

// Push records a screen to return to and returns the new depth.
func (s *Stack) Push(screen Screen, input, resume any) int {
	s.entries = append(s.entries, StackEntry{Screen: screen, Input: input, Resume: resume})
	return len(s.entries)
}

// Pop removes the most recent entry. ok is false when the stack is empty.
func (s *Stack) Pop() (entry StackEntry, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return StackEntry{}, false
	}
	entry = s.entries[n-1]
	s.entries[n-1] = StackEntry{}
	s.entries = s.entries[:n-1]
	return entry, true
}

// Peek returns the most recent entry without removing it.
func (s *Stack) Peek() (StackEntry, bool) {
	if len(s.entries) == 0 {
		return StackEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Len() int { return len(s.entries) }

func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }

// Clear drops every entry, e.g. when the visitor quits from a fallback.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
