package ddcg

// Scratch is the LIFO scratch-slot allocator used only by cg_binop to
// save a nested left operand's sibling across evaluation (spec.md §4.3).
// It is named storage, not the hardware call stack: allocations persist
// across subroutine calls and are addressed by the nesting cursor alone.
type Scratch struct {
	cursor int
}

// Alloc returns a fresh slot index and bumps the cursor.
func (s *Scratch) Alloc() int {
	n := s.cursor
	s.cursor++
	return n
}

// Free releases the most recently allocated slot. The cursor never goes
// below zero; an attempt to do so is a compiler bug, not a user error.
func (s *Scratch) Free() {
	if s.cursor == 0 {
		panic("ddcg: scratch allocator underflow")
	}
	s.cursor--
}

// Depth reports the current nesting depth (used by tests asserting P2).
func (s *Scratch) Depth() int { return s.cursor }
