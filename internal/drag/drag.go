// Package drag holds the begin/update/end state of a pointer drag.
//
// A Session records what is being dragged and the grab offset: the delta
// between the pointer and the dragged value at the moment the drag began.
// Every update recomputes the value as pointer minus grab, so the dragged
// item does not jump to the cursor.
package drag

import (
	"fmt"

	"github.com/gogpu/vecedit"
)

// Session is a single drag slot. K identifies the dragged target and T is
// the grab offset type. The zero value is an idle session.
type Session[K comparable, T any] struct {
	active bool
	target K
	grab   T
}

// Begin starts a drag of target with the given grab offset.
// It fails with vecedit.ErrState when a drag is already in progress.
func (s *Session[K, T]) Begin(target K, grab T) error {
	if s.active {
		return fmt.Errorf("drag: begin while dragging %v: %w", s.target, vecedit.ErrState)
	}
	s.active = true
	s.target = target
	s.grab = grab
	return nil
}

// Grab returns the target and grab offset of the active drag.
func (s *Session[K, T]) Grab() (K, T, error) {
	if !s.active {
		var k K
		var g T
		return k, g, fmt.Errorf("drag: update without begin: %w", vecedit.ErrState)
	}
	return s.target, s.grab, nil
}

// End finishes the active drag and returns its target.
func (s *Session[K, T]) End() (K, error) {
	if !s.active {
		var k K
		return k, fmt.Errorf("drag: end without begin: %w", vecedit.ErrState)
	}
	k := s.target
	s.Reset()
	return k, nil
}

// Reset drops any drag in progress without reporting an error.
func (s *Session[K, T]) Reset() {
	var zero Session[K, T]
	*s = zero
}

// Active reports whether a drag is in progress.
func (s *Session[K, T]) Active() bool {
	return s.active
}

// Target returns the dragged target, if any.
func (s *Session[K, T]) Target() (K, bool) {
	return s.target, s.active
}
