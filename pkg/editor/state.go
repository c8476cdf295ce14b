package editor

import (
	"github.com/sgostarter/i/l"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// State is the pointer-interaction state of a Store.
type State int

const (
	StateIdle     State = iota // no selection
	StateDragging              // a point is selected and follows the pointer
)

func (st State) String() string {
	switch st {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}

// State reports whether a point is being dragged.
func (s *Store) State() State {
	if s.selected >= 0 {
		return StateDragging
	}
	return StateIdle
}

// Press handles a pointer press at pos. A press on an existing point selects
// it; a press on empty space appends a new, unselected point. The same rule
// applies while dragging, so a stray press re-hit-tests.
func (s *Store) Press(pos bezier.Point) {
	if i, ok := s.HitTest(pos); ok {
		s.selected = i
		s.logger.WithFields(l.IntField("index", i)).Debug("point selected")
		return
	}

	s.selected = -1
	s.Append(pos)
}

// Move handles pointer motion. Only the dragging state reacts to it.
func (s *Store) Move(pos bezier.Point) {
	s.MoveSelected(pos)
}

// Release ends a drag.
func (s *Store) Release() {
	s.ClearSelection()
}
