// Package editor holds the interactive control-point store behind the curve
// editors: the ordered point list, the current selection, and the
// press/move/release state machine that mutates them.
package editor

import (
	"github.com/sgostarter/i/l"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

const (
	DefaultCapacity   = 256
	DefaultMarkerSize = 10.0
)

// Options configures a Store.
type Options struct {
	Capacity   int     // maximum number of control points (0 = DefaultCapacity)
	MarkerSize float64 // side length of a point's hit box (0 = DefaultMarkerSize)
	Logger     l.Wrapper
}

// Store owns the ordered control points and the current selection.
//
// Every operation is total: appending past capacity and moving without a
// selection leave the store unchanged. A Store is not safe for concurrent
// use; it is meant to be driven from a single event loop.
type Store struct {
	logger l.Wrapper

	points     []bezier.Point // len is the point count, cap is the capacity
	selected   int            // -1 = none
	markerSize float64

	revision uint64
	curves   *polylineCache
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = l.NewNopLoggerWrapper()
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.MarkerSize <= 0 {
		opts.MarkerSize = DefaultMarkerSize
	}

	return &Store{
		logger:     opts.Logger.WithFields(l.StringField(l.ClsKey, "controlPointStore")),
		points:     make([]bezier.Point, 0, opts.Capacity),
		selected:   -1,
		markerSize: opts.MarkerSize,
		curves:     newPolylineCache(),
	}
}

// Len returns the number of control points.
func (s *Store) Len() int {
	return len(s.points)
}

// Cap returns the maximum number of control points.
func (s *Store) Cap() int {
	return cap(s.points)
}

// MarkerSize returns the side length of the hit box around each point.
func (s *Store) MarkerSize() float64 {
	return s.markerSize
}

// Points returns a copy of the control points in insertion order.
func (s *Store) Points() []bezier.Point {
	result := make([]bezier.Point, len(s.points))
	copy(result, s.points)
	return result
}

// Selection returns the selected index, if any.
func (s *Store) Selection() (int, bool) {
	return s.selected, s.selected >= 0
}

// Revision is bumped by every mutation of the point list.
func (s *Store) Revision() uint64 {
	return s.revision
}

// HitTest returns the lowest index whose hit box contains pos. Earlier
// points win when boxes overlap.
func (s *Store) HitTest(pos bezier.Point) (int, bool) {
	for i, p := range s.points {
		if bezier.HitBox(p, s.markerSize).Contains(pos) {
			return i, true
		}
	}
	return -1, false
}

// Append adds p at the end of the list. It reports false, leaving the store
// unchanged, when the list is already at capacity.
func (s *Store) Append(p bezier.Point) bool {
	if len(s.points) == cap(s.points) {
		s.logger.WithFields(l.IntField("capacity", cap(s.points))).Debug("append rejected: capacity reached")
		return false
	}

	s.points = append(s.points, p)
	s.touch()
	return true
}

// MoveSelected replaces the selected point with p. It reports false when
// nothing is selected.
func (s *Store) MoveSelected(p bezier.Point) bool {
	if s.selected < 0 {
		return false
	}

	s.points[s.selected] = p
	s.touch()
	return true
}

// ClearSelection drops the current selection.
func (s *Store) ClearSelection() {
	s.selected = -1
}

// CurvePolyline samples the curve through all control points. Results are
// cached until the next mutation.
func (s *Store) CurvePolyline(steps int) []bezier.Point {
	if len(s.points) == 0 {
		return nil
	}
	if line, ok := s.curves.get(s.revision, steps); ok {
		return line
	}

	line := bezier.Polyline(s.points, steps)
	s.curves.put(s.revision, steps, line)
	return line
}

func (s *Store) touch() {
	s.revision++
	s.curves.flush()
}
