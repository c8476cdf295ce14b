package main

import (
	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

// pointer turns per-tick cursor polling into the press/move/release events
// a frame.Loop expects.
type pointer struct {
	last bezier.Point
	seen bool
}

// events returns the events for one tick in delivery order. Motion comes
// first so a release lands the point where the button went up.
func (p *pointer) events(pos bezier.Point, pressed, released bool) []frame.Event {
	var evs []frame.Event
	if !p.seen || pos != p.last {
		evs = append(evs, frame.Event{Kind: frame.Move, Pos: pos})
		p.last, p.seen = pos, true
	}
	if pressed {
		evs = append(evs, frame.Event{Kind: frame.Press, Pos: pos})
	}
	if released {
		evs = append(evs, frame.Event{Kind: frame.Release, Pos: pos})
	}
	return evs
}
