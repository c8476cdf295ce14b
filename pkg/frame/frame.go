// Package frame drives a Store one frame at a time.
//
// A frame has two phases. Update applies every pointer event queued since the
// previous frame, in delivery order. Draw then reads the store once and hands
// markers, handle lines and the sampled curve to a Renderer. Sampling never
// interleaves with event processing, so everything mutated by a frame's
// events is visible to that frame's draw.
package frame

import (
	"github.com/sgostarter/i/l"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/editor"
)

const (
	DefaultMinCurvePoints = 4
	DefaultStepCount      = 100
)

// EventKind identifies a pointer event.
type EventKind int

const (
	Press EventKind = iota
	Move
	Release
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	}
	return "unknown"
}

// Event is an abstract pointer event. Pos is ignored for Release.
type Event struct {
	Kind EventKind
	Pos  bezier.Point
}

// Stroke tells a renderer which kind of segment it is drawing.
type Stroke int

const (
	StrokeHandle Stroke = iota // line between consecutive control points
	StrokeCurve                // piece of the sampled curve
)

// Renderer receives the drawing primitives for one frame.
type Renderer interface {
	DrawSegment(a, b bezier.Point, s Stroke)
	DrawMarker(p bezier.Point, size float64, selected bool)
}

// Options configures a Loop.
type Options struct {
	MinCurvePoints int // points needed before handles and curve are drawn (0 = 4)
	StepCount      int // curve samples per frame (0 = 100)
	Logger         l.Wrapper
}

// Loop queues pointer events and runs the per-frame phases against a store.
type Loop struct {
	logger l.Wrapper
	store  *editor.Store
	opts   Options
	queue  []Event
}

// NewLoop creates a loop driving store.
func NewLoop(store *editor.Store, opts Options) *Loop {
	if opts.Logger == nil {
		opts.Logger = l.NewNopLoggerWrapper()
	}
	if opts.MinCurvePoints <= 0 {
		opts.MinCurvePoints = DefaultMinCurvePoints
	}
	if opts.StepCount <= 0 {
		opts.StepCount = DefaultStepCount
	}

	return &Loop{
		logger: opts.Logger.WithFields(l.StringField(l.ClsKey, "frameLoop")),
		store:  store,
		opts:   opts,
	}
}

// Store returns the store the loop drives.
func (lp *Loop) Store() *editor.Store {
	return lp.store
}

// Post queues an event for the next Update.
func (lp *Loop) Post(ev Event) {
	lp.queue = append(lp.queue, ev)
}

// Pending returns the number of queued events.
func (lp *Loop) Pending() int {
	return len(lp.queue)
}

// Update applies all queued events in order and empties the queue.
func (lp *Loop) Update() {
	for _, ev := range lp.queue {
		lp.apply(ev)
	}
	lp.queue = lp.queue[:0]
}

func (lp *Loop) apply(ev Event) {
	switch ev.Kind {
	case Press:
		lp.store.Press(ev.Pos)
	case Move:
		lp.store.Move(ev.Pos)
	case Release:
		lp.store.Release()
	default:
		lp.logger.WithFields(l.IntField("kind", int(ev.Kind))).Error("unknown event kind")
	}
}

// CurveVisible reports whether the store holds enough points for the curve
// and handle lines to be drawn.
func (lp *Loop) CurveVisible() bool {
	return lp.store.Len() >= lp.opts.MinCurvePoints
}

// Draw emits the current frame to r: markers first, then handle lines and
// the curve once enough points exist.
func (lp *Loop) Draw(r Renderer) {
	points := lp.store.Points()
	selected, _ := lp.store.Selection()
	size := lp.store.MarkerSize()

	for i, p := range points {
		r.DrawMarker(p, size, i == selected)
	}

	if !lp.CurveVisible() {
		return
	}

	for i := 0; i < len(points)-1; i++ {
		r.DrawSegment(points[i], points[i+1], StrokeHandle)
	}

	line := lp.store.CurvePolyline(lp.opts.StepCount)
	for i := 0; i < len(line)-1; i++ {
		r.DrawSegment(line[i], line[i+1], StrokeCurve)
	}
}

// Step runs one full frame: Update, then Draw.
func (lp *Loop) Step(r Renderer) {
	lp.Update()
	lp.Draw(r)
}
