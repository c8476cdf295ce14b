package bezier

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p-o.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Mul scales both coordinates by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Lerp linearly interpolates between p and o.
// The result is exactly p*(1-t) + o*t.
func (p Point) Lerp(o Point, t float64) Point {
	return p.Mul(1 - t).Add(o.Mul(t))
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	d := p.Sub(o)
	return math.Hypot(d.X, d.Y)
}
