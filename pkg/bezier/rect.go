package bezier

import "math"

// Rect represents an axis-aligned rectangle.
type Rect struct {
	X, Y float64 // Center
	W, H float64 // Full width and height
}

// HitBox returns the square of the given side length centered on p.
func HitBox(p Point, side float64) Rect {
	return Rect{X: p.X, Y: p.Y, W: side, H: side}
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{r.X - r.W/2, r.Y - r.H/2}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Point) bool {
	lo, hi := r.Min(), r.Max()
	return lo.X <= p.X && p.X <= hi.X && lo.Y <= p.Y && p.Y <= hi.Y
}

// Bounds returns the bounding box of the control polygon. A Bézier curve
// never leaves the convex hull of its control points, so the box also
// contains every sample of the curve.
func Bounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y

	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	return Rect{
		X: (minX + maxX) / 2,
		Y: (minY + maxY) / 2,
		W: maxX - minX,
		H: maxY - minY,
	}
}
