// Curve evaluation over an arbitrary number of control points.

package bezier

// MaxSteps is the largest step count Polyline honours.
const MaxSteps = 1 << 16

// Sample computes the point on the curve at parameter t ∈ [0,1].
//
// The caller's slice is never modified. A single control point is returned
// unchanged; an empty list yields the zero Point.
func Sample(points []Point, t float64) Point {
	n := len(points)
	if n == 0 {
		return Point{}
	}

	xs := make([]Point, n)
	copy(xs, points)

	for ; n > 1; n-- {
		for i := 0; i < n-1; i++ {
			xs[i] = xs[i].Lerp(xs[i+1], t)
		}
	}

	return xs[0]
}

// Polyline approximates the curve by sampling it at evenly spaced parameter
// values 0, 1/steps, 2/steps, ... and finally at exactly t=1, so the last
// element is always Sample(points, 1). The result has steps+1 points.
// A step count below 1 is treated as 1 and one above MaxSteps as MaxSteps.
func Polyline(points []Point, steps int) []Point {
	if len(points) == 0 {
		return nil
	}
	steps = ClampSteps(steps)

	result := make([]Point, 0, steps+1)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		result = append(result, Sample(points, t))
	}

	return append(result, Sample(points, 1))
}

// ClampSteps limits a step count to [1, MaxSteps].
func ClampSteps(steps int) int {
	if steps < 1 {
		return 1
	}
	if steps > MaxSteps {
		return MaxSteps
	}
	return steps
}

// Derivative returns the control points of the curve's hodograph.
// For a curve of degree n these are n*(p[i+1]-p[i]).
func Derivative(points []Point) []Point {
	if len(points) < 2 {
		return nil
	}

	n := float64(len(points) - 1)
	result := make([]Point, len(points)-1)
	for i := range result {
		result[i] = points[i+1].Sub(points[i]).Mul(n)
	}
	return result
}

// Tangent computes the (unnormalized) derivative of the curve at t.
// Fewer than two points have no direction and yield the zero Point.
func Tangent(points []Point, t float64) Point {
	return Sample(Derivative(points), t)
}

// Length approximates the arc length of the curve by summing the segments
// of Polyline(points, steps).
func Length(points []Point, steps int) float64 {
	line := Polyline(points, steps)
	if len(line) < 2 {
		return 0
	}

	length := 0.0
	prev := line[0]
	for _, p := range line[1:] {
		length += prev.Distance(p)
		prev = p
	}
	return length
}
