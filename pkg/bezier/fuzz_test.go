package bezier

import (
	"math"
	"testing"
)

// FuzzSample checks endpoint interpolation and the convex hull property for
// arbitrary cubics.
// Run with: go test -fuzz=FuzzSample -fuzztime=30s ./pkg/bezier/
func FuzzSample(f *testing.F) {
	f.Add(0.0, 0.0, 0.0, 100.0, 100.0, 100.0, 100.0, 0.0, 0.5)
	f.Add(1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.25)
	f.Add(-50.0, 20.0, 300.0, -7.5, 0.0, 0.0, 12.0, 900.0, 0.999)

	f.Fuzz(func(t *testing.T, ax, ay, bx, by, cx, cy, dx, dy, tt float64) {
		coords := []float64{ax, ay, bx, by, cx, cy, dx, dy}
		for _, v := range coords {
			if math.IsNaN(v) || math.Abs(v) > 1e6 {
				t.Skip()
			}
		}
		if math.IsNaN(tt) || tt < 0 || tt > 1 {
			t.Skip()
		}

		points := []Point{{ax, ay}, {bx, by}, {cx, cy}, {dx, dy}}
		if got := Sample(points, 0); got != points[0] {
			t.Fatalf("Sample(0) = %v, want %v", got, points[0])
		}
		if got := Sample(points, 1); got != points[3] {
			t.Fatalf("Sample(1) = %v, want %v", got, points[3])
		}

		box := Bounds(points)
		box.W += 1e-6
		box.H += 1e-6
		if p := Sample(points, tt); !box.Contains(p) {
			t.Fatalf("Sample(%g) = %v outside %+v", tt, p, box)
		}
	})
}
