package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// parsePoint parses "x,y".
func parsePoint(s string) (bezier.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return bezier.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}

	x, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
	if err != nil {
		return bezier.Point{}, fmt.Errorf("invalid x in %q: %w", s, err)
	}
	y, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
	if err != nil {
		return bezier.Point{}, fmt.Errorf("invalid y in %q: %w", s, err)
	}
	return bezier.Pt(x, y), nil
}

func parsePoints(args []string) ([]bezier.Point, error) {
	points := make([]bezier.Point, 0, len(args))
	for _, a := range args {
		p, err := parsePoint(a)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// parseParam parses a curve parameter t in [0,1].
func parseParam(s string) (float64, error) {
	t, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(t) || t < 0 || t > 1 {
		return 0, fmt.Errorf("invalid parameter %q: want a number in [0,1]", s)
	}
	return t, nil
}

// parseCount parses an integer option value in [1, max].
func parseCount(name, s string, max int) (int, error) {
	n, err := cast.ToIntE(s)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("invalid %s %q: want an integer in [1,%d]", name, s, max)
	}
	return n, nil
}

func formatPoint(p bezier.Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
