package main

import (
	"math"
	"strconv"
	"testing"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    bezier.Point
		wantErr bool
	}{
		{"1,2", bezier.Pt(1, 2), false},
		{" -3.5 , 4e2 ", bezier.Pt(-3.5, 400), false},
		{"0,0", bezier.Pt(0, 0), false},
		{"1", bezier.Point{}, true},
		{"1,2,3", bezier.Point{}, true},
		{"a,2", bezier.Point{}, true},
		{"1,b", bezier.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePointsStopsAtFirstError(t *testing.T) {
	if _, err := parsePoints([]string{"1,1", "oops", "2,2"}); err == nil {
		t.Error("expected error")
	}

	got, err := parsePoints([]string{"1,1", "2,2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != bezier.Pt(2, 2) {
		t.Errorf("parsePoints = %v", got)
	}
}

func TestFormatPoint(t *testing.T) {
	if got := formatPoint(bezier.Pt(50, 75.5)); got != "50,75.5" {
		t.Errorf("formatPoint = %q", got)
	}
}

func TestParseParam(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0", 0, false},
		{"0.5", 0.5, false},
		{"1", 1, false},
		{"-0.1", 0, true},
		{"2", 0, true},
		{"NaN", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseParam(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseParam(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseParam(%q) = %g, want %g", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"100", 100, false},
		{strconv.Itoa(bezier.MaxSteps), bezier.MaxSteps, false},
		{strconv.Itoa(bezier.MaxSteps + 1), 0, true},
		{strconv.Itoa(math.MaxInt), 0, true},
		{"0", 0, true},
		{"-4", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCount("step count", tt.in, bezier.MaxSteps)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
