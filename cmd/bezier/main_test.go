package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/editor"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

func TestRunCommandDrag(t *testing.T) {
	store := editor.NewStore(editor.Options{})

	script := []string{
		"press 10,10",
		"press 10,10",
		"move 40,50",
		"release",
		"bogus",
		"move nope",
	}
	for _, line := range script {
		if runCommand(store, strings.Fields(line), 10) {
			t.Fatalf("%q asked to quit", line)
		}
	}

	pts := store.Points()
	if len(pts) != 1 || pts[0] != bezier.Pt(40, 50) {
		t.Errorf("points = %v, want [(40, 50)]", pts)
	}
	if _, ok := store.Selection(); ok {
		t.Error("selection survived release")
	}

	if !runCommand(store, []string{"quit"}, 10) {
		t.Error("quit did not quit")
	}
}

func TestRenderFile(t *testing.T) {
	store := editor.NewStore(editor.Options{})
	for _, p := range []bezier.Point{bezier.Pt(10, 10), bezier.Pt(10, 90), bezier.Pt(90, 90), bezier.Pt(90, 10)} {
		store.Append(p)
	}
	loop := frame.NewLoop(store, frame.Options{StepCount: 8})
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "curve.svg")
	if err := renderFile(loop, svgPath, 100, 100, false); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), `class="curve"`); n != 8 {
		t.Errorf("svg has %d curve segments, want 8", n)
	}

	pngPath := filepath.Join(dir, "curve.png")
	if err := renderFile(loop, pngPath, 100, 100, true); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(pngPath); err != nil || fi.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}

	gifPath := filepath.Join(dir, "curve.gif")
	if err := renderFile(loop, gifPath, 100, 100, true); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := os.Stat(gifPath); !os.IsNotExist(err) {
		t.Errorf("unknown format left a file behind: stat err = %v", err)
	}
}
