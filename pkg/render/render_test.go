package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/editor"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

func cubicLoop(steps int) *frame.Loop {
	store := editor.NewStore(editor.Options{})
	for _, p := range []bezier.Point{bezier.Pt(20, 20), bezier.Pt(20, 120), bezier.Pt(120, 120), bezier.Pt(120, 20)} {
		store.Append(p)
	}
	return frame.NewLoop(store, frame.Options{StepCount: steps})
}

func near(t *testing.T, want color.RGBA, got color.Color, tol int) {
	t.Helper()
	r, g, b, _ := got.RGBA()
	channels := [][2]int{
		{int(want.R), int(r >> 8)},
		{int(want.G), int(g >> 8)},
		{int(want.B), int(b >> 8)},
	}
	for _, c := range channels {
		d := c[0] - c[1]
		if d < -tol || d > tol {
			t.Errorf("color %v not within %d of %v", got, tol, want)
			return
		}
	}
}

func TestPNGMarker(t *testing.T) {
	r, err := NewPNG(PNGOptions{Width: 100, Height: 100})
	require.NoError(t, err)

	r.DrawMarker(bezier.Pt(30, 30), 10, false)
	r.DrawMarker(bezier.Pt(70, 70), 10, true)

	img := r.Image()
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	near(t, colorMarker, img.At(30, 30), 10)
	near(t, colorSelected, img.At(70, 70), 10)
	near(t, colorBackground, img.At(5, 95), 0)
}

func TestPNGCurve(t *testing.T) {
	r, err := NewPNG(PNGOptions{Width: 160, Height: 160})
	require.NoError(t, err)

	cubicLoop(100).Draw(r)
	img := r.Image()

	// Midpoint of the curve is (70, 95).
	red, _, _, _ := img.At(70, 95).RGBA()
	assert.Less(t, int(red>>8), 200, "curve midpoint should be dark")

	near(t, colorBackground, img.At(150, 150), 0)
}

func TestPNGOffCanvasSegment(t *testing.T) {
	r, err := NewPNG(PNGOptions{Width: 100, Height: 100})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		r.DrawSegment(bezier.Pt(0, 50), bezier.Pt(1e9, 50), frame.StrokeCurve)
		r.DrawSegment(bezier.Pt(-500, -500), bezier.Pt(-10, -400), frame.StrokeCurve)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("drawing a far off-canvas segment did not finish")
	}

	img := r.Image()
	red, _, _, _ := img.At(50, 50).RGBA()
	assert.Less(t, int(red>>8), 200, "visible part of the segment should be drawn")
	near(t, colorBackground, img.At(50, 10), 0)
	near(t, colorBackground, img.At(2, 2), 0)
}

func TestClipLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           [4]float64
		wantOK         bool
	}{
		{"inside", 1, 2, 8, 9, [4]float64{1, 2, 8, 9}, true},
		{"far right", 0, 5, 1e9, 5, [4]float64{0, 5, 10, 5}, true},
		{"crossing", -10, 5, 20, 5, [4]float64{0, 5, 10, 5}, true},
		{"outside left", -10, 0, -1, 9, [4]float64{}, false},
		{"outside parallel", 0, -3, 10, -3, [4]float64{}, false},
		{"infinite", 0, 0, math.Inf(1), 0, [4]float64{}, false},
		{"nan", math.NaN(), 0, 1, 1, [4]float64{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x1, y1, x2, y2, ok := clipLine(tt.x1, tt.y1, tt.x2, tt.y2, 0, 0, 10, 10)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDeltaSlice(t, tt.want[:], []float64{x1, y1, x2, y2}, 1e-9)
			}
		})
	}
}

func TestDrawLineShortDiagonal(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	ctx, err := newRenderContext(img, 1, 12)
	require.NoError(t, err)

	// dx = dy = 0.75: longer than one pixel, but under one pixel per axis.
	drawLine(ctx, 10.9, 10.9, 11.65, 11.65, colorCurve)
	assert.Equal(t, colorCurve, img.RGBAAt(11, 11), "far end of the segment must be stamped")
	assert.Equal(t, colorCurve, img.RGBAAt(10, 11))
}

func TestPNGEncode(t *testing.T) {
	r, err := NewPNG(PNGOptions{Width: 64, Height: 48})
	require.NoError(t, err)
	r.DrawSegment(bezier.Pt(0, 0), bezier.Pt(63, 47), frame.StrokeCurve)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestPNGDefaults(t *testing.T) {
	r, err := NewPNG(PNGOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1000, r.Image().Bounds().Dx())
	assert.Equal(t, 800, r.Image().Bounds().Dy())
}

func TestSVG(t *testing.T) {
	r := NewSVG(SVGOptions{Width: 200, Height: 150, Title: "a <b> & c"})
	lp := cubicLoop(10)
	lp.Store().Press(bezier.Pt(20, 20))
	lp.Draw(r)

	doc := r.String()

	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `width="200" height="150"`)
	assert.Contains(t, doc, "<title>a &lt;b&gt; &amp; c</title>")
	assert.Equal(t, 10, strings.Count(doc, `class="curve"`))
	assert.Equal(t, 3, strings.Count(doc, `class="handle"`))
	assert.Equal(t, 4, strings.Count(doc, `class="marker`))
	assert.Equal(t, 1, strings.Count(doc, `class="marker selected"`))
	assert.Contains(t, doc, `<rect class="marker selected" x="15.00" y="15.00" width="10.00" height="10.00" fill="#ff0000"/>`)

	// Markers come after every segment.
	assert.Greater(t, strings.Index(doc, "<rect class="), strings.LastIndex(doc, "<line"))

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(doc)), n)
	assert.Equal(t, doc, buf.String())
}
