// Native PNG rendering for editor frames.
// Renders at 4x and downsamples for smoother lines.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

const supersample = 4

// PNGOptions configures PNG rendering.
type PNGOptions struct {
	Width    int
	Height   int
	Labels   bool // draw the index of each control point next to its marker
	FontSize int
}

// DefaultPNGOptions returns sensible defaults for PNG rendering.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Width:    1000,
		Height:   800,
		Labels:   true,
		FontSize: 12,
	}
}

// renderContext holds rendering parameters including scale
type renderContext struct {
	img       *image.RGBA
	scale     float64   // multiplier for line thickness, marker size, etc.
	lineWidth float64   // base line width (scaled)
	face      font.Face // font face for labels
}

func newRenderContext(img *image.RGBA, scale, fontSize int) (*renderContext, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(fontSize * scale),
		DPI:     72,
		Hinting: font.HintingNone, // supersampled instead
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}

	return &renderContext{
		img:       img,
		scale:     float64(scale),
		lineWidth: float64(scale) * 1.5,
		face:      face,
	}, nil
}

// PNG is a frame.Renderer that rasterizes into an in-memory image.
type PNG struct {
	opts    PNGOptions
	ctx     *renderContext
	markers int // markers drawn so far, used for index labels
}

var _ frame.Renderer = (*PNG)(nil)

// NewPNG creates a blank white canvas.
func NewPNG(opts PNGOptions) (*PNG, error) {
	def := DefaultPNGOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.FontSize <= 0 {
		opts.FontSize = def.FontSize
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width*supersample, opts.Height*supersample))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	ctx, err := newRenderContext(img, supersample, opts.FontSize)
	if err != nil {
		return nil, err
	}
	return &PNG{opts: opts, ctx: ctx}, nil
}

// DrawSegment implements frame.Renderer.
func (r *PNG) DrawSegment(a, b bezier.Point, s frame.Stroke) {
	k := r.ctx.scale
	drawLine(r.ctx, a.X*k, a.Y*k, b.X*k, b.Y*k, StrokeColor(s))
}

// DrawMarker implements frame.Renderer.
func (r *PNG) DrawMarker(p bezier.Point, size float64, selected bool) {
	k := r.ctx.scale
	fillRect(r.ctx, p.X*k, p.Y*k, size*k, MarkerColor(selected))

	if r.opts.Labels {
		label := strconv.Itoa(r.markers)
		drawText(r.ctx, int((p.X+size)*k), int((p.Y-size/2)*k), label, colorLabel)
	}
	r.markers++
}

// Image downsamples the canvas to the requested size.
func (r *PNG) Image() *image.RGBA {
	final := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), r.ctx.img, r.ctx.img.Bounds(), draw.Over, nil)
	return final
}

// Encode writes the frame as PNG.
func (r *PNG) Encode(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// fillRect fills a square of the given side centered on (cx, cy).
func fillRect(ctx *renderContext, cx, cy, side float64, c color.Color) {
	half := side / 2
	rect := image.Rect(
		int(math.Round(cx-half)), int(math.Round(cy-half)),
		int(math.Round(cx+half)), int(math.Round(cy+half)),
	)
	draw.Draw(ctx.img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawLine draws a line between two points with thickness from context.
// Only the part of the line that can touch the canvas is rasterized.
func drawLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	img := ctx.img
	halfThick := ctx.lineWidth / 2

	b := img.Bounds()
	x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2,
		float64(b.Min.X)-halfThick-1, float64(b.Min.Y)-halfThick-1,
		float64(b.Max.X)+halfThick+1, float64(b.Max.Y)+halfThick+1)
	if !ok {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				img.Set(int(x1+tx), int(y1+ty), c)
			}
		}
		return
	}

	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps < 1 {
		steps = 1
	}
	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t

		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// clipLine clips the segment to the rectangle [minX,maxX]x[minY,maxY]
// (Liang-Barsky). ok is false when no part of the segment lies inside or a
// coordinate is not finite.
func clipLine(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	for _, v := range [...]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}

	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// drawText draws text with its left edge at x and vertically centered on y.
func drawText(ctx *renderContext, x, y int, text string, c color.Color) {
	ascent := ctx.face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y + ascent/2)},
	}
	d.DrawString(text)
}
