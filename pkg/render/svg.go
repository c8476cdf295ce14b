package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

// SVGOptions controls SVG rendering.
type SVGOptions struct {
	Width  int
	Height int
	Title  string
}

// SVG is a frame.Renderer that collects SVG elements.
// Markers are emitted after all segments so they stay on top.
type SVG struct {
	opts     SVGOptions
	segments strings.Builder
	markers  strings.Builder
}

var _ frame.Renderer = (*SVG)(nil)

// NewSVG creates an empty SVG document.
func NewSVG(opts SVGOptions) *SVG {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1000, 800
	}
	return &SVG{opts: opts}
}

// DrawSegment implements frame.Renderer.
func (r *SVG) DrawSegment(a, b bezier.Point, s frame.Stroke) {
	class := "curve"
	if s == frame.StrokeHandle {
		class = "handle"
	}
	fmt.Fprintf(&r.segments, `  <line class="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
		class, a.X, a.Y, b.X, b.Y, hex(StrokeColor(s)))
}

// DrawMarker implements frame.Renderer.
func (r *SVG) DrawMarker(p bezier.Point, size float64, selected bool) {
	class := "marker"
	if selected {
		class = "marker selected"
	}
	fmt.Fprintf(&r.markers, `  <rect class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		class, p.X-size/2, p.Y-size/2, size, size, hex(MarkerColor(selected)))
}

// String returns the complete document.
func (r *SVG) String() string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		r.opts.Width, r.opts.Height, r.opts.Width, r.opts.Height)
	if r.opts.Title != "" {
		fmt.Fprintf(&sb, "  <title>%s</title>\n", html.EscapeString(r.opts.Title))
	}
	fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(colorBackground))
	sb.WriteString(r.segments.String())
	sb.WriteString(r.markers.String())
	sb.WriteString("</svg>\n")

	return sb.String()
}

// WriteTo writes the document to w.
func (r *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	if err != nil {
		return int64(n), fmt.Errorf("write svg: %w", err)
	}
	return int64(n), nil
}
