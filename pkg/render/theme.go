// Package render draws editor frames to PNG and SVG.
//
// Both renderers implement frame.Renderer, so a frame.Loop can draw into
// them exactly as it draws into an interactive front end.
package render

import (
	"fmt"
	"image/color"

	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

// Colors used in rendering
var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorCurve      = color.RGBA{0, 0, 0, 255}
	colorHandle     = color.RGBA{98, 181, 246, 255} // #2196f3 at 70% over white
	colorMarker     = color.RGBA{0, 105, 192, 255}  // #0069c0
	colorSelected   = color.RGBA{255, 0, 0, 255}
	colorLabel      = color.RGBA{51, 51, 51, 255} // #333
)

// StrokeColor is the line color for a stroke kind.
func StrokeColor(s frame.Stroke) color.RGBA {
	if s == frame.StrokeHandle {
		return colorHandle
	}
	return colorCurve
}

// MarkerColor is the fill color of a control point marker.
func MarkerColor(selected bool) color.RGBA {
	if selected {
		return colorSelected
	}
	return colorMarker
}

// BackgroundColor is the canvas fill.
func BackgroundColor() color.RGBA {
	return colorBackground
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
