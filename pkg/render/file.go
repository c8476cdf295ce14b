package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ha1tch/bezier-toolkit/pkg/frame"
)

// FileOptions configures WriteFile.
type FileOptions struct {
	Width  int
	Height int
	Labels bool   // PNG only
	Title  string // SVG only
}

// Format returns "png" or "svg" for path's extension.
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".svg":
		return "svg", nil
	default:
		return "", fmt.Errorf("unknown output format: %s", ext)
	}
}

// WriteFile renders one frame with draw into the format picked by path's
// extension and writes it to path. On failure no file is left at path.
func WriteFile(path string, opts FileOptions, draw func(frame.Renderer)) error {
	format, err := Format(path)
	if err != nil {
		return err
	}

	var encode func(io.Writer) error
	switch format {
	case "svg":
		r := NewSVG(SVGOptions{Width: opts.Width, Height: opts.Height, Title: opts.Title})
		draw(r)
		encode = func(w io.Writer) error {
			_, err := r.WriteTo(w)
			return err
		}
	case "png":
		r, err := NewPNG(PNGOptions{Width: opts.Width, Height: opts.Height, Labels: opts.Labels})
		if err != nil {
			return err
		}
		draw(r)
		encode = r.Encode
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
