// Package config loads and saves the settings shared by the bezier tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

// Config holds persistent settings.
type Config struct {
	Capacity       int     `yaml:"capacity"`         // maximum control points
	MarkerSize     float64 `yaml:"marker_size"`      // hit box / marker side length
	StepCount      int     `yaml:"step_count"`       // curve samples per frame
	MinCurvePoints int     `yaml:"min_curve_points"` // points before the curve is drawn
	FPS            int     `yaml:"fps"`
	Window         Window  `yaml:"window"`
	Export         Export  `yaml:"export"`
	Debug          bool    `yaml:"debug"`
}

// Window is the size of the drawing surface in pixels.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Export holds snapshot settings.
type Export struct {
	FileType string `yaml:"file_type"` // "png" or "svg"
	LastDir  string `yaml:"last_dir"`
}

// Default returns default configuration
func Default() Config {
	cwd, _ := os.Getwd()
	return Config{
		Capacity:       256,
		MarkerSize:     10,
		StepCount:      100,
		MinCurvePoints: 4,
		FPS:            60,
		Window:         Window{Width: 1000, Height: 800},
		Export:         Export{FileType: "png", LastDir: cwd},
	}
}

// Path returns the path to the config file
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bezier.yaml"
	}
	return filepath.Join(home, ".bezier.yaml")
}

// Load reads configuration from path. A missing file yields the defaults.
// Values that are out of range fall back to their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// Save writes configuration to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	content := append([]byte("# bezier configuration\n"), data...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides settings from BEZIER_* variables found by lookup
// (normally os.LookupEnv). Unparseable values are reported and skipped.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	setInt := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := cast.ToIntE(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	setInt("BEZIER_CAPACITY", &c.Capacity)
	setInt("BEZIER_STEP_COUNT", &c.StepCount)
	setInt("BEZIER_MIN_CURVE_POINTS", &c.MinCurvePoints)
	setInt("BEZIER_FPS", &c.FPS)

	if v, ok := lookup("BEZIER_MARKER_SIZE"); ok {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("BEZIER_MARKER_SIZE: %w", err))
		} else {
			c.MarkerSize = f
		}
	}
	if v, ok := lookup("BEZIER_DEBUG"); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("BEZIER_DEBUG: %w", err))
		} else {
			c.Debug = b
		}
	}

	c.normalize()
	return errors.Join(errs...)
}

func (c *Config) normalize() {
	def := Default()

	if c.Capacity <= 0 {
		c.Capacity = def.Capacity
	}
	if c.MarkerSize <= 0 {
		c.MarkerSize = def.MarkerSize
	}
	if c.StepCount <= 0 {
		c.StepCount = def.StepCount
	}
	if c.StepCount > bezier.MaxSteps {
		c.StepCount = bezier.MaxSteps
	}
	if c.MinCurvePoints <= 0 {
		c.MinCurvePoints = def.MinCurvePoints
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window = def.Window
	}
	if c.Export.FileType != "png" && c.Export.FileType != "svg" {
		c.Export.FileType = def.Export.FileType
	}
	if c.Export.LastDir == "" {
		c.Export.LastDir = def.Export.LastDir
	}
}
