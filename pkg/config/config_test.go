package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/bezier-toolkit/pkg/bezier"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bezier.yaml")

	cfg := Default()
	cfg.Capacity = 32
	cfg.MarkerSize = 6
	cfg.Export.FileType = "svg"
	cfg.Export.LastDir = "/tmp/out"
	cfg.Debug = true
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialAndInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bezier.yaml")
	content := "capacity: 12\nstep_count: -4\nexport:\n  file_type: gif\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 12, cfg.Capacity)
	assert.Equal(t, def.StepCount, cfg.StepCount)
	assert.Equal(t, "png", cfg.Export.FileType)
	assert.Equal(t, def.Window, cfg.Window)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bezier.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: [1, 2\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BEZIER_CAPACITY":    "64",
		"BEZIER_MARKER_SIZE": "2.5",
		"BEZIER_DEBUG":       "true",
		"BEZIER_FPS":         "not-a-number",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	err := cfg.ApplyEnv(lookup)
	assert.ErrorContains(t, err, "BEZIER_FPS")

	assert.Equal(t, 64, cfg.Capacity)
	assert.Equal(t, 2.5, cfg.MarkerSize)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 60, cfg.FPS)
}

func TestApplyEnvNormalizes(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		if k == "BEZIER_CAPACITY" {
			return "0", true
		}
		return "", false
	})
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Capacity)
}

func TestStepCountLimit(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		if k == "BEZIER_STEP_COUNT" {
			return "9223372036854775807", true
		}
		return "", false
	})
	require.NoError(t, err)
	assert.Equal(t, bezier.MaxSteps, cfg.StepCount)

	path := filepath.Join(t.TempDir(), "bezier.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step_count: 100000000\n"), 0o644))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, bezier.MaxSteps, loaded.StepCount)
}
