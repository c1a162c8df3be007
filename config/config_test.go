package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/icurves/config"
	"github.com/katalvlaran/icurves/diagram"
	"github.com/katalvlaran/icurves/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
base_radius: 800
ring_size: 24
smooth: false
parallel: true
workers: 3
bbox: [-5000, -5000, 5000, 5000]
strategy: pierced-first
tie_break: centroid
cycle_timeout: 2s
`

const tomlDoc = `
base_radius = 800
ring_size = 24
smooth = false
parallel = true
workers = 3
bbox = [-5000.0, -5000.0, 5000.0, 5000.0]
strategy = "pierced-first"
tie_break = "centroid"
cycle_timeout = "2s"
`

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{"icurves.yaml": yamlDoc, "icurves.toml": tomlDoc} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			f, err := config.Load(path)
			require.NoError(t, err)
			cfg := layout.NewCreator(f.Options()...).Config()

			assert.Equal(t, 800.0, cfg.Geometry.BaseRadius)
			assert.Equal(t, 24, cfg.MED.RingSize)
			assert.Equal(t, 1000.0, cfg.MED.RingMargin)
			assert.False(t, cfg.Smooth)
			assert.True(t, cfg.MED.Parallel)
			assert.Equal(t, 3, cfg.MED.Workers)
			assert.Equal(t, 5000.0, cfg.Geometry.BBox.X1)
			assert.Equal(t, diagram.TieBreakCentroid, cfg.Geometry.TieBreak)
			assert.Equal(t, 2*time.Second, cfg.CycleTimeout)
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, f.Options())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("settings.json")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative radius", "base_radius: -1"},
		{"tiny ring", "ring_size: 2"},
		{"zero workers", "workers: 0"},
		{"inverted bbox", "bbox: [10, 0, 0, 10]"},
		{"unknown strategy", "strategy: outermost"},
		{"unknown tie break", "tie_break: random"},
		{"bad timeout", "cycle_timeout: soon"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Decode([]byte(tc.doc), config.YAML)
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Decode([]byte("radius: 3"), config.YAML)
	require.Error(t, err)
	_, err = config.Decode([]byte("radius = 3"), config.TOML)
	require.Error(t, err)
}
