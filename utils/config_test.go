package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2048, cfg.Width)
	assert.Equal(t, 1024, cfg.Height)
	assert.Equal(t, 0.5, cfg.RandomDensity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"width": 120,
		"height": 80,
		"generations": 250,
		"workers": 4,
		"random_density": 0.3,
		"frame_rate": 100000000
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
	assert.Equal(t, 250, cfg.Generations)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 0.3, cfg.RandomDensity)
	assert.Equal(t, 100*time.Millisecond, cfg.FrameRate)

	// Unspecified fields keep their defaults.
	assert.Equal(t, DefaultConfig().StagnationThreshold, cfg.StagnationThreshold)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero generations is a no-op, not an error", mutate: func(c *Config) { c.Generations = 0 }, wantErr: false},
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }, wantErr: true},
		{name: "negative height", mutate: func(c *Config) { c.Height = -3 }, wantErr: true},
		{name: "negative generations", mutate: func(c *Config) { c.Generations = -1 }, wantErr: true},
		{name: "density above one", mutate: func(c *Config) { c.RandomDensity = 1.5 }, wantErr: true},
		{name: "negative density", mutate: func(c *Config) { c.RandomDensity = -0.1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
