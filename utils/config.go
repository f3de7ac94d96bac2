package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Generations         int           `json:"generations"`
	Workers             int           `json:"workers"` // <= 0 means one per CPU
	Print               bool          `json:"print"`
	Seed                int64         `json:"seed"`
	RandomDensity       float64       `json:"random_density"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	InjectionCount      int           `json:"injection_count"`
}

// DefaultConfig returns sensible defaults. Width, height and density match
// the classic benchmark configuration: a 2048x1024 board seeded half full.
func DefaultConfig() Config {
	return Config{
		Width:               2048,
		Height:              1024,
		Generations:         100,
		Workers:             0,
		Print:               false,
		Seed:                0,
		RandomDensity:       0.5,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		InjectionCount:      3,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the once-validated inputs the engine itself never guards.
// Zero generations is legal and leaves the board at its seed.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must be >= 0, got %d", c.Generations)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be in [0, 1], got %v", c.RandomDensity)
	}
	return nil
}
