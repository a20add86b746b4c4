// Package region orchestrates the generation pipeline and assembles the
// output document. The orchestrator exclusively owns the grid and all
// derived collections for the lifetime of a run.
package region

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds run parameters. Seed nil means "pick one and report it".
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Years    int     `yaml:"years"`
	Seed     *int64  `yaml:"seed"`
	SeaLevel float64 `yaml:"sea_level"`
	Mode     string  `yaml:"mode"`
}

// DefaultConfig returns the standard region parameters.
func DefaultConfig() Config {
	return Config{
		Width:    60,
		Height:   40,
		Years:    400,
		SeaLevel: 0.35,
		Mode:     "continent",
	}
}

// LoadPreset overlays a YAML preset file onto the defaults. Explicit CLI
// flags still override the result.
func LoadPreset(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse preset: %w", err)
	}
	return cfg, nil
}

// Validate rejects degenerate dimensions. Unknown modes are not an error
// here; they fall back to continent with a warning at generator setup.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Years < 0 {
		return fmt.Errorf("years must be non-negative, got %d", c.Years)
	}
	if c.SeaLevel <= 0 || c.SeaLevel >= 1 {
		return fmt.Errorf("sea level must be in (0, 1), got %g", c.SeaLevel)
	}
	return nil
}
