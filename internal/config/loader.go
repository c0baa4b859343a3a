package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "bird.yaml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// LoadBird loads the game configuration.
// Search order: customPath -> ~/.bird/configs/bird.yaml -> ./configs/bird.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. Files
// found on the search path are skipped when broken.
func LoadBird(customPath string) (BirdConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(ConfigFile),
		filepath.Join("configs", ConfigFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultBirdYAML)
	if err != nil {
		return DefaultBirdConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the built-in defaults, so a file
// only needs to list the values it changes.
func Parse(data []byte) (BirdConfig, error) {
	cfg := DefaultBirdConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (BirdConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultBirdConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bird", "configs", filename)
}

// Validate rejects configurations the simulation cannot run.
func (c BirdConfig) Validate() error {
	physics := []struct {
		name  string
		value float64
	}{
		{"gravity", c.Physics.Gravity},
		{"max_velocity", c.Physics.MaxVelocity},
		{"flap_impulse", c.Physics.FlapImpulse},
		{"step_ms", c.Physics.StepMs},
	}
	for _, f := range physics {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: physics.%s must be finite, got %v", ErrInvalid, f.name, f.value)
		}
	}

	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Physics.StepMs <= 0:
		return fmt.Errorf("%w: physics.step_ms must be positive, got %v", ErrInvalid, c.Physics.StepMs)
	case c.Physics.Advance != 1:
		// Collision is a plane check at the wall's exact x; advancing more than
		// one cell per step could skip the plane.
		return fmt.Errorf("%w: physics.advance must be 1, got %d", ErrInvalid, c.Physics.Advance)
	case c.Physics.Gravity < 0 || c.Physics.FlapImpulse < 0:
		return fmt.Errorf("%w: gravity and flap_impulse must not be negative", ErrInvalid)
	case c.Walls.GapCenterMin >= c.Walls.GapCenterMax:
		return fmt.Errorf("%w: empty gap band [%d, %d)", ErrInvalid, c.Walls.GapCenterMin, c.Walls.GapCenterMax)
	case c.Walls.GapCenterMin < 0 || c.Walls.GapCenterMax > c.Screen.Height:
		return fmt.Errorf("%w: gap band [%d, %d) outside screen height %d",
			ErrInvalid, c.Walls.GapCenterMin, c.Walls.GapCenterMax, c.Screen.Height)
	case c.Walls.MinGap <= 0:
		return fmt.Errorf("%w: walls.min_gap must be positive, got %d", ErrInvalid, c.Walls.MinGap)
	case c.Walls.BaseGap < c.Walls.MinGap:
		return fmt.Errorf("%w: walls.base_gap %d below min_gap %d", ErrInvalid, c.Walls.BaseGap, c.Walls.MinGap)
	case c.Player.StartX < 0 || c.Player.StartX >= c.Screen.Width:
		// The first wall is placed at the screen width and must start ahead of the player.
		return fmt.Errorf("%w: player.start_x %d outside [0, %d)", ErrInvalid, c.Player.StartX, c.Screen.Width)
	case c.Player.StartY < 0 || c.Player.StartY > c.Screen.Height:
		return fmt.Errorf("%w: player.start_y %d outside screen", ErrInvalid, c.Player.StartY)
	}
	return nil
}
