// Package config provides YAML-based game configuration loading and
// difficulty management for tui-bird.
package config

// BirdConfig contains all tunable parameters of the game.
type BirdConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Walls      WallsConfig      `yaml:"walls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the logical play field in cells.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the actor physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	MaxVelocity float64 `yaml:"max_velocity"`
	FlapImpulse float64 `yaml:"flap_impulse"`
	StepMs      float64 `yaml:"step_ms"`
	Advance     int     `yaml:"advance"`
}

// PlayerConfig defines where a run starts.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// WallsConfig defines wall placement and gap sizing.
type WallsConfig struct {
	GapCenterMin int `yaml:"gap_center_min"` // Inclusive
	GapCenterMax int `yaml:"gap_center_max"` // Exclusive
	BaseGap      int `yaml:"base_gap"`
	MinGap       int `yaml:"min_gap"`
}

// DifficultyConfig records which preset the config was tuned for.
type DifficultyConfig struct {
	Preset string `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// Unknown or empty values return ok=false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
