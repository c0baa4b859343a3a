package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultBirdYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultBirdConfig() {
		t.Errorf("embedded defaults differ from DefaultBirdConfig():\n%+v\n%+v", cfg, DefaultBirdConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadBirdCustomPath(t *testing.T) {
	path := writeFile(t, "bird.yaml", `
walls:
  base_gap: 30
physics:
  step_ms: 50
`)

	cfg, err := LoadBird(path)
	if err != nil {
		t.Fatalf("LoadBird() failed: %v", err)
	}
	if cfg.Walls.BaseGap != 30 {
		t.Errorf("BaseGap = %d, expected 30", cfg.Walls.BaseGap)
	}
	if cfg.Physics.StepMs != 50 {
		t.Errorf("StepMs = %v, expected 50", cfg.Physics.StepMs)
	}
	// Unlisted values keep their defaults
	if cfg.Walls.MinGap != 4 || cfg.Screen.Height != 50 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadBirdMissingCustomPath(t *testing.T) {
	_, err := LoadBird(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadBird() should fail for a missing custom file")
	}
}

func TestLoadBirdMalformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "walls: [this is not a map")
	if _, err := LoadBird(path); err == nil {
		t.Fatal("LoadBird() should fail for malformed YAML")
	}
}

func TestLoadBirdInvalid(t *testing.T) {
	path := writeFile(t, "invalid.yaml", `
physics:
  advance: 2
`)
	_, err := LoadBird(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("LoadBird() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BirdConfig)
	}{
		{"zero width", func(c *BirdConfig) { c.Screen.Width = 0 }},
		{"zero step", func(c *BirdConfig) { c.Physics.StepMs = 0 }},
		{"advance two", func(c *BirdConfig) { c.Physics.Advance = 2 }},
		{"negative gravity", func(c *BirdConfig) { c.Physics.Gravity = -1 }},
		{"empty band", func(c *BirdConfig) { c.Walls.GapCenterMax = c.Walls.GapCenterMin }},
		{"band below screen", func(c *BirdConfig) { c.Walls.GapCenterMax = 60 }},
		{"zero min gap", func(c *BirdConfig) { c.Walls.MinGap = 0 }},
		{"base below min", func(c *BirdConfig) { c.Walls.BaseGap = 2 }},
		{"start outside", func(c *BirdConfig) { c.Player.StartY = -1 }},
		{"start left of screen", func(c *BirdConfig) { c.Player.StartX = -1 }},
		{"start past first wall", func(c *BirdConfig) { c.Player.StartX = c.Screen.Width }},
		{"start far past first wall", func(c *BirdConfig) { c.Player.StartX = 120 }},
		{"nan step", func(c *BirdConfig) { c.Physics.StepMs = math.NaN() }},
		{"infinite step", func(c *BirdConfig) { c.Physics.StepMs = math.Inf(1) }},
		{"infinite gravity", func(c *BirdConfig) { c.Physics.Gravity = math.Inf(1) }},
		{"nan flap", func(c *BirdConfig) { c.Physics.FlapImpulse = math.NaN() }},
		{"infinite cap", func(c *BirdConfig) { c.Physics.MaxVelocity = math.Inf(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBirdConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParsedConfigRejected(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"start behind first wall", "player:\n  start_x: 120\n"},
		{"nan step", "physics:\n  step_ms: .nan\n"},
		{"infinite gravity", "physics:\n  gravity: .inf\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
