package config

// DifficultyManager derives wall gap sizes from the score.
// The gap shrinks by one cell per wall passed until it reaches the floor.
type DifficultyManager struct {
	baseGap int
	minGap  int
}

// NewDifficultyManager creates a difficulty manager for the given walls config.
func NewDifficultyManager(cfg WallsConfig) *DifficultyManager {
	return &DifficultyManager{
		baseGap: cfg.BaseGap,
		minGap:  cfg.MinGap,
	}
}

// GapSize returns max(minGap, baseGap - score).
func (d *DifficultyManager) GapSize(score int) int {
	gap := d.baseGap - score
	if gap < d.minGap {
		return d.minGap
	}
	return gap
}

// FloorScore returns the first score at which the gap is at its minimum.
func (d *DifficultyManager) FloorScore() int {
	if d.baseGap <= d.minGap {
		return 0
	}
	return d.baseGap - d.minGap
}

// Level returns how far difficulty has progressed, from 0.0 at score 0 to
// 1.0 once the gap floor is reached.
func (d *DifficultyManager) Level(score int) float64 {
	floor := d.FloorScore()
	if floor == 0 {
		return 1.0
	}
	progress := float64(score) / float64(floor)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// ApplyPreset adjusts gap sizing and physics cadence for a preset.
// The gap formula itself is unchanged; presets only move its inputs.
func ApplyPreset(cfg *BirdConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Walls.BaseGap += 4
		cfg.Physics.StepMs *= 1.2
	case DifficultyHard:
		cfg.Walls.BaseGap -= 4
		cfg.Physics.StepMs *= 0.8
	case DifficultyNormal:
	default:
		return
	}

	if cfg.Walls.BaseGap < cfg.Walls.MinGap {
		cfg.Walls.BaseGap = cfg.Walls.MinGap
	}
	cfg.Difficulty.Preset = string(preset)
}
