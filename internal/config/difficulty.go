package config

import "math"

// ApplyPreset modifies the config based on a difficulty preset. The fixed
// preset keeps the values from the file; the others set the initial level
// and rescale the wall, the bonus chance, and the ball bank from it.
func ApplyPreset(cfg *SteelConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	NewDifficultyManager(cfg.Difficulty).Apply(cfg)
}

// DifficultyManager derives session parameters from a difficulty level.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		level: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetLevel(level float64) {
	d.level = clampF(level, 0.0, 1.0)
}

// Level returns the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.level
}

// Speed scales a wall speed from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(base float64) float64 {
	return base * (1.0 + d.level*d.cfg.Scaling.SpeedMultiplier)
}

// BonusChance lowers the bonus chance as difficulty increases.
func (d *DifficultyManager) BonusChance(base float64) float64 {
	return math.Max(0, base-d.level*d.cfg.Scaling.BonusReduction)
}

// Balls shrinks the starting bank as difficulty increases.
func (d *DifficultyManager) Balls(base int) int {
	result := base - int(math.Round(d.level*float64(d.cfg.Scaling.BallReduction)))
	if result < 1 { // Minimum playable bank
		result = 1
	}
	return result
}

// Apply rescales cfg's wall, bonus chance, and bank for the current level.
func (d *DifficultyManager) Apply(cfg *SteelConfig) {
	cfg.Wall.Speed = d.Speed(cfg.Wall.Speed)
	cfg.Wall.MaxSpeed = d.Speed(cfg.Wall.MaxSpeed)
	cfg.BonusChance = d.BonusChance(cfg.BonusChance)
	cfg.Balls.Bank = d.Balls(cfg.Balls.Bank)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
