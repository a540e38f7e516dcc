// Package config provides YAML-based game configuration loading and
// difficulty presets for Steelwall.
package config

// SteelConfig contains all configuration for a Steelwall session.
type SteelConfig struct {
	Wall        WallConfig       `yaml:"wall"`
	Balls       BallConfig       `yaml:"balls"`
	Paddle      PaddleConfig     `yaml:"paddle"`
	BonusChance float64          `yaml:"bonus_chance"` // Percent chance per slot
	Bricks      []BrickConfig    `yaml:"bricks"`
	Bonus       []BrickConfig    `yaml:"bonus"`
	Timing      TimingConfig     `yaml:"timing"`
	Credits     CreditsConfig    `yaml:"credits"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// WallConfig defines how the wall descends and where it starts.
type WallConfig struct {
	Speed         float64 `yaml:"speed"`           // Rows per second at start
	MaxSpeed      float64 `yaml:"max_speed"`       // Rows per second cap
	Growth        float64 `yaml:"growth"`          // Speed multiplier per tick
	BaseRowOffset float64 `yaml:"base_row_offset"` // Height new rows spawn at
	Top           int     `yaml:"top"`             // Highest starting row
	Bottom        int     `yaml:"bottom"`          // Lowest starting row
}

// BallConfig defines the ball bank and ball physics.
type BallConfig struct {
	Bank            int     `yaml:"bank"`
	Speed           float64 `yaml:"speed"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Applied while Speed Ball runs
	BigMultiplier   float64 `yaml:"big_multiplier"`   // Radius scale while Big Ball runs
	Radius          float64 `yaml:"radius"`
	MinVertical     float64 `yaml:"min_vertical"` // Smallest allowed |vy|
	LostBelow       float64 `yaml:"lost_below"`
}

// PaddleConfig defines paddle movement.
type PaddleConfig struct {
	Width            float64 `yaml:"width"`
	Speed            float64 `yaml:"speed"` // Units per second on keyboard
	Limit            float64 `yaml:"limit"` // Max |x| of the paddle centre
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

// BrickConfig describes one brick definition.
type BrickConfig struct {
	Name     string  `yaml:"name"`
	Kind     string  `yaml:"kind"`
	Points   int     `yaml:"points"`
	Weight   int     `yaml:"weight"`
	Glyph    string  `yaml:"glyph"`
	Color    string  `yaml:"color"`
	Duration float64 `yaml:"duration,omitempty"`
	Radius   float64 `yaml:"radius,omitempty"`
	Lifetime float64 `yaml:"lifetime,omitempty"`
	Balls    int     `yaml:"balls,omitempty"`
	Next     string  `yaml:"next,omitempty"`
}

// TimingConfig defines the fades of a session, in seconds.
type TimingConfig struct {
	SceneFadeIn  float64 `yaml:"scene_fade_in"`
	ReadyFadeIn  float64 `yaml:"ready_fade_in"`
	ReadyFadeOut float64 `yaml:"ready_fade_out"`
	EndFade      float64 `yaml:"end_fade"`
	PauseFade    float64 `yaml:"pause_fade"` // Screen fade level, not seconds
}

// Credit is one two-line entry of the credit roll.
type Credit struct {
	Line1 string `yaml:"line1"`
	Line2 string `yaml:"line2"`
}

// CreditsConfig defines the credit roll.
type CreditsConfig struct {
	Roll      []Credit `yaml:"roll"`
	Wait      float64  `yaml:"wait"`
	FadeIn    float64  `yaml:"fade_in"`
	FadeOut   float64  `yaml:"fade_out"`
	Gap       float64  `yaml:"gap"`
	FinalFade float64  `yaml:"final_fade"`
}

// DifficultyConfig defines how a preset scales the session.
type DifficultyConfig struct {
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to wall speed and cap
	BonusReduction  float64 `yaml:"bonus_reduction"`  // Percent taken off bonus_chance
	BallReduction   int     `yaml:"ball_reduction"`   // Balls taken off the bank
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset leaves the file's values alone.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
