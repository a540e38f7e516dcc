package config

import (
	_ "embed"
)

//go:embed defaults/steelwall.yaml
var defaultSteelYAML []byte

// DefaultSteelYAML returns the embedded default configuration file.
func DefaultSteelYAML() []byte {
	return defaultSteelYAML
}

// DefaultSteelConfig returns the default Steelwall configuration.
func DefaultSteelConfig() SteelConfig {
	return SteelConfig{
		Wall: WallConfig{
			Speed:         0.05,
			MaxSpeed:      0.3,
			Growth:        1.0001,
			BaseRowOffset: 14,
			Top:           14,
			Bottom:        6,
		},
		Balls: BallConfig{
			Bank:            6,
			Speed:           10,
			SpeedMultiplier: 2,
			BigMultiplier:   3,
			Radius:          0.25,
			MinVertical:     3,
			LostBelow:       -5,
		},
		Paddle: PaddleConfig{
			Width:            3,
			Speed:            24,
			Limit:            9.966174,
			MouseSensitivity: 1,
		},
		BonusChance: 10,
		Bricks: []BrickConfig{
			{Name: "steel", Kind: "normal", Points: 10, Weight: 60, Glyph: "▓", Color: "gray", Next: "cracked"},
			{Name: "cracked", Kind: "normal", Points: 5, Weight: 0, Glyph: "▒", Color: "dark_gray"},
			{Name: "copper", Kind: "normal", Points: 20, Weight: 25, Glyph: "▓", Color: "orange"},
			{Name: "gold", Kind: "normal", Points: 50, Weight: 8, Glyph: "▓", Color: "bright_yellow"},
			{Name: "bomb", Kind: "bomb", Points: 25, Weight: 4, Glyph: "●", Color: "red", Radius: 4},
			{Name: "tnt", Kind: "tnt", Points: 25, Weight: 3, Glyph: "T", Color: "bright_red", Radius: 2.5, Lifetime: 0.1},
		},
		Bonus: []BrickConfig{
			{Name: "speed", Kind: "speed", Points: 15, Weight: 25, Glyph: "»", Color: "bright_cyan", Duration: 10},
			{Name: "big_ball", Kind: "big_ball", Points: 15, Weight: 25, Glyph: "O", Color: "bright_green", Duration: 10},
			{Name: "glow", Kind: "glow", Points: 15, Weight: 15, Glyph: "*", Color: "bright_magenta", Duration: 8},
			{Name: "bonus_balls", Kind: "bonus_balls", Points: 15, Weight: 20, Glyph: "+", Color: "bright_white", Balls: 3},
			{Name: "wall_stopper", Kind: "wall_stopper", Points: 15, Weight: 15, Glyph: "■", Color: "bright_blue", Duration: 5},
		},
		Timing: TimingConfig{
			SceneFadeIn:  2,
			ReadyFadeIn:  2,
			ReadyFadeOut: 2,
			EndFade:      2,
			PauseFade:    0.7,
		},
		Credits: CreditsConfig{
			Roll: []Credit{
				{Line1: "BALLS OF STEEL", Line2: "a descending wall brick breaker"},
				{Line1: "GAME DESIGN & CODE", Line2: "the Steelwall team"},
				{Line1: "TERMINAL PORT", Line2: "built with Bubble Tea"},
				{Line1: "THANKS FOR PLAYING", Line2: ""},
			},
			Wait:      3,
			FadeIn:    4,
			FadeOut:   3,
			Gap:       2,
			FinalFade: 4,
		},
		Difficulty: DifficultyConfig{
			InitialLevel: 0.3,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				BonusReduction:  5,
				BallReduction:   3,
			},
		},
	}
}
