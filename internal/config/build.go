package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/steelwall/internal/bricks"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/session"
	"github.com/vovakirdan/steelwall/internal/spawn"
	"github.com/vovakirdan/steelwall/internal/wall"
)

// ErrNoBricks is returned when the configuration lists no normal bricks.
var ErrNoBricks = errors.New("config: no bricks configured")

// Validate checks that the configuration can build a session. Weight
// problems surface here rather than during play.
func (c SteelConfig) Validate() error {
	if _, _, _, err := c.Build(); err != nil {
		return err
	}
	switch {
	case c.Wall.MaxSpeed <= 0:
		return fmt.Errorf("config: wall.max_speed must be positive, got %v", c.Wall.MaxSpeed)
	case c.Wall.Speed < 0:
		return fmt.Errorf("config: wall.speed must not be negative, got %v", c.Wall.Speed)
	case c.Wall.Growth <= 0:
		return fmt.Errorf("config: wall.growth must be positive, got %v", c.Wall.Growth)
	case c.Wall.Top < c.Wall.Bottom:
		return fmt.Errorf("config: wall.top %d is below wall.bottom %d", c.Wall.Top, c.Wall.Bottom)
	case c.BonusChance < 0 || c.BonusChance > 100:
		return fmt.Errorf("config: bonus_chance must be within 0..100, got %v", c.BonusChance)
	case c.Balls.Bank < 0:
		return fmt.Errorf("config: balls.bank must not be negative, got %d", c.Balls.Bank)
	}
	return nil
}

// Build turns the brick lists into a catalog and its two weight tables.
// The bonus table is nil when no bonus bricks are configured.
func (c SteelConfig) Build() (*bricks.Catalog, *spawn.Table, *spawn.Table, error) {
	if len(c.Bricks) == 0 {
		return nil, nil, nil, ErrNoBricks
	}
	normal, err := brickDefs(c.Bricks)
	if err != nil {
		return nil, nil, nil, err
	}
	bonus, err := brickDefs(c.Bonus)
	if err != nil {
		return nil, nil, nil, err
	}

	cat, err := bricks.NewCatalog(normal, bonus)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}

	normalTable, err := spawn.NewTable(cat.NormalWeights())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config: bricks: %w", err)
	}
	var bonusTable *spawn.Table
	if len(bonus) > 0 {
		if bonusTable, err = spawn.NewTable(cat.BonusWeights()); err != nil {
			return nil, nil, nil, fmt.Errorf("config: bonus: %w", err)
		}
	}
	return cat, normalTable, bonusTable, nil
}

func brickDefs(list []BrickConfig) ([]bricks.Def, error) {
	defs := make([]bricks.Def, 0, len(list))
	for _, b := range list {
		kind, err := bricks.ParseKind(b.Kind)
		if err != nil {
			return nil, fmt.Errorf("config: brick %q: %w", b.Name, err)
		}
		color := core.ColorDefault
		if b.Color != "" {
			c, ok := core.ParseColor(b.Color)
			if !ok {
				return nil, fmt.Errorf("config: brick %q: unknown color %q", b.Name, b.Color)
			}
			color = c
		}
		var glyph rune
		if b.Glyph != "" {
			glyph, _ = utf8.DecodeRuneInString(b.Glyph)
		}
		defs = append(defs, bricks.Def{
			Name:     b.Name,
			Kind:     kind,
			Points:   b.Points,
			Weight:   b.Weight,
			Glyph:    glyph,
			Color:    color,
			Duration: b.Duration,
			Radius:   b.Radius,
			Lifetime: b.Lifetime,
			Balls:    b.Balls,
			Next:     b.Next,
		})
	}
	return defs, nil
}

// Session returns the session tuning described by the configuration.
func (c SteelConfig) Session() session.Config {
	return session.Config{
		Wall: wall.Config{
			Speed:         c.Wall.Speed,
			MaxSpeed:      c.Wall.MaxSpeed,
			Growth:        c.Wall.Growth,
			BaseRowOffset: c.Wall.BaseRowOffset,
		},
		Balls:        c.Balls.Bank,
		BonusChance:  c.BonusChance,
		WallTop:      c.Wall.Top,
		WallBottom:   c.Wall.Bottom,
		SceneFadeIn:  c.Timing.SceneFadeIn,
		ReadyFadeIn:  c.Timing.ReadyFadeIn,
		ReadyFadeOut: c.Timing.ReadyFadeOut,
		EndFade:      c.Timing.EndFade,
		PauseFade:    c.Timing.PauseFade,
	}
}
