// Package bricks implements the destructible items that make up the wall.
// Every brick belongs to one of a closed set of kinds; destroying a brick
// dispatches on its kind to award points, extend shared timers, add balls,
// or blow up its neighbours.
package bricks

import "fmt"

// Kind is the behaviour a brick triggers when destroyed.
type Kind int

const (
	Normal Kind = iota
	Bomb
	TNT
	SpeedPowerup
	BigBallPowerup
	GlowPowerup
	BonusBalls
	WallStopper
	kindCount
)

var kindNames = [...]string{
	Normal:         "normal",
	Bomb:           "bomb",
	TNT:            "tnt",
	SpeedPowerup:   "speed",
	BigBallPowerup: "big_ball",
	GlowPowerup:    "glow",
	BonusBalls:     "bonus_balls",
	WallStopper:    "wall_stopper",
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind converts a configuration name into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Normal, fmt.Errorf("bricks: unknown kind %q", s)
}

// Explodes reports whether the kind destroys nearby bricks.
func (k Kind) Explodes() bool {
	return k == Bomb || k == TNT
}
