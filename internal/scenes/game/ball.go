package game

import (
	"math"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/timer"
)

// timerSource is the read side of the session's shared timers.
type timerSource interface {
	GetTimer(id timer.ID) float64
}

// Ball is one ball in play. Its speed, size, and glow follow the shared
// timers every tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
	Glow   bool
	Big    bool
	frames int
}

func newBall(x, y, dirX, dirY float64, cfg config.BallConfig) *Ball {
	b := &Ball{X: x, Y: y, VX: dirX, VY: dirY, Radius: cfg.Radius, Speed: cfg.Speed}
	b.normalize()
	return b
}

// refresh applies the shared timers: Speed Ball scales the speed,
// Big Ball scales the radius, and Invincible makes the ball glow.
func (b *Ball) refresh(cfg config.BallConfig, t timerSource) {
	b.Speed = cfg.Speed
	if t.GetTimer(timer.SpeedBall) > 0 {
		b.Speed = cfg.Speed * cfg.SpeedMultiplier
	}
	b.Big = t.GetTimer(timer.BigBall) > 0
	b.Radius = cfg.Radius
	if b.Big {
		b.Radius = cfg.Radius * cfg.BigMultiplier
	}
	b.Glow = t.GetTimer(timer.Invincible) > 0
}

// settle keeps the ball from travelling too flat and holds it at its
// current speed. The first frame after launch is left alone.
func (b *Ball) settle(minVertical float64) {
	b.frames++
	if b.frames > 1 && math.Abs(b.VY) < minVertical {
		if b.VY < 0 {
			b.VY = -minVertical
		} else {
			b.VY = minVertical
		}
	}
	b.normalize()
}

func (b *Ball) normalize() {
	l := math.Hypot(b.VX, b.VY)
	if l == 0 {
		b.VX, b.VY = 0, b.Speed
		return
	}
	b.VX = b.VX / l * b.Speed
	b.VY = b.VY / l * b.Speed
}

func (b *Ball) move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// bounceArena reflects the ball off the side walls and the ceiling.
func (b *Ball) bounceArena(a core.Box) {
	if b.X-b.Radius < a.MinX {
		b.X = a.MinX + b.Radius
		b.VX = math.Abs(b.VX)
	} else if b.X+b.Radius > a.MaxX {
		b.X = a.MaxX - b.Radius
		b.VX = -math.Abs(b.VX)
	}
	if b.Y+b.Radius > a.MaxY {
		b.Y = a.MaxY - b.Radius
		b.VY = -math.Abs(b.VY)
	}
}

// bounceBox reflects the ball off the box it overlaps, along the axis of
// least penetration.
func (b *Ball) bounceBox(box core.Box) {
	cx, cy := box.Center()
	hw, hh := (box.MaxX-box.MinX)/2, (box.MaxY-box.MinY)/2
	dx, dy := (b.X-cx)/(hw+b.Radius), (b.Y-cy)/(hh+b.Radius)

	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			b.X = box.MinX - b.Radius
			b.VX = -math.Abs(b.VX)
		} else {
			b.X = box.MaxX + b.Radius
			b.VX = math.Abs(b.VX)
		}
		return
	}
	if dy < 0 {
		b.Y = box.MinY - b.Radius
		b.VY = -math.Abs(b.VY)
	} else {
		b.Y = box.MaxY + b.Radius
		b.VY = math.Abs(b.VY)
	}
}
