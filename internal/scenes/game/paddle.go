package game

import (
	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
)

// Paddle geometry in world units.
const (
	paddleY      = -3.0
	paddleHeight = 0.5
	// english is how much horizontal speed an off-centre hit adds, relative
	// to the ball's vertical speed.
	english = 1.5
)

// Paddle is the player's bat.
type Paddle struct {
	X         float64
	Width     float64
	cfg       config.PaddleConfig
	lastPoint float64
	hasPoint  bool
}

func newPaddle(cfg config.PaddleConfig) *Paddle {
	return &Paddle{Width: cfg.Width, cfg: cfg}
}

// Nudge moves the paddle by dir (-1, 0, 1) for dt seconds of keyboard input.
func (p *Paddle) Nudge(dir, dt float64) {
	p.setX(p.X + dir*p.cfg.Speed*dt)
}

// Point follows a pointer at world x. Movement is relative to the previous
// pointer position, scaled by the mouse sensitivity.
func (p *Paddle) Point(worldX float64) {
	if p.hasPoint {
		p.setX(p.X + (worldX-p.lastPoint)*p.cfg.MouseSensitivity)
	}
	p.lastPoint = worldX
	p.hasPoint = true
}

func (p *Paddle) setX(x float64) {
	p.X = core.ClampF(x, -p.cfg.Limit, p.cfg.Limit)
}

// Bounds returns the paddle's box.
func (p *Paddle) Bounds() core.Box {
	return core.Box{
		MinX: p.X - p.Width/2,
		MinY: paddleY - paddleHeight/2,
		MaxX: p.X + p.Width/2,
		MaxY: paddleY + paddleHeight/2,
	}
}

// Deflect sends a descending ball back up, angled by where it struck.
// It reports whether the ball was hit.
func (p *Paddle) Deflect(b *Ball) bool {
	if b.VY >= 0 || !p.Bounds().IntersectsCircle(b.X, b.Y, b.Radius) {
		return false
	}
	offset := core.ClampF((b.X-p.X)/(p.Width/2), -1, 1)
	b.Y = paddleY + paddleHeight/2 + b.Radius
	b.VY = -b.VY
	b.VX += offset * english * b.VY
	b.normalize()
	return true
}
