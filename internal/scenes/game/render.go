package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/steelwall/internal/bricks"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/session"
	"github.com/vovakirdan/steelwall/internal/timer"
)

const controlsHint = "←/→ move  SPACE launch  ESC pause"

// Render draws the field, the HUD, and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.mgr == nil {
		dst.DrawTextCentered(dst.Height()/2, "invalid configuration", core.ColorRed)
		return
	}
	g.renderBreachLine(dst)
	g.renderBricks(dst)
	g.renderFlashes(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderBreachLine(dst *core.Screen) {
	_, y := g.view.ToScreen(0, bricks.BreachLine)
	for x := g.view.Screen.X; x < g.view.Screen.Right(); x++ {
		dst.SetColor(x, y, '·', core.ColorDarkGray)
	}
}

func (g *Game) renderBricks(dst *core.Screen) {
	scroll := g.field.Scroll()
	pass := g.field.PassThrough()
	for _, b := range g.field.Bricks() {
		box := b.Bounds(scroll)
		if box.MinY > g.view.MaxY {
			continue
		}
		x0, y := g.view.ToScreen(box.MinX, b.Y(scroll))
		x1, _ := g.view.ToScreen(box.MaxX, b.Y(scroll))
		color := b.Def.Color
		if pass {
			color = color.Faded(0.4)
		}
		// Leave the last column blank so neighbouring bricks stay apart.
		for x := x0; x < x1-1; x++ {
			dst.SetColor(x, y, b.Def.Glyph, color)
		}
	}
}

func (g *Game) renderFlashes(dst *core.Screen) {
	for _, f := range g.flashes {
		g.ring(dst, f.x, f.y, f.radius, '*', core.ColorOrange)
	}
	for _, bl := range g.field.Blasts() {
		g.ring(dst, bl.X, bl.Y, bl.Radius, '░', core.ColorBrightRed)
	}
}

// ring marks the cells on a circle's outline.
func (g *Game) ring(dst *core.Screen, cx, cy, r float64, ch rune, c core.Color) {
	const steps = 24
	for i := range steps {
		a := 2 * math.Pi * float64(i) / steps
		x, y := g.view.ToScreen(cx+r*math.Cos(a), cy+r*math.Sin(a))
		dst.SetColor(x, y, ch, c)
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	box := g.paddle.Bounds()
	x0, y := g.view.ToScreen(box.MinX, paddleY)
	x1, _ := g.view.ToScreen(box.MaxX, paddleY)
	for x := x0; x < x1; x++ {
		dst.SetColor(x, y, '▀', core.ColorBrightWhite)
	}
}

func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.balls {
		x, y := g.view.ToScreen(b.X, b.Y)
		ch, c := 'o', core.ColorWhite
		if b.Big {
			ch = 'O'
		}
		if b.Glow {
			c = core.ColorBrightYellow
		}
		dst.SetColor(x, y, ch, c)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("SCORE %06d  HI %06d  BALLS %d", g.mgr.Score(), g.mgr.HighScore(), g.mgr.BallsInBank())
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	var active []string
	for _, e := range g.mgr.Timers() {
		if e.Remaining > 0 {
			active = append(active, fmt.Sprintf("%s %.1f", timerLabel(e.ID), e.Remaining))
		}
	}
	if len(active) > 0 {
		right := strings.Join(active, "  ")
		dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightCyan)
	}

	dst.DrawTextColor(0, dst.Height()-1, controlsHint, core.ColorDarkGray)
}

func timerLabel(id timer.ID) string {
	switch id {
	case timer.WallStop:
		return "STOP"
	case timer.Invincible:
		return "GLOW"
	case timer.BigBall:
		return "BIG"
	case timer.SpeedBall:
		return "SPEED"
	default:
		return "?"
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	o := g.mgr.Overlay()
	if c, ok := banner(core.ColorBrightWhite, o.GetReady); ok {
		dst.DrawTextCentered(mid, "GET READY", c)
	}
	if c, ok := banner(core.ColorBrightRed, o.GameOver); ok {
		dst.DrawTextCentered(mid, "GAME OVER", c)
	}
}

// RenderOverlay draws the pause menu above the pause fade.
func (g *Game) RenderOverlay(dst *core.Screen) {
	if g.mgr != nil && g.mgr.State() == session.Paused {
		g.renderPauseMenu(dst)
	}
}

// banner returns the colour of text shown at opacity alpha, and false
// while it is too faint to draw.
func banner(c core.Color, alpha float64) (core.Color, bool) {
	if alpha < 0.15 {
		return c, false
	}
	return c.Faded(1 - alpha), true
}

func (g *Game) renderPauseMenu(dst *core.Screen) {
	const w, h = 20, 6
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, "PAUSED", core.ColorBrightYellow)

	items := []string{"Resume", "Quit"}
	for i, label := range items {
		c := core.ColorGray
		prefix := "  "
		if pauseItem(i) == g.pauseMenu {
			c = core.ColorBrightWhite
			prefix = "> "
		}
		dst.DrawTextCentered(box.Y+3+i, prefix+label, c)
	}
}
