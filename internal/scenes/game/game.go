// Package game is the play scene: the descending wall, the paddle, and the
// balls, driven by a session.Manager.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/bricks"
	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/registry"
	"github.com/vovakirdan/steelwall/internal/sequence"
	"github.com/vovakirdan/steelwall/internal/session"
	"github.com/vovakirdan/steelwall/internal/spawn"
	"github.com/vovakirdan/steelwall/internal/wall"
)

// Arena limits in world units. Rows are 11 bricks of width 2 centred on 0.
var arena = core.Box{MinX: -11, MinY: -5, MaxX: 11, MaxY: 15}

// viewBottom is the lowest world height drawn on screen.
const viewBottom = -4.0

// flashTime is how long an explosion stays on screen.
const flashTime = 0.3

func init() {
	registry.Register(registry.GameScene, func() registry.Scene { return New() })
}

type flash struct {
	x, y, radius float64
	remaining    float64
}

type pauseItem int

const (
	pauseResume pauseItem = iota
	pauseQuit
)

// Game is the play scene.
type Game struct {
	host   registry.Host
	cfg    config.SteelConfig
	logger *log.Logger
	audio  core.Audio
	dt     float64

	mgr     *session.Manager
	catalog *bricks.Catalog
	field   *bricks.Field
	sched   *sequence.Scheduler
	paddle  *Paddle
	balls   []*Ball

	flashes   []flash
	pauseMenu pauseItem
	recorded  bool
	failed    bool

	view core.Viewport
}

var (
	_ registry.Scene   = (*Game)(nil)
	_ session.Listener = (*Game)(nil)
	_ bricks.Effects   = (*Game)(nil)
)

// New creates an unstarted play scene.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return registry.GameScene }
func (g *Game) Title() string { return "Balls of Steel" }

// Enter builds the session and starts the get-ready sequence.
func (g *Game) Enter(h registry.Host) {
	g.host = h
	g.cfg = h.Settings()
	g.logger = h.Logger().WithPrefix("game")
	g.audio = h.Audio()
	g.dt = h.Runtime().DeltaTime()
	g.paddle = newPaddle(g.cfg.Paddle)
	g.resize()

	cat, normal, bonus, err := g.cfg.Build()
	if err != nil {
		g.logger.Error("invalid brick configuration", "err", err)
		g.failed = true
		h.LoadScene(registry.MenuScene)
		return
	}

	seed := h.Runtime().Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.sched = sequence.NewScheduler(h.Context())
	g.mgr = session.New(g.cfg.Session(), session.Deps{
		Bricks:      normal,
		Bonus:       bonus,
		Source:      spawn.NewSource(seed),
		Persistence: h.HighScores(),
		Scenes:      h,
		Display:     h,
		Listener:    g,
		Logger:      h.Logger().WithPrefix("session"),
		Scheduler:   g.sched,
	})
	g.catalog = cat
	g.field = bricks.NewField(cat, g.mgr, g)
	g.mgr.Start(h.Context())
}

func (g *Game) resize() {
	rt := g.host.Runtime()
	g.view = core.Viewport{
		Screen: core.NewRect(0, 1, rt.ScreenW, max(rt.ScreenH-2, 1)),
		MinX:   arena.MinX,
		MaxX:   arena.MaxX,
		MinY:   viewBottom,
		MaxY:   arena.MaxY,
	}
}

// Step handles input and advances the session and its physics by one tick.
func (g *Game) Step(in core.InputFrame) {
	if g.failed {
		return
	}
	g.resize()
	g.handleInput(in)
	g.mgr.Tick(g.dt)

	if g.mgr.State() != session.Playing {
		return
	}
	g.field.SetScroll(g.mgr.WallOffset())
	g.stepBalls()
	g.field.Step(g.dt)
	g.stepFlashes()

	if g.field.Breached() {
		g.logger.Info("wall breached", "score", g.mgr.Score())
		g.mgr.EndGame(g.cfg.Timing.EndFade)
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch g.mgr.State() {
	case session.Paused:
		g.pauseInput(in)
		return
	case session.Playing:
		if in.Has(core.ActionPause) {
			g.pauseMenu = pauseResume
			g.mgr.Pause()
			return
		}
		if in.Has(core.ActionLaunch) {
			g.mgr.ReleaseBall()
		}
	case session.GameOver:
		return
	}

	dir := 0.0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}
	if dir != 0 {
		g.paddle.Nudge(dir, g.dt)
	}
	if in.PointerMoved {
		g.paddle.Point(g.view.ToWorldX(in.Pointer))
	}
}

func (g *Game) pauseInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause):
		g.mgr.Resume()
	case in.Has(core.ActionUp):
		g.pauseMenu = pauseResume
	case in.Has(core.ActionDown):
		g.pauseMenu = pauseQuit
	case in.Has(core.ActionConfirm), in.Has(core.ActionLaunch):
		if g.pauseMenu == pauseQuit {
			g.mgr.Quit()
		} else {
			g.mgr.Resume()
		}
	}
}

func (g *Game) stepBalls() {
	live := g.balls[:0]
	for _, b := range g.balls {
		b.refresh(g.cfg.Balls, g.mgr)
		b.settle(g.cfg.Balls.MinVertical)
		b.move(g.dt)
		b.bounceArena(arena)

		if g.paddle.Deflect(b) {
			g.audio.Play(core.SoundBounce)
		}
		if br := g.field.Collide(b.X, b.Y, b.Radius); br != nil {
			pass := g.field.PassThrough()
			box := br.Bounds(g.field.Scroll())
			g.field.Hit(br, pass)
			if !pass {
				b.bounceBox(box)
			}
		}

		if b.Y < g.cfg.Balls.LostBelow {
			g.mgr.UnregisterBall()
			g.logger.Debug("ball lost", "in_play", g.mgr.BallsInPlay(), "bank", g.mgr.BallsInBank())
			continue
		}
		live = append(live, b)
	}
	for i := len(live); i < len(g.balls); i++ {
		g.balls[i] = nil
	}
	g.balls = live
}

func (g *Game) stepFlashes() {
	live := g.flashes[:0]
	for _, f := range g.flashes {
		f.remaining -= g.dt
		if f.remaining > 0 {
			live = append(live, f)
		}
	}
	g.flashes = live
}

// BallReleased launches a new ball from just above the paddle.
func (g *Game) BallReleased() {
	b := newBall(g.paddle.X, paddleY+paddleHeight/2+g.cfg.Balls.Radius+0.01, 0.5, 1, g.cfg.Balls)
	g.balls = append(g.balls, b)
	g.mgr.RegisterBall()
	g.audio.Play(core.SoundLaunch)
}

// RowSpawned places a generated row in the field.
func (g *Game) RowSpawned(row wall.Row) {
	g.field.SetScroll(g.mgr.WallOffset())
	g.field.SpawnRow(row)
}

// WallSound starts or stops the wall's rumble loop.
func (g *Game) WallSound(on bool) {
	g.audio.SetLoop(on)
}

// StateChanged records the run once the session is over.
func (g *Game) StateChanged(from, to session.State) {
	g.logger.Debug("state changed", "from", from, "to", to)
	if to == session.GameOver && !g.recorded {
		g.recorded = true
		g.logger.Info("run over", "score", g.mgr.Score(), "wall_speed", g.mgr.WallSpeed())
		g.host.RecordRun(g.mgr.Score())
	}
}

// BrickDestroyed plays the destruction sound. Bombs and TNT are heard
// through Exploded instead.
func (g *Game) BrickDestroyed(b *bricks.Brick) {
	if b.Def.Kind.Explodes() {
		return
	}
	g.audio.Play(core.SoundDestroy)
}

// Exploded shows a flash where a bomb or TNT went off.
func (g *Game) Exploded(x, y, radius float64) {
	g.audio.Play(core.SoundExplosion)
	g.flashes = append(g.flashes, flash{x: x, y: y, radius: radius, remaining: flashTime})
}

// State reports the score for the platform.
func (g *Game) State() core.SceneState {
	if g.mgr == nil {
		return core.SceneState{}
	}
	return core.SceneState{
		Score:     g.mgr.Score(),
		HighScore: g.mgr.HighScore(),
		Paused:    g.mgr.State() == session.Paused,
		GameOver:  g.mgr.State() == session.GameOver,
	}
}

// Exit stops every running sequence and silences the wall.
func (g *Game) Exit() {
	if g.sched != nil {
		g.sched.CancelAll()
	}
	if g.audio != nil {
		g.audio.SetLoop(false)
	}
}
