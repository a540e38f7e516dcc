// Package session implements the play-session orchestrator: it owns the
// score, the ball bank, the shared timers, and the wall, and drives the
// get-ready and game-over sequences. Bricks, balls, and the paddle talk to
// it through the handle they are given at construction.
package session

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/sequence"
	"github.com/vovakirdan/steelwall/internal/spawn"
	"github.com/vovakirdan/steelwall/internal/timer"
	"github.com/vovakirdan/steelwall/internal/wall"
)

// MenuScene is the scene loaded when a session ends.
const MenuScene = "Menu Scene"

// State is the session's lifecycle state.
type State int

const (
	GetReady State = iota
	Playing
	Paused
	GameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case GetReady:
		return "GetReady"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Config holds session tuning.
type Config struct {
	Wall        wall.Config
	Balls       int     // Balls in the bank at start
	BonusChance float64 // Percent chance per slot of a bonus brick
	WallTop     int     // Highest row of the starting wall
	WallBottom  int     // Lowest row of the starting wall

	SceneFadeIn  float64 // Seconds to fade the scene in
	ReadyFadeIn  float64 // Seconds to fade "GET READY" in
	ReadyFadeOut float64 // Seconds to fade "GET READY" out
	EndFade      float64 // Default game-over fade for EndGame
	PauseFade    float64 // Screen fade level while paused
}

// DefaultConfig returns the stock session tuning.
func DefaultConfig() Config {
	return Config{
		Wall:         wall.DefaultConfig(),
		Balls:        6,
		BonusChance:  10,
		WallTop:      14,
		WallBottom:   6,
		SceneFadeIn:  2,
		ReadyFadeIn:  2,
		ReadyFadeOut: 2,
		EndFade:      2,
		PauseFade:    0.7,
	}
}

// Deps are the collaborators a Manager is built with. Only Bricks is
// required; the rest default to no-ops.
type Deps struct {
	Bricks      *spawn.Table
	Bonus       *spawn.Table
	Source      spawn.Source
	Persistence Persistence
	Scenes      SceneLoader
	Display     Display
	Listener    Listener
	Logger      *log.Logger
	Scheduler   *sequence.Scheduler
}

// Overlay holds the opacity of the session's banner texts.
type Overlay struct {
	GetReady float64
	GameOver float64
}

// Manager orchestrates one play session. It is driven from a single frame
// loop and is not safe for concurrent use.
type Manager struct {
	cfg Config

	persist  Persistence
	scenes   SceneLoader
	display  Display
	listener Listener
	logger   *log.Logger
	sched    *sequence.Scheduler
	ready    *sequence.Handle

	timers *timer.Registry
	wall   *wall.Simulator

	state       State
	score       int
	highScore   int
	ballsInBank int
	ballsInPlay int
	overlay     Overlay
	wallSound   bool
	started     bool
}

// New creates a session. Call Start to build the wall and begin the
// get-ready sequence.
func New(cfg Config, deps Deps) *Manager {
	m := &Manager{
		cfg:         cfg,
		persist:     deps.Persistence,
		scenes:      deps.Scenes,
		display:     deps.Display,
		listener:    deps.Listener,
		logger:      deps.Logger,
		sched:       deps.Scheduler,
		timers:      timer.NewRegistry(),
		ballsInBank: max(cfg.Balls, 0),
	}
	if m.persist == nil {
		m.persist = &MemoryPersistence{}
	}
	if m.scenes == nil {
		m.scenes = nopScenes{}
	}
	if m.display == nil {
		m.display = nopDisplay{}
	}
	if m.listener == nil {
		m.listener = NopListener{}
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.sched == nil {
		m.sched = sequence.NewScheduler(context.Background())
	}

	src := deps.Source
	if src == nil {
		src = spawn.NewSource(1)
	}
	gen := wall.NewGenerator(deps.Bricks, deps.Bonus, cfg.BonusChance, src)
	m.wall = wall.NewSimulator(cfg.Wall, gen)

	m.timers.Register(timer.WallStop)
	return m
}

// Start loads the high score, builds the starting wall, and runs the
// get-ready sequence that moves the session into Playing.
func (m *Manager) Start(ctx context.Context) {
	if m.started {
		return
	}
	m.started = true

	m.highScore = m.persist.GetHighScore()
	for _, row := range m.wall.InitialWall(m.cfg.WallTop, m.cfg.WallBottom) {
		m.listener.RowSpawned(row)
	}
	m.logger.Info("session started", "balls", m.ballsInBank, "hiscore", m.highScore)

	m.display.SetScreenFade(1)
	m.ready = m.sched.Start(ctx, m.getReadySequence())
}

func (m *Manager) getReadySequence() sequence.Task {
	return sequence.Steps(
		sequence.Tween(m.cfg.SceneFadeIn, func(p float64) {
			m.display.SetScreenFade(1 - p)
			m.display.SetVolume(0.5 + p/2)
		}),
		sequence.Tween(m.cfg.ReadyFadeIn, func(p float64) {
			m.overlay.GetReady = p
		}),
		sequence.Tween(m.cfg.ReadyFadeOut, func(p float64) {
			m.overlay.GetReady = 1 - p
		}),
		sequence.Do(func() {
			if m.state != GetReady {
				return
			}
			m.setState(Playing)
			m.setWallSound(true)
		}),
	)
}

func (m *Manager) gameOverSequence(fade float64) sequence.Task {
	if fade <= 0 {
		return sequence.Do(m.loadMenu)
	}
	return sequence.Steps(
		sequence.Tween(fade, func(p float64) {
			m.overlay.GameOver = p
			m.display.SetVolume(1 - p)
		}),
		sequence.Tween(fade, func(p float64) {
			m.display.SetScreenFade(p)
		}),
		sequence.Do(m.loadMenu),
	)
}

func (m *Manager) loadMenu() {
	m.logger.Debug("loading scene", "scene", MenuScene)
	m.scenes.LoadScene(MenuScene)
}

func (m *Manager) setState(s State) {
	if m.state == s {
		return
	}
	from := m.state
	m.state = s
	m.logger.Debug("state changed", "from", from, "to", s)
	m.listener.StateChanged(from, s)
}

func (m *Manager) setWallSound(on bool) {
	if m.wallSound == on {
		return
	}
	m.wallSound = on
	m.listener.WallSound(on)
}

// Tick advances the session by one frame of dt seconds.
//
// Sequences advance every frame except while paused. While Playing the
// ball-exhaustion check runs first, then the wall moves and may spawn a
// row, then every timer ticks exactly once.
func (m *Manager) Tick(dt float64) {
	if m.state == Paused {
		return
	}
	m.sched.Advance(dt)

	if m.state != Playing {
		return
	}

	if m.ballsInBank+m.ballsInPlay < 1 {
		m.logger.Info("out of balls")
		m.EndGame(m.cfg.EndFade)
		return
	}

	stopped := m.timers.Get(timer.WallStop) > 0
	res := m.wall.Step(dt, stopped)
	m.setWallSound(res.State == wall.Advancing)
	for _, row := range res.Rows {
		m.logger.Debug("row spawned", "y", row.Y, "speed", m.wall.Speed())
		m.listener.RowSpawned(row)
	}

	m.timers.TickAll(dt)
}

// Pause freezes a Playing session.
func (m *Manager) Pause() {
	if m.state != Playing {
		return
	}
	m.setState(Paused)
	m.display.SetScreenFade(m.cfg.PauseFade)
	m.setWallSound(false)
}

// Resume continues a Paused session.
func (m *Manager) Resume() {
	if m.state != Paused {
		return
	}
	m.setState(Playing)
	m.display.SetScreenFade(0)
	m.setWallSound(m.timers.Get(timer.WallStop) <= 0)
}

// Quit abandons a Paused session without a fade.
func (m *Manager) Quit() {
	if m.state != Paused {
		return
	}
	m.EndGame(0)
}

// EndGame moves the session to GameOver, saves a beaten high score, and
// runs the fade that returns to the menu. It may be called during
// GetReady, which stops the get-ready sequence. Only the first call has
// any effect.
func (m *Manager) EndGame(fade float64) {
	if m.state == GameOver {
		return
	}
	if m.ready != nil {
		m.ready.Cancel()
	}
	m.overlay.GetReady = 0
	m.setState(GameOver)
	m.setWallSound(false)

	if m.score > m.highScore {
		m.highScore = m.score
		m.persist.SetHighScore(m.score)
		m.logger.Info("new high score", "score", m.score)
	}
	m.logger.Info("game over", "score", m.score, "fade", fade)

	m.sched.Go(m.gameOverSequence(fade))
}

// ReleaseBall takes a ball from the bank and asks the host to launch it.
func (m *Manager) ReleaseBall() bool {
	if m.ballsInBank <= 0 || m.state != Playing {
		return false
	}
	m.ballsInBank--
	m.listener.BallReleased()
	return true
}

// RegisterBall counts a ball entering play.
func (m *Manager) RegisterBall() { m.ballsInPlay++ }

// UnregisterBall counts a ball leaving play.
func (m *Manager) UnregisterBall() {
	m.ballsInPlay = max(m.ballsInPlay-1, 0)
}

// AddBall puts n balls in the bank.
func (m *Manager) AddBall(n int) {
	m.ballsInBank = max(m.ballsInBank+n, 0)
}

// RemoveBall takes n balls out of the bank, stopping at zero.
func (m *Manager) RemoveBall(n int) {
	m.ballsInBank = max(m.ballsInBank-n, 0)
}

// AddPoints adds to the score while Playing.
func (m *Manager) AddPoints(n int) {
	if m.state != Playing {
		return
	}
	m.score += n
}

// RegisterTimer registers a shared timer.
func (m *Manager) RegisterTimer(id timer.ID) { m.timers.Register(id) }

// GetTimer returns a shared timer's remaining time, or timer.Absent.
func (m *Manager) GetTimer(id timer.ID) float64 { return m.timers.Get(id) }

// UpdateTimer extends a shared timer.
func (m *Manager) UpdateTimer(id timer.ID, seconds float64) { m.timers.Add(id, seconds) }

// Timers returns the registered timers for display.
func (m *Manager) Timers() []timer.Entry { return m.timers.Snapshot() }

// State returns the current state.
func (m *Manager) State() State { return m.state }

// Score returns the current score.
func (m *Manager) Score() int { return m.score }

// HighScore returns the score to show as the high score: the stored one,
// or the current score once it is higher.
func (m *Manager) HighScore() int { return max(m.score, m.highScore) }

// BallsInBank returns the number of balls waiting to be released.
func (m *Manager) BallsInBank() int { return m.ballsInBank }

// BallsInPlay returns the number of balls on the field.
func (m *Manager) BallsInPlay() int { return m.ballsInPlay }

// WallOffset returns how far the wall has descended.
func (m *Manager) WallOffset() float64 { return m.wall.ScrollPosition() }

// WallSpeed returns the wall's current descent speed.
func (m *Manager) WallSpeed() float64 { return m.wall.Speed() }

// Overlay returns the banner opacities.
func (m *Manager) Overlay() Overlay { return m.overlay }
