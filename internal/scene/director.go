// Package scene runs one registered scene at a time and owns the state
// that outlives a scene: screen fade, master volume, and the quit request.
package scene

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/registry"
	"github.com/vovakirdan/steelwall/internal/session"
)

// RunRecorder stores finished sessions on the leaderboard.
type RunRecorder interface {
	RecordRun(score int) error
}

// Options configures a Director. Zero values fall back to silent, in-memory
// collaborators.
type Options struct {
	Runtime    core.RuntimeConfig
	Settings   config.SteelConfig
	Logger     *log.Logger
	Audio      core.Audio
	HighScores session.Persistence
	Recorder   RunRecorder
}

// Director switches between scenes and implements registry.Host for the
// scene it runs.
type Director struct {
	opts   Options
	parent context.Context

	current  registry.Scene
	sceneCtx context.Context
	cancel   context.CancelFunc

	pending string
	fade    float64
	volume  float64
	quit    bool
}

var _ registry.Host = (*Director)(nil)

// New creates a director. Scenes run under contexts derived from ctx.
func New(ctx context.Context, opts Options) *Director {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = core.SilentAudio{}
	}
	if opts.HighScores == nil {
		opts.HighScores = &session.MemoryPersistence{}
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	return &Director{opts: opts, parent: ctx, volume: 1}
}

// Start enters the named scene immediately.
func (d *Director) Start(name string) error {
	next, err := registry.Create(name)
	if err != nil {
		return err
	}
	d.enter(next)
	return nil
}

func (d *Director) enter(next registry.Scene) {
	d.exit()

	d.fade = 0
	d.volume = 1
	d.opts.Audio.SetVolume(1)
	d.opts.Audio.SetLoop(false)

	d.sceneCtx, d.cancel = context.WithCancel(d.parent)
	d.current = next
	d.opts.Logger.Info("scene entered", "scene", next.ID())
	next.Enter(d)
}

func (d *Director) exit() {
	if d.current == nil {
		return
	}
	d.cancel()
	d.current.Exit()
	d.opts.Logger.Debug("scene exited", "scene", d.current.ID())
	d.current = nil
}

// Step applies a pending scene switch and advances the current scene.
func (d *Director) Step(in core.InputFrame) {
	if d.pending != "" {
		name := d.pending
		d.pending = ""
		next, err := registry.Create(name)
		if err != nil {
			d.opts.Logger.Error("cannot load scene", "scene", name, "err", err)
		} else {
			d.enter(next)
		}
	}
	if d.current == nil || d.quit {
		return
	}
	d.current.Step(in)
}

// Render draws the current scene with the screen fade applied, then any
// overlay the scene draws above the fade.
func (d *Director) Render(dst *core.Screen) {
	dst.Clear()
	if d.current != nil {
		d.current.Render(dst)
	}
	dst.Fade(d.fade)
	if o, ok := d.current.(registry.OverlayRenderer); ok {
		o.RenderOverlay(dst)
	}
}

// State returns the current scene's state.
func (d *Director) State() core.SceneState {
	if d.current == nil {
		return core.SceneState{}
	}
	return d.current.State()
}

// Current returns the running scene, or nil.
func (d *Director) Current() registry.Scene { return d.current }

// Done reports whether a scene asked to quit.
func (d *Director) Done() bool { return d.quit }

// ScreenFade returns the current fade level.
func (d *Director) ScreenFade() float64 { return d.fade }

// Volume returns the current master volume.
func (d *Director) Volume() float64 { return d.volume }

// Close exits the running scene.
func (d *Director) Close() {
	d.exit()
	d.opts.Audio.SetLoop(false)
}

// Resize updates the screen dimensions reported to scenes.
func (d *Director) Resize(w, h int) {
	d.opts.Runtime.ScreenW = w
	d.opts.Runtime.ScreenH = h
}

func (d *Director) Context() context.Context {
	if d.sceneCtx == nil {
		return d.parent
	}
	return d.sceneCtx
}

func (d *Director) Runtime() core.RuntimeConfig     { return d.opts.Runtime }
func (d *Director) Settings() config.SteelConfig    { return d.opts.Settings }
func (d *Director) Logger() *log.Logger             { return d.opts.Logger }
func (d *Director) Audio() core.Audio               { return d.opts.Audio }
func (d *Director) HighScores() session.Persistence { return d.opts.HighScores }

// RecordRun stores score on the leaderboard. Failures are logged.
func (d *Director) RecordRun(score int) {
	if d.opts.Recorder == nil || score <= 0 {
		return
	}
	if err := d.opts.Recorder.RecordRun(score); err != nil {
		d.opts.Logger.Warn("cannot record run", "score", score, "err", err)
	}
}

// LoadScene queues a switch to name for the start of the next tick.
func (d *Director) LoadScene(name string) {
	d.pending = name
}

// SetScreenFade sets the fade level, clamped to [0,1].
func (d *Director) SetScreenFade(level float64) {
	d.fade = core.ClampF(level, 0, 1)
}

// SetVolume sets the master volume, clamped to [0,1].
func (d *Director) SetVolume(level float64) {
	d.volume = core.ClampF(level, 0, 1)
	d.opts.Audio.SetVolume(d.volume)
}

// Quit asks the platform to exit once the current tick ends.
func (d *Director) Quit() {
	d.quit = true
}
