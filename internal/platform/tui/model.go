package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/registry"
	"github.com/vovakirdan/steelwall/internal/scene"
	"github.com/vovakirdan/steelwall/internal/session"
	"github.com/vovakirdan/steelwall/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Runtime  core.RuntimeConfig
	Settings config.SteelConfig
	Logger   *log.Logger
	Audio    core.Audio
	// Store keeps the high score and the leaderboard. Without one both
	// live in memory for the session.
	Store *storage.Store
	// Player names the runs recorded on the leaderboard.
	Player string
	// StartScene is the first scene; the title screen when empty.
	StartScene string
}

// Model is the Bubble Tea model that drives the scene director.
type Model struct {
	director   *scene.Director
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	opts       Options
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates the director and enters the start scene. Scenes run
// under contexts derived from ctx.
func NewModel(ctx context.Context, opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.StartScene == "" {
		opts.StartScene = registry.MenuScene
	}

	var highScores session.Persistence = &session.MemoryPersistence{}
	var recorder scene.RunRecorder
	if opts.Store != nil {
		highScores = storage.NewHighScorePref(opts.Store, opts.Logger)
		recorder = runRecorder{store: opts.Store, player: opts.Player}
	}

	// The bottom row is kept for the help bar.
	rt := opts.Runtime
	rt.ScreenH = max(rt.ScreenH-1, 1)

	director := scene.New(ctx, scene.Options{
		Runtime:    rt,
		Settings:   opts.Settings,
		Logger:     opts.Logger,
		Audio:      opts.Audio,
		HighScores: highScores,
		Recorder:   recorder,
	})
	if err := director.Start(opts.StartScene); err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		director:   director,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       h,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, h)
	m.director.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.director.Step(m.inputFrame)
	m.inputFrame.Clear()

	if m.director.Done() {
		return m.quit()
	}
	return m, tickCmd(m.opts.Runtime)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.director.Close()
	return m, tea.Quit
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.director.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".steelwall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("steelwall_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current scene and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.director.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Director returns the scene director.
func (m Model) Director() *scene.Director { return m.director }

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx ends.
func Run(ctx context.Context, opts Options) error {
	model, err := NewModel(ctx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	return err
}

// runRecorder stores finished runs on the leaderboard.
type runRecorder struct {
	store  *storage.Store
	player string
}

// RecordRun saves score under the player, or anonymously without one.
func (r runRecorder) RecordRun(score int) error {
	if r.player == "" {
		_, err := r.store.SaveScore(storage.GameID, score)
		return err
	}
	_, err := r.store.SaveRun(storage.Run{Player: r.player, Score: score})
	return err
}
