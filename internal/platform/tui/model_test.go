package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/registry"
	"github.com/vovakirdan/steelwall/internal/storage"

	_ "github.com/vovakirdan/steelwall/internal/scenes/credits"
)

func testOptions() Options {
	return Options{
		Runtime:    core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Seed: 1},
		Settings:   config.DefaultSteelConfig(),
		StartScene: registry.CreditsScene,
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelUnknownScene(t *testing.T) {
	opts := testOptions()
	opts.StartScene = "No Such Scene"
	if _, err := NewModel(context.Background(), opts); err == nil {
		t.Fatal("expected an error for an unregistered scene")
	}
}

func TestModelReservesHelpRow(t *testing.T) {
	m, err := NewModel(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	defer m.Director().Close()

	if got := m.Director().Runtime().ScreenH; got != 19 {
		t.Errorf("scene height = %d, want 19", got)
	}
	if view := m.View(); !strings.Contains(view, "move left") {
		t.Error("view should end with the help bar")
	}
}

func TestModelAnyKeyQuitsCredits(t *testing.T) {
	m, err := NewModel(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	next, cmd := m.Update(runeKey('x'))
	if isQuit(cmd) {
		t.Fatal("key press alone should not quit")
	}
	_, cmd = next.Update(TickMsg{DT: 1.0 / 30})
	if !isQuit(cmd) {
		t.Error("credits should quit on the tick after any key")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	m, err := NewModel(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelTickKeepsTicking(t *testing.T) {
	m, err := NewModel(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	defer m.Director().Close()

	if _, cmd := m.Update(TickMsg{DT: 1.0 / 30}); cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelResize(t *testing.T) {
	m, err := NewModel(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	defer m.Director().Close()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	model := next.(Model)
	if model.screen.Width() != 40 || model.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, want 40x11", model.screen.Width(), model.screen.Height())
	}
}

func TestModelRecordsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	opts := testOptions()
	opts.Store = store
	opts.Player = "alice"
	m, err := NewModel(context.Background(), opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	defer m.Director().Close()

	m.Director().RecordRun(150)
	m.Director().HighScores().SetHighScore(150)

	scores, err := store.TopScores(storage.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "alice" || scores[0].Score != 150 {
		t.Errorf("scores = %+v, want alice/150", scores)
	}
	if got, _ := store.GetInt(storage.HighScoreKey, 0); got != 150 {
		t.Errorf("stored high score = %d, want 150", got)
	}
}

func TestModelRecordsAnonymousRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	opts := testOptions()
	opts.Store = store
	m, err := NewModel(context.Background(), opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	defer m.Director().Close()

	m.Director().RecordRun(90)
	m.Director().RecordRun(0) // Empty runs are not recorded

	scores, err := store.AllScores(storage.GameID)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "" || scores[0].RunID == "" {
		t.Errorf("scores = %+v, want one anonymous run with an ID", scores)
	}
}
