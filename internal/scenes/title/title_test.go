package title

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/session"
)

type fakeHost struct {
	ctx    context.Context
	sounds []core.Sound
	scores session.MemoryPersistence
	loaded []string
	fade   float64
	volume float64
}

func (h *fakeHost) Context() context.Context        { return h.ctx }
func (h *fakeHost) Runtime() core.RuntimeConfig     { return core.DefaultConfig() }
func (h *fakeHost) Settings() config.SteelConfig    { return config.DefaultSteelConfig() }
func (h *fakeHost) Logger() *log.Logger             { return log.New(io.Discard) }
func (h *fakeHost) Audio() core.Audio               { return h }
func (h *fakeHost) HighScores() session.Persistence { return &h.scores }
func (h *fakeHost) RecordRun(int)                   {}
func (h *fakeHost) LoadScene(name string)           { h.loaded = append(h.loaded, name) }
func (h *fakeHost) SetScreenFade(level float64)     { h.fade = level }
func (h *fakeHost) SetVolume(level float64)         { h.volume = level }
func (h *fakeHost) Quit()                           {}
func (h *fakeHost) Play(s core.Sound)               { h.sounds = append(h.sounds, s) }
func (h *fakeHost) SetLoop(bool)                    {}

func enter(t *testing.T) (*Title, *fakeHost) {
	t.Helper()
	h := &fakeHost{ctx: context.Background()}
	s := New()
	s.Enter(h)
	return s, h
}

// run steps the scene for the given number of seconds.
func run(s *Title, seconds float64, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	ticks := int(seconds * 60)
	for i := 0; i < ticks; i++ {
		if i == 0 {
			s.Step(in)
			continue
		}
		s.Step(core.NewInputFrame())
	}
}

func TestIntroReveals(t *testing.T) {
	s, h := enter(t)

	run(s, smashTime+0.1)
	if !s.smashed || len(h.sounds) != 1 || h.sounds[0] != core.SoundSmash {
		t.Fatalf("smashed=%v sounds=%v", s.smashed, h.sounds)
	}

	run(s, initialDelay)
	if s.revealed != 1 {
		t.Errorf("revealed = %d, expected BALLS after the initial delay", s.revealed)
	}
	run(s, 2*wordDelay+0.05)
	if s.revealed != 3 {
		t.Errorf("revealed = %d, expected all three words", s.revealed)
	}
	if s.menuShown {
		t.Error("menu shown before its delay")
	}
	run(s, wordDelay+0.1)
	if !s.menuShown {
		t.Error("menu not shown after the last word delay")
	}

	stabs := 0
	for _, snd := range h.sounds {
		if snd == core.SoundStab {
			stabs++
		}
	}
	if stabs != 3 {
		t.Errorf("stab sounds = %d, expected one per word", stabs)
	}
}

func TestSkipIntro(t *testing.T) {
	s, _ := enter(t)
	run(s, 0.1, core.ActionConfirm)
	if !s.menuShown || s.revealed != len(words) {
		t.Fatal("confirm during the intro should reveal everything")
	}
	if s.selected != itemPlay || s.chosen {
		t.Error("skipping the intro must not choose a menu item")
	}
}

func TestPlayLoadsGame(t *testing.T) {
	s, h := enter(t)
	run(s, 0.1, core.ActionLaunch)
	run(s, 0.1, core.ActionConfirm)

	run(s, menuFade)
	if h.fade > 0.1 {
		t.Errorf("fade = %v, the screen should hold while the menu fades", h.fade)
	}
	run(s, playFade+0.1)
	if len(h.loaded) != 1 || h.loaded[0] != "Game Scene" {
		t.Fatalf("loaded = %v, expected the game scene", h.loaded)
	}
	if h.fade < 0.99 || h.volume > 0.01 {
		t.Errorf("fade=%v volume=%v, expected black and silent", h.fade, h.volume)
	}
}

func TestQuitLoadsCredits(t *testing.T) {
	s, h := enter(t)
	run(s, 0.1, core.ActionConfirm)
	run(s, 0.1, core.ActionDown)
	run(s, 0.1, core.ActionConfirm)

	run(s, quitFade+0.1)
	if len(h.loaded) != 1 || h.loaded[0] != "Credits Scene" {
		t.Fatalf("loaded = %v, expected the credits", h.loaded)
	}

	run(s, 0.1, core.ActionUp, core.ActionConfirm)
	if len(h.loaded) != 1 {
		t.Error("input after a choice should be ignored")
	}
}

func TestRenderShowsHighScore(t *testing.T) {
	h := &fakeHost{ctx: context.Background()}
	h.scores.SetHighScore(420)
	s := New()
	s.Enter(h)
	run(s, 0.1, core.ActionConfirm)

	screen := core.NewScreen(80, 24)
	s.Render(screen)
	out := screen.String()
	for _, want := range []string{"S T E E L", "> PLAY <", "HI SCORE 000420"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestExitCancelsSequences(t *testing.T) {
	s, h := enter(t)
	run(s, 0.1, core.ActionConfirm)
	run(s, 0.1, core.ActionConfirm)
	s.Exit()
	run(s, menuFade+playFade+1)
	if len(h.loaded) != 0 {
		t.Errorf("loaded = %v after Exit", h.loaded)
	}
}
