package credits

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
	settings config.SteelConfig
	quit     bool
	fade     float64
	volume   float64
}

func (h *fakeHost) Context() context.Context        { return context.Background() }
func (h *fakeHost) Runtime() core.RuntimeConfig     { return core.RuntimeConfig{TickRate: 10} }
func (h *fakeHost) Settings() config.SteelConfig    { return h.settings }
func (h *fakeHost) Logger() *log.Logger             { return log.New(io.Discard) }
func (h *fakeHost) Audio() core.Audio               { return core.SilentAudio{} }
func (h *fakeHost) HighScores() session.Persistence { return &session.MemoryPersistence{} }
func (h *fakeHost) RecordRun(int)                   {}
func (h *fakeHost) LoadScene(string)                {}
func (h *fakeHost) SetScreenFade(level float64)     { h.fade = level }
func (h *fakeHost) SetVolume(level float64)         { h.volume = level }
func (h *fakeHost) Quit()                           { h.quit = true }

func shortRoll() config.SteelConfig {
	cfg := config.DefaultSteelConfig()
	cfg.Credits = config.CreditsConfig{
		Roll: []config.Credit{
			{Line1: "Wall", Line2: "Steel"},
			{Line1: "Thanks", Line2: "For playing"},
		},
		Wait:      1,
		FadeIn:    1,
		FadeOut:   1,
		Gap:       1,
		FinalFade: 1,
	}
	return cfg
}

func enter(cfg config.SteelConfig) (*Credits, *fakeHost) {
	h := &fakeHost{settings: cfg}
	c := New()
	c.Enter(h)
	return c, h
}

func tick(c *Credits, n int) {
	for range n {
		c.Step(core.NewInputFrame())
	}
}

func TestRollTiming(t *testing.T) {
	c, h := enter(shortRoll())

	tick(c, 5)
	if c.current != -1 {
		t.Fatalf("current = %d during the opening wait", c.current)
	}

	tick(c, 10) // 1.5s: halfway through the first fade-in
	if c.current != 0 || c.alpha < 0.3 || c.alpha > 0.7 {
		t.Errorf("current=%d alpha=%v, expected the first credit half visible", c.current, c.alpha)
	}

	tick(c, 20) // 3.5s: inside the gap
	if c.current != 0 || c.alpha != 0 {
		t.Errorf("current=%d alpha=%v, expected the gap after the first credit", c.current, c.alpha)
	}

	tick(c, 5) // 4.0s: the gap ends and the second credit starts on the same frame
	if c.current != 1 || c.alpha > 0.01 {
		t.Errorf("current=%d alpha=%v, expected the second credit to begin", c.current, c.alpha)
	}

	tick(c, 15) // 5.5s: second credit fading out
	if c.current != 1 || c.alpha < 0.3 || c.alpha > 0.7 {
		t.Errorf("current=%d alpha=%v, expected the second credit half visible", c.current, c.alpha)
	}
	if h.quit {
		t.Fatal("quit before the roll finished")
	}

	tick(c, 15) // 7.0s
	if !h.quit {
		t.Error("expected quit after the final fade")
	}
	if h.fade != 1 || h.volume != 0 {
		t.Errorf("fade=%v volume=%v, expected black and silent", h.fade, h.volume)
	}
}

func TestNoGapAfterLastCredit(t *testing.T) {
	cfg := shortRoll()
	cfg.Credits.Roll = cfg.Credits.Roll[:1]
	c, h := enter(cfg)

	// Wait 1s, fade in 1s, fade out 1s, final fade 1s.
	tick(c, 39)
	if h.quit {
		t.Fatal("quit before the final fade finished")
	}
	tick(c, 1)
	if !h.quit {
		t.Error("final fade should follow the last credit without a gap")
	}
}

func TestAnyKeyQuits(t *testing.T) {
	c, h := enter(shortRoll())
	in := core.NewInputFrame()
	in.Set(core.ActionAny)
	c.Step(in)
	if !h.quit {
		t.Error("any key should quit immediately")
	}
}

func TestRender(t *testing.T) {
	c, _ := enter(shortRoll())
	tick(c, 20) // first credit fully faded in

	screen := core.NewScreen(40, 12)
	c.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Wall") || !strings.Contains(out, "Steel") {
		t.Errorf("credit not drawn:\n%s", out)
	}
	if cell := screen.GetCell(18, 5); cell.Rune == 'W' && cell.Color != line1Color {
		t.Errorf("line 1 colour = %v", cell.Color)
	}
}
