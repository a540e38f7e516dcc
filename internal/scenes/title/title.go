// Package title is the menu scene: a ball smashes through the wall, the
// words BALLS OF STEEL land one at a time, and the player picks Play or
// Quit.
package title

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/registry"
	"github.com/vovakirdan/steelwall/internal/sequence"
)

// Intro and menu timings, in seconds.
const (
	smashTime    = 0.6
	initialDelay = 1.11
	wordDelay    = 0.75
	menuFade     = 1.0
	playFade     = 1.5
	quitFade     = 2.5
)

var words = []struct {
	text  string
	color core.Color
}{
	{"B A L L S", core.ColorBrightWhite},
	{"O F", core.ColorGray},
	{"S T E E L", core.ColorBrightCyan},
}

type item int

const (
	itemPlay item = iota
	itemQuit
)

func init() {
	registry.Register(registry.MenuScene, func() registry.Scene { return New() })
}

// Title is the menu scene.
type Title struct {
	host   registry.Host
	logger *log.Logger
	audio  core.Audio
	sched  *sequence.Scheduler
	dt     float64

	ballY     float64 // Intro ball progress from the bottom row to the wall, 0..1
	smashed   bool
	revealed  int
	menuShown bool
	menuAlpha float64
	selected  item
	chosen    bool
	hiScore   int

	intro *sequence.Handle
}

var _ registry.Scene = (*Title)(nil)

// New creates the menu scene.
func New() *Title {
	return &Title{}
}

func (t *Title) ID() string    { return registry.MenuScene }
func (t *Title) Title() string { return "Title Screen" }

// Enter starts the intro with the screen fully visible.
func (t *Title) Enter(h registry.Host) {
	t.host = h
	t.logger = h.Logger().WithPrefix("title")
	t.audio = h.Audio()
	t.dt = h.Runtime().DeltaTime()
	t.hiScore = h.HighScores().GetHighScore()
	t.sched = sequence.NewScheduler(h.Context())

	h.SetScreenFade(0)
	h.SetVolume(1)
	t.intro = t.sched.Go(t.introSequence())
}

func (t *Title) introSequence() sequence.Task {
	steps := []sequence.Task{
		sequence.Tween(smashTime, func(p float64) { t.ballY = p }),
		sequence.Do(t.smash),
		sequence.Wait(initialDelay),
	}
	for i := range words {
		if i > 0 {
			steps = append(steps, sequence.Wait(wordDelay))
		}
		steps = append(steps, sequence.Do(t.reveal))
	}
	steps = append(steps, sequence.Wait(wordDelay), sequence.Do(t.showMenu))
	return sequence.Steps(steps...)
}

func (t *Title) smash() {
	t.smashed = true
	t.audio.Play(core.SoundSmash)
}

func (t *Title) reveal() {
	t.revealed++
	t.audio.Play(core.SoundStab)
}

func (t *Title) showMenu() {
	t.menuShown = true
	t.menuAlpha = 1
}

// skipIntro jumps straight to the finished title.
func (t *Title) skipIntro() {
	t.intro.Cancel()
	t.ballY = 1
	t.smashed = true
	t.revealed = len(words)
	t.showMenu()
}

// Step handles menu input and advances the running sequence.
func (t *Title) Step(in core.InputFrame) {
	switch {
	case t.chosen:
	case !t.menuShown:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionLaunch) {
			t.skipIntro()
		}
	case in.Has(core.ActionUp):
		t.selected = itemPlay
	case in.Has(core.ActionDown):
		t.selected = itemQuit
	case in.Has(core.ActionConfirm), in.Has(core.ActionLaunch):
		t.choose(t.selected)
	}
	t.sched.Advance(t.dt)
}

func (t *Title) choose(it item) {
	if t.chosen {
		return
	}
	t.chosen = true
	switch it {
	case itemPlay:
		t.logger.Info("play selected")
		t.sched.Go(sequence.Steps(
			sequence.Tween(menuFade, func(p float64) { t.menuAlpha = 1 - p }),
			sequence.Tween(playFade, t.fadeOut),
			sequence.Do(func() { t.host.LoadScene(registry.GameScene) }),
		))
	case itemQuit:
		t.logger.Info("quit selected")
		t.sched.Go(sequence.Steps(
			sequence.Tween(quitFade, t.fadeOut),
			sequence.Do(func() { t.host.LoadScene(registry.CreditsScene) }),
		))
	}
}

func (t *Title) fadeOut(p float64) {
	t.host.SetScreenFade(p)
	t.host.SetVolume(1 - p)
}

// Render draws the wall, the intro ball, the revealed words, and the menu.
func (t *Title) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	wallY := h / 3
	mid := w / 2

	for y := 0; y < wallY+2; y++ {
		for x := 0; x < w; x++ {
			ch := '▓'
			if (x/4+y)%2 == 0 {
				ch = '▒'
			}
			dst.SetColor(x, y, ch, core.ColorDarkGray)
		}
	}
	if t.smashed {
		// The hole the ball left.
		hole := core.NewRect(mid-6, wallY-1, 12, 3)
		dst.DrawRect(hole, ' ', core.ColorDefault)
	} else {
		by := h - 1 - int(t.ballY*float64(h-1-wallY))
		dst.SetColor(mid, by, 'O', core.ColorBrightWhite)
	}

	row := wallY + 3
	for i := 0; i < t.revealed && i < len(words); i++ {
		dst.DrawTextCentered(row+i, words[i].text, words[i].color)
	}

	if t.menuShown && t.menuAlpha > 0.15 {
		items := []string{"PLAY", "QUIT"}
		for i, label := range items {
			c := core.ColorGray
			text := "  " + label + "  "
			if item(i) == t.selected {
				c = core.ColorBrightYellow
				text = "> " + label + " <"
			}
			dst.DrawTextCentered(row+len(words)+2+i, text, c.Faded(1-t.menuAlpha))
		}
		if t.hiScore > 0 {
			dst.DrawTextCentered(h-1, fmt.Sprintf("HI SCORE %06d", t.hiScore), core.ColorGray.Faded(1-t.menuAlpha))
		}
	}
}

func (t *Title) State() core.SceneState {
	return core.SceneState{HighScore: t.hiScore}
}

func (t *Title) Exit() {
	if t.sched != nil {
		t.sched.CancelAll()
	}
}
