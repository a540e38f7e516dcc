// Package credits is the closing scene. It fades each two-line credit in
// and out, then fades the screen and quits. Any key quits at once.
package credits

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/steelwall/internal/config"
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/registry"
	"github.com/vovakirdan/steelwall/internal/sequence"
)

const (
	line1Color = core.ColorRed
	line2Color = core.ColorGray
)

func init() {
	registry.Register(registry.CreditsScene, func() registry.Scene { return New() })
}

// Credits is the closing credits scene.
type Credits struct {
	host   registry.Host
	logger *log.Logger
	cfg    config.CreditsConfig
	sched  *sequence.Scheduler
	dt     float64

	current int // Index into the roll, -1 before the first credit
	alpha   float64
}

var _ registry.Scene = (*Credits)(nil)

// New creates the credits scene.
func New() *Credits {
	return &Credits{current: -1}
}

func (c *Credits) ID() string    { return registry.CreditsScene }
func (c *Credits) Title() string { return "Credits" }

// Enter starts the roll with the screen visible.
func (c *Credits) Enter(h registry.Host) {
	c.host = h
	c.logger = h.Logger().WithPrefix("credits")
	c.cfg = h.Settings().Credits
	c.dt = h.Runtime().DeltaTime()
	c.sched = sequence.NewScheduler(h.Context())

	h.SetScreenFade(0)
	h.SetVolume(1)
	c.sched.Go(c.roll())
}

func (c *Credits) roll() sequence.Task {
	last := len(c.cfg.Roll) - 1
	return sequence.Steps(
		sequence.Wait(c.cfg.Wait),
		sequence.Each(c.cfg.Roll, func(i int, _ config.Credit) sequence.Task {
			gap := c.cfg.Gap
			if i == last {
				gap = 0
			}
			return sequence.Steps(
				sequence.Do(func() { c.current = i }),
				sequence.Tween(c.cfg.FadeIn, func(p float64) { c.alpha = p }),
				sequence.Tween(c.cfg.FadeOut, func(p float64) { c.alpha = 1 - p }),
				sequence.Wait(gap),
			)
		}),
		sequence.Tween(c.cfg.FinalFade, func(p float64) {
			c.host.SetScreenFade(p)
			c.host.SetVolume(1 - p)
		}),
		sequence.Do(func() {
			c.logger.Info("credits finished")
			c.host.Quit()
		}),
	)
}

// Step quits on any key and otherwise advances the roll.
func (c *Credits) Step(in core.InputFrame) {
	if in.Has(core.ActionAny) || in.Has(core.ActionQuit) {
		c.logger.Debug("credits skipped")
		c.host.Quit()
		return
	}
	c.sched.Advance(c.dt)
}

// Render draws the current credit at its fade level.
func (c *Credits) Render(dst *core.Screen) {
	if c.current >= 0 && c.current < len(c.cfg.Roll) && c.alpha >= 0.15 {
		credit := c.cfg.Roll[c.current]
		mid := dst.Height() / 2
		fade := 1 - c.alpha
		dst.DrawTextCentered(mid-1, credit.Line1, line1Color.Faded(fade))
		dst.DrawTextCentered(mid+1, credit.Line2, line2Color.Faded(fade))
	}

	// Rubble from the wall along the bottom edge.
	rubble := []rune("▁▂▃▂▁▃▂")
	y := dst.Height() - 1
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, y, rubble[(x*7+x/3)%len(rubble)], core.ColorDarkGray)
	}
}

func (c *Credits) State() core.SceneState { return core.SceneState{} }

func (c *Credits) Exit() {
	if c.sched != nil {
		c.sched.CancelAll()
	}
}
