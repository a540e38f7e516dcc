package bricks

import (
	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/timer"
	"github.com/vovakirdan/steelwall/internal/wall"
)

// Field limits in world units.
const (
	BrickWidth  = 2.0
	BrickHeight = 1.0
	// HitCeiling is the height above which bricks ignore hits; rows that are
	// still sliding into view cannot be struck.
	HitCeiling = 13.0
	// BreachLine is the height below which a brick ends the game.
	BreachLine = -0.546453
)

// Manager is the part of the session a brick talks to.
type Manager interface {
	RegisterTimer(id timer.ID)
	GetTimer(id timer.ID) float64
	UpdateTimer(id timer.ID, seconds float64)
	AddPoints(n int)
	AddBall(n int)
}

// Effects receives presentation signals. Implementations play sounds or
// draw explosions; the field works without one.
type Effects interface {
	BrickDestroyed(b *Brick)
	Exploded(x, y, radius float64)
}

// Brick is one live brick in the wall.
type Brick struct {
	ID  int
	Def *Def
	X   float64
	// Anchor is the brick's height when the wall scroll is zero.
	Anchor float64
	dying  bool
}

// Y returns the brick's current height for the given wall scroll.
func (b *Brick) Y(scroll float64) float64 {
	return b.Anchor - scroll
}

// Bounds returns the brick's box for the given wall scroll.
func (b *Brick) Bounds(scroll float64) core.Box {
	y := b.Y(scroll)
	return core.Box{
		MinX: b.X - BrickWidth/2,
		MinY: y - BrickHeight/2,
		MaxX: b.X + BrickWidth/2,
		MaxY: y + BrickHeight/2,
	}
}

// Dying reports whether the brick has been destroyed this frame.
func (b *Brick) Dying() bool { return b.dying }

// Blast is a short-lived zone that destroys every brick it touches.
type Blast struct {
	X, Y      float64
	Radius    float64
	Remaining float64
}

// Field owns the live bricks and resolves their destruction.
type Field struct {
	catalog *Catalog
	mgr     Manager
	fx      Effects
	scroll  float64
	bricks  []*Brick
	blasts  []*Blast
	nextID  int
}

// NewField creates an empty field. fx may be nil.
func NewField(cat *Catalog, mgr Manager, fx Effects) *Field {
	return &Field{catalog: cat, mgr: mgr, fx: fx}
}

// SetScroll updates the wall offset used to position bricks.
func (f *Field) SetScroll(scroll float64) { f.scroll = scroll }

// Scroll returns the wall offset.
func (f *Field) Scroll() float64 { return f.scroll }

// Spawn places a brick at (x, y) in current world coordinates and performs
// its timer registrations.
func (f *Field) Spawn(def *Def, x, y float64) *Brick {
	f.nextID++
	b := &Brick{ID: f.nextID, Def: def, X: x, Anchor: y + f.scroll}
	f.attach(b)
	f.bricks = append(f.bricks, b)
	return b
}

// SpawnRow places every slot of a generated row.
func (f *Field) SpawnRow(row wall.Row) {
	for _, s := range row.Slots {
		f.Spawn(f.catalog.Resolve(s), s.X, row.Y)
	}
}

// attach registers the timers a brick reads or writes.
func (f *Field) attach(b *Brick) {
	f.mgr.RegisterTimer(timer.Invincible)
	switch b.Def.Kind {
	case SpeedPowerup:
		f.mgr.RegisterTimer(timer.SpeedBall)
	case BigBallPowerup:
		f.mgr.RegisterTimer(timer.BigBall)
	case GlowPowerup:
		f.mgr.RegisterTimer(timer.BigBall)
	case WallStopper:
		f.mgr.RegisterTimer(timer.WallStop)
	}
}

// PassThrough reports whether balls currently destroy bricks without
// bouncing off them.
func (f *Field) PassThrough() bool {
	return f.mgr.GetTimer(timer.Invincible) > 0
}

// Hit resolves a ball striking b. A solid hit leaves the brick's
// replacement behind; a pass-through hit does not. It reports whether
// the brick was destroyed.
func (f *Field) Hit(b *Brick, passThrough bool) bool {
	if b.dying || b.Y(f.scroll) > HitCeiling {
		return false
	}
	if !passThrough {
		if next := b.Def.Replacement(); next != nil {
			f.Spawn(next, b.X, b.Y(f.scroll))
		}
	}
	f.Kill(b)
	return true
}

// Kill destroys b and applies its kind's effect. Killing a dying brick is
// a no-op, which is what ends bomb chain reactions.
func (f *Field) Kill(b *Brick) {
	if b.dying {
		return
	}
	b.dying = true

	if f.fx != nil {
		f.fx.BrickDestroyed(b)
	}
	f.mgr.AddPoints(b.Def.Points)

	d := b.Def
	switch d.Kind {
	case Normal:
	case SpeedPowerup:
		f.mgr.UpdateTimer(timer.SpeedBall, d.Duration)
	case BigBallPowerup:
		f.mgr.UpdateTimer(timer.BigBall, d.Duration)
	case GlowPowerup:
		f.mgr.UpdateTimer(timer.Invincible, d.Duration)
		f.mgr.UpdateTimer(timer.BigBall, d.Duration)
	case BonusBalls:
		f.mgr.AddBall(d.Balls)
	case WallStopper:
		f.mgr.UpdateTimer(timer.WallStop, d.Duration)
	case Bomb:
		f.explode(b)
	case TNT:
		f.detonate(b)
	}
}

// explode destroys every brick within the bomb's radius at once.
func (f *Field) explode(b *Brick) {
	x, y := b.X, b.Y(f.scroll)
	if f.fx != nil {
		f.fx.Exploded(x, y, b.Def.Radius)
	}
	for _, other := range f.inRadius(x, y, b.Def.Radius) {
		f.Kill(other)
	}
}

// detonate leaves a blast zone that keeps destroying bricks for a moment.
func (f *Field) detonate(b *Brick) {
	x, y := b.X, b.Y(f.scroll)
	if f.fx != nil {
		f.fx.Exploded(x, y, b.Def.Radius)
	}
	f.blasts = append(f.blasts, &Blast{
		X:         x,
		Y:         y,
		Radius:    b.Def.Radius,
		Remaining: b.Def.Lifetime,
	})
}

func (f *Field) inRadius(x, y, r float64) []*Brick {
	var hits []*Brick
	for _, o := range f.bricks {
		if o.dying {
			continue
		}
		if o.Bounds(f.scroll).IntersectsCircle(x, y, r) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Step runs blast zones for dt seconds and drops destroyed bricks.
func (f *Field) Step(dt float64) {
	live := f.blasts[:0]
	for _, bl := range f.blasts {
		for _, o := range f.inRadius(bl.X, bl.Y, bl.Radius) {
			f.Kill(o)
		}
		bl.Remaining -= dt
		if bl.Remaining > 0 {
			live = append(live, bl)
		}
	}
	f.blasts = live
	f.sweep()
}

func (f *Field) sweep() {
	live := f.bricks[:0]
	for _, b := range f.bricks {
		if !b.dying {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(f.bricks); i++ {
		f.bricks[i] = nil
	}
	f.bricks = live
}

// Bricks returns the bricks still standing.
func (f *Field) Bricks() []*Brick {
	out := make([]*Brick, 0, len(f.bricks))
	for _, b := range f.bricks {
		if !b.dying {
			out = append(out, b)
		}
	}
	return out
}

// Blasts returns the active blast zones.
func (f *Field) Blasts() []*Blast { return f.blasts }

// Breached reports whether any standing brick has crossed the breach line.
func (f *Field) Breached() bool {
	for _, b := range f.bricks {
		if !b.dying && b.Y(f.scroll) < BreachLine {
			return true
		}
	}
	return false
}

// Collide returns the first standing brick overlapping the circle, or nil.
func (f *Field) Collide(x, y, r float64) *Brick {
	for _, b := range f.bricks {
		if b.dying {
			continue
		}
		if b.Bounds(f.scroll).IntersectsCircle(x, y, r) {
			return b
		}
	}
	return nil
}

// Clear removes every brick and blast.
func (f *Field) Clear() {
	f.bricks = nil
	f.blasts = nil
}
