// Package timer provides named countdown timers shared by every part of a
// play session. Timers only count down; callers poll them each frame.
package timer

// Absent is returned by Registry.Get for an ID that was never registered.
const Absent = -1.0

// ID identifies a shared countdown timer.
type ID int

const (
	WallStop   ID = iota // Freezes the wall while positive
	Invincible           // Balls pass through bricks while positive
	BigBall              // Balls are enlarged while positive
	SpeedBall            // Balls move faster while positive
)

// String returns the display name of the timer.
func (id ID) String() string {
	switch id {
	case WallStop:
		return "Wall Stop Timer"
	case Invincible:
		return "Invincible"
	case BigBall:
		return "Big Ball"
	case SpeedBall:
		return "Speed Ball"
	default:
		return "Unknown"
	}
}

// Timer is a non-negative countdown measured in seconds.
type Timer struct {
	remaining float64
}

// AddTime extends the countdown. Negative amounts are ignored.
func (t *Timer) AddTime(seconds float64) {
	if seconds <= 0 {
		return
	}
	t.remaining += seconds
}

// Tick counts down by delta seconds, stopping at zero.
func (t *Timer) Tick(delta float64) {
	if delta <= 0 {
		return
	}
	t.remaining -= delta
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// GetTime returns the remaining seconds.
func (t *Timer) GetTime() float64 {
	return t.remaining
}

// Active reports whether the countdown is still running.
func (t *Timer) Active() bool {
	return t.remaining > 0
}
