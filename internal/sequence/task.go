// Package sequence runs multi-tick procedures such as fades and title
// reveals. A Task is advanced once per frame and reports whether it has
// finished; combinators compose tasks into scripts that resume exactly
// where they left off on the next frame.
package sequence

// Status is the result of advancing a task by one frame.
type Status int

const (
	Continue Status = iota
	Done
)

// Task is a resumable procedure driven by the frame clock.
type Task interface {
	Advance(dt float64) Status
}

// Func adapts a function to the Task interface.
type Func func(dt float64) Status

// Advance calls f.
func (f Func) Advance(dt float64) Status { return f(dt) }

// remainder is implemented by tasks that can finish partway through a
// frame. Leftover is the part of the last dt they did not use. Tasks
// without it, such as Do and Until, use no time on the frame they finish.
type remainder interface {
	Leftover() float64
}

// leftover returns the time t left unused on the frame it finished.
func leftover(t Task, dt float64) float64 {
	if r, ok := t.(remainder); ok {
		return r.Leftover()
	}
	return dt
}

// epsilon absorbs the rounding of summed frame deltas, so ten 0.1 s
// frames finish a 1 s tween.
const epsilon = 1e-9

// tween calls fn with progress in [0,1] until duration has elapsed.
type tween struct {
	duration float64
	elapsed  float64
	fn       func(progress float64)
}

// Tween returns a task that reports progress from 0 to 1 over duration
// seconds. The final frame always reports exactly 1.
func Tween(duration float64, fn func(progress float64)) Task {
	return &tween{duration: duration, fn: fn}
}

func (t *tween) Advance(dt float64) Status {
	t.elapsed += max(dt, 0)
	if t.duration <= 0 || t.elapsed >= t.duration-epsilon {
		t.fn(1)
		return Done
	}
	t.fn(t.elapsed / t.duration)
	return Continue
}

// Leftover is the overshoot past the duration on the finishing frame.
func (t *tween) Leftover() float64 {
	return max(t.elapsed-max(t.duration, 0), 0)
}

// Wait returns a task that finishes after duration seconds.
func Wait(duration float64) Task {
	return Tween(duration, func(float64) {})
}

// Do returns a task that runs fn once and finishes in the same frame.
func Do(fn func()) Task {
	return Func(func(float64) Status {
		fn()
		return Done
	})
}

// Until returns a task that finishes on the first frame pred holds.
func Until(pred func() bool) Task {
	return Func(func(float64) Status {
		if pred() {
			return Done
		}
		return Continue
	})
}

// steps runs tasks one after another.
type steps struct {
	tasks []Task
	i     int
	rest  float64
}

// Steps runs tasks in order. When a task finishes, the next one starts in
// the same frame with whatever time the finished task left unused, so
// instantaneous steps never cost a frame and a tween's overshoot carries
// into the step after it.
func Steps(tasks ...Task) Task {
	return &steps{tasks: tasks}
}

func (s *steps) Advance(dt float64) Status {
	for s.i < len(s.tasks) {
		t := s.tasks[s.i]
		if t.Advance(dt) == Continue {
			return Continue
		}
		dt = leftover(t, dt)
		s.i++
	}
	s.rest = dt
	return Done
}

// Leftover is the time the last step left unused.
func (s *steps) Leftover() float64 { return s.rest }

// Each builds one task per item and runs them in order.
func Each[T any](items []T, build func(i int, item T) Task) Task {
	tasks := make([]Task, 0, len(items))
	for i, item := range items {
		tasks = append(tasks, build(i, item))
	}
	return Steps(tasks...)
}
