package sequence

import "context"

// Handle controls a running task.
type Handle struct {
	cancel context.CancelFunc
	done   bool
}

// Cancel stops the task before its next frame.
func (h *Handle) Cancel() { h.cancel() }

// Done reports whether the task finished or was dropped.
func (h *Handle) Done() bool { return h.done }

type entry struct {
	ctx    context.Context
	task   Task
	handle *Handle
}

// Scheduler advances running tasks once per frame.
// Tasks may start other tasks while being advanced; those begin on the
// next frame. A Scheduler belongs to one frame loop and is not safe for
// concurrent use.
type Scheduler struct {
	running []*entry
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewScheduler creates a scheduler whose tasks are all cancelled when ctx
// ends or CancelAll is called.
func NewScheduler(ctx context.Context) *Scheduler {
	s := &Scheduler{}
	s.ctx, s.cancel = context.WithCancel(ctx)
	return s
}

// Start schedules t. It is dropped without further frames once ctx or the
// scheduler is cancelled.
func (s *Scheduler) Start(ctx context.Context, t Task) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel}
	s.running = append(s.running, &entry{ctx: ctx, task: t, handle: h})
	return h
}

// Go schedules t under the scheduler's own context.
func (s *Scheduler) Go(t Task) *Handle {
	return s.Start(s.ctx, t)
}

// Advance runs every live task for one frame of dt seconds.
func (s *Scheduler) Advance(dt float64) {
	current := s.running
	s.running = nil

	kept := current[:0]
	for _, e := range current {
		if s.ctx.Err() != nil || e.ctx.Err() != nil {
			e.handle.done = true
			e.handle.cancel()
			continue
		}
		if e.task.Advance(dt) == Done {
			e.handle.done = true
			e.handle.cancel()
			continue
		}
		kept = append(kept, e)
	}
	s.running = append(kept, s.running...)
}

// CancelAll drops every task, including ones started later.
func (s *Scheduler) CancelAll() {
	s.cancel()
	for _, e := range s.running {
		e.handle.done = true
	}
	s.running = nil
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int { return len(s.running) }
