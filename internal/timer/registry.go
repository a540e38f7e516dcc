package timer

import "sort"

// Registry owns every timer of a session, keyed by ID.
// Registration is open: any collaborator may register any ID at any time.
// A Registry is driven from the single frame loop and is not safe for
// concurrent use.
type Registry struct {
	timers map[ID]*Timer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{timers: make(map[ID]*Timer)}
}

// Register creates the timer if missing. A running timer is left untouched.
func (r *Registry) Register(id ID) {
	if _, ok := r.timers[id]; ok {
		return
	}
	r.timers[id] = &Timer{}
}

// Registered reports whether id was ever registered.
func (r *Registry) Registered(id ID) bool {
	_, ok := r.timers[id]
	return ok
}

// Get returns the remaining time, or Absent for an unregistered ID.
func (r *Registry) Get(id ID) float64 {
	t, ok := r.timers[id]
	if !ok {
		return Absent
	}
	return t.GetTime()
}

// Add extends a registered timer. Unregistered IDs are silently ignored.
func (r *Registry) Add(id ID, seconds float64) {
	t, ok := r.timers[id]
	if !ok {
		return
	}
	t.AddTime(seconds)
}

// TickAll counts every registered timer down by delta exactly once.
func (r *Registry) TickAll(delta float64) {
	for _, t := range r.timers {
		t.Tick(delta)
	}
}

// Entry is a point-in-time view of one timer.
type Entry struct {
	ID        ID
	Remaining float64
}

// Snapshot returns all registered timers ordered by ID.
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, len(r.timers))
	for id, t := range r.timers {
		out = append(out, Entry{ID: id, Remaining: t.GetTime()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
