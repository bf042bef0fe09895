// Package schedule tracks one-shot deferred tasks so a delivered timer can
// be matched against its handle and ignored once cancelled.
package schedule

import "time"

// Kind groups tasks that revert the same piece of state.
type Kind string

// Task is the handle for a scheduled one-shot task.
type Task struct {
	ID    uint64
	Kind  Kind
	Delay time.Duration
}

// Registry issues task handles and tracks which are still pending.
// Tasks are never coalesced: scheduling the same kind twice yields two
// independent tasks that both fire.
type Registry struct {
	next    uint64
	pending map[uint64]Task
}

func NewRegistry() *Registry {
	return &Registry{pending: make(map[uint64]Task)}
}

// Schedule registers a new pending task.
func (r *Registry) Schedule(kind Kind, delay time.Duration) Task {
	r.next++
	t := Task{ID: r.next, Kind: kind, Delay: delay}
	r.pending[t.ID] = t
	return t
}

// CancelAll drops every pending task. Ticks already in flight are then
// ignored by Fire.
func (r *Registry) CancelAll() {
	clear(r.pending)
}

// Fire marks a task as delivered. The boolean is false when the task was
// cancelled or already fired, in which case the caller must not act on it.
func (r *Registry) Fire(id uint64) (Task, bool) {
	t, ok := r.pending[id]
	if !ok {
		return Task{}, false
	}
	delete(r.pending, id)
	return t, true
}

// Pending counts the pending tasks of a kind.
func (r *Registry) Pending(kind Kind) int {
	n := 0
	for _, t := range r.pending {
		if t.Kind == kind {
			n++
		}
	}
	return n
}
