package schedule

import "time"

// Pending is a scheduled action waiting to be handed to the event loop.
type Pending struct {
	ID    uint64
	Delay time.Duration
}

// Queue is a Scheduler for event loops that own their own timers, such as
// Bubble Tea. The loop drains newly scheduled actions, arranges for a message
// after each delay, and calls Fire with the action's ID when it arrives.
type Queue struct {
	seq   uint64
	tasks map[uint64]*task
	fresh []Pending
}

func NewQueue() *Queue {
	return &Queue{tasks: make(map[uint64]*task)}
}

func (q *Queue) After(d time.Duration, action func()) Timer {
	if d < 0 {
		d = 0
	}
	q.seq++
	t := &task{id: q.seq, due: d, action: action}
	q.tasks[t.id] = t
	q.fresh = append(q.fresh, Pending{ID: t.id, Delay: d})
	return t
}

// Drain returns the actions scheduled since the previous call.
func (q *Queue) Drain() []Pending {
	out := q.fresh
	q.fresh = nil
	return out
}

// Fire runs the action with the given ID unless it was stopped.
// It reports whether an action ran.
func (q *Queue) Fire(id uint64) bool {
	t, ok := q.tasks[id]
	if !ok {
		return false
	}
	delete(q.tasks, id)
	if !t.live() {
		return false
	}
	t.fired = true
	t.action()
	return true
}

// Len returns the number of actions not yet fired or dropped.
func (q *Queue) Len() int {
	n := 0
	for _, t := range q.tasks {
		if t.live() {
			n++
		}
	}
	return n
}
