package schedule

import "time"

// Virtual is a Scheduler driven by explicit calls to Advance.
type Virtual struct {
	now   time.Duration
	seq   uint64
	tasks []*task
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) After(d time.Duration, action func()) Timer {
	if d < 0 {
		d = 0
	}
	v.seq++
	t := &task{id: v.seq, due: v.now + d, action: action}
	v.tasks = append(v.tasks, t)
	return t
}

// Now returns the virtual time elapsed since creation.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// Advance moves virtual time forward by d, running every action that falls
// due, in due order and then scheduling order. Actions scheduled while
// advancing run too if they fall due within the window. It returns the
// number of actions run.
func (v *Virtual) Advance(d time.Duration) int {
	target := v.now + d
	ran := 0
	for {
		next := v.popDue(target)
		if next == nil {
			break
		}
		v.now = next.due
		next.fired = true
		next.action()
		ran++
	}
	v.now = target
	return ran
}

// Pending returns the number of actions still waiting to run.
func (v *Virtual) Pending() int {
	n := 0
	for _, t := range v.tasks {
		if t.live() {
			n++
		}
	}
	return n
}

func (v *Virtual) popDue(target time.Duration) *task {
	idx := -1
	live := v.tasks[:0]
	for _, t := range v.tasks {
		if t.live() {
			live = append(live, t)
		}
	}
	v.tasks = live

	for i, t := range v.tasks {
		if t.due > target {
			continue
		}
		if idx == -1 || t.due < v.tasks[idx].due || (t.due == v.tasks[idx].due && t.id < v.tasks[idx].id) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := v.tasks[idx]
	v.tasks = append(v.tasks[:idx], v.tasks[idx+1:]...)
	return t
}
