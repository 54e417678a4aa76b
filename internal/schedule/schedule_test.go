package schedule

import (
	"testing"
	"time"
)

func TestVirtual_RunsInDueOrder(t *testing.T) {
	v := NewVirtual()
	var order []string

	v.After(300*time.Millisecond, func() { order = append(order, "c") })
	v.After(100*time.Millisecond, func() { order = append(order, "a") })
	v.After(100*time.Millisecond, func() { order = append(order, "b") })

	if ran := v.Advance(50 * time.Millisecond); ran != 0 {
		t.Errorf("expected nothing to run after 50ms, ran %d", ran)
	}
	if ran := v.Advance(time.Second); ran != 3 {
		t.Errorf("expected 3 actions to run, ran %d", ran)
	}

	want := "abc"
	got := ""
	for _, s := range order {
		got += s
	}
	if got != want {
		t.Errorf("expected order %q, got %q", want, got)
	}
	if v.Now() != 1050*time.Millisecond {
		t.Errorf("expected now 1.05s, got %v", v.Now())
	}
}

func TestVirtual_RescheduleWithinWindow(t *testing.T) {
	v := NewVirtual()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		v.After(time.Second, tick)
	}
	v.After(time.Second, tick)

	v.Advance(125 * time.Second)
	if ticks != 125 {
		t.Errorf("expected 125 ticks, got %d", ticks)
	}
	if v.Pending() != 1 {
		t.Errorf("expected the next tick to be pending, got %d", v.Pending())
	}
}

func TestVirtual_Stop(t *testing.T) {
	v := NewVirtual()
	ran := false
	timer := v.After(time.Second, func() { ran = true })

	if !timer.Stop() {
		t.Error("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}
	v.Advance(2 * time.Second)
	if ran {
		t.Error("stopped action ran")
	}
	if v.Pending() != 0 {
		t.Errorf("expected no pending actions, got %d", v.Pending())
	}
}

func TestQueue_DrainAndFire(t *testing.T) {
	q := NewQueue()
	var fired []int

	q.After(time.Second, func() { fired = append(fired, 1) })
	stopped := q.After(500*time.Millisecond, func() { fired = append(fired, 2) })

	pending := q.Drain()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].Delay != time.Second || pending[1].Delay != 500*time.Millisecond {
		t.Errorf("unexpected delays: %+v", pending)
	}
	if len(q.Drain()) != 0 {
		t.Error("second Drain should be empty")
	}

	stopped.Stop()
	if q.Fire(pending[1].ID) {
		t.Error("stopped action should not fire")
	}
	if !q.Fire(pending[0].ID) {
		t.Error("live action should fire")
	}
	if q.Fire(pending[0].ID) {
		t.Error("action should fire only once")
	}
	if len(fired) != 1 || fired[0] != 1 {
		t.Errorf("unexpected fired actions: %v", fired)
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}
