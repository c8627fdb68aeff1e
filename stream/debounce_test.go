package stream

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	var fired int32
	for i := 0; i < 10; i++ {
		d.Trigger("client:name", 40*time.Millisecond, func() {
			atomic.AddInt32(&fired, 1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Errorf("expected a burst to coalesce into one action, got %d", got)
	}
}

func TestDebouncer_LastActionWins(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	var got atomic.Value
	d.Trigger("s", 30*time.Millisecond, func() { got.Store("first") })
	d.Trigger("s", 30*time.Millisecond, func() { got.Store("second") })

	time.Sleep(120 * time.Millisecond)

	if v := got.Load(); v != "second" {
		t.Errorf("expected the most recent action to run, got %v", v)
	}
}

func TestDebouncer_StreamsAreIndependent(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	var a, b int32
	d.Trigger("line:0:id", 20*time.Millisecond, func() { atomic.AddInt32(&a, 1) })
	d.Trigger("line:1:id", 20*time.Millisecond, func() { atomic.AddInt32(&b, 1) })

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&a) != 1 || atomic.LoadInt32(&b) != 1 {
		t.Error("distinct streams must not reset each other's timers")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	var fired int32
	d.Trigger("s", 30*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	d.Cancel("s")

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&fired) != 0 {
		t.Error("cancelled action must not fire")
	}
}

func TestDebouncer_StopDropsAllPending(t *testing.T) {
	d := NewDebouncer()

	var fired int32
	d.Trigger("a", 30*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	d.Trigger("b", 30*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&fired) != 0 {
		t.Error("Stop must drop every pending action")
	}
}

func TestDebouncer_TriggerAfterFire(t *testing.T) {
	d := NewDebouncer()
	defer d.Stop()

	var fired int32
	d.Trigger("s", 10*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(80 * time.Millisecond)
	d.Trigger("s", 10*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 2 {
		t.Errorf("separate quiet periods fire separately, got %d", got)
	}
}
