package playback

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameQueue_RunsOnlyDueCallbacks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := NewFrameQueue(clock.now)

	var got []string
	q.Schedule(100*time.Millisecond, func() error { got = append(got, "late"); return nil })
	q.Schedule(0, func() error { got = append(got, "now"); return nil })

	if err := q.RunDue(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "now" {
		t.Fatalf("first frame ran %v", got)
	}

	clock.advance(100 * time.Millisecond)
	if err := q.RunDue(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "late" {
		t.Fatalf("second frame ran %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}

func TestFrameQueue_RescheduleWaitsForNextFrame(t *testing.T) {
	q := NewFrameQueue(nil)
	runs := 0
	var tick func() error
	tick = func() error {
		runs++
		q.Schedule(0, tick)
		return nil
	}
	q.Schedule(0, tick)

	for i := 0; i < 3; i++ {
		if err := q.RunDue(); err != nil {
			t.Fatal(err)
		}
	}
	if runs != 3 {
		t.Errorf("expected one run per frame, got %d over 3 frames", runs)
	}
}

func TestFrameQueue_Cancel(t *testing.T) {
	q := NewFrameQueue(nil)
	ran := false
	h := q.Schedule(0, func() error { ran = true; return nil })
	if !h.Cancel() {
		t.Fatal("cancel of a pending callback should succeed")
	}
	if h.Cancel() {
		t.Error("second cancel should report false")
	}
	if err := q.RunDue(); err != nil {
		t.Fatal(err)
	}
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestFrameQueue_StopsOnError(t *testing.T) {
	q := NewFrameQueue(nil)
	boom := errors.New("boom")
	second := false
	q.Schedule(0, func() error { return boom })
	q.Schedule(0, func() error { second = true; return nil })

	if err := q.RunDue(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if second {
		t.Error("callbacks after a failure should not run")
	}
}

func TestFrameQueue_DrivesController(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := NewFrameQueue(clock.now)
	eng := &stepCounter{finishAt: 100}
	ctrl := New(eng, q, 4, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	ctrl.Start()

	for frame := 0; frame < 20; frame++ {
		clock.advance(50 * time.Millisecond)
		if err := q.RunDue(); err != nil {
			t.Fatal(err)
		}
	}
	if eng.steps != 4 {
		t.Errorf("expected 4 steps in one second at 4/s, got %d", eng.steps)
	}
	if q.Len() != 1 {
		t.Errorf("expected exactly one tick in flight, got %d", q.Len())
	}
}
