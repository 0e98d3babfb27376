package playback

import "time"

// FrameQueue is a Scheduler for render loops that own their thread. A
// scheduled callback becomes due once its delay has elapsed and runs on the
// next RunDue call, which the render loop makes once per frame. It is not
// safe for concurrent use.
type FrameQueue struct {
	now     func() time.Time
	pending []*frameEntry
}

// NewFrameQueue creates a queue reading time from now, or from time.Now
// when now is nil.
func NewFrameQueue(now func() time.Time) *FrameQueue {
	if now == nil {
		now = time.Now
	}
	return &FrameQueue{now: now}
}

func (q *FrameQueue) Schedule(delay time.Duration, fn func() error) Handle {
	e := &frameEntry{queue: q, due: q.now().Add(delay), fn: fn}
	q.pending = append(q.pending, e)
	return e
}

// RunDue runs every callback whose delay has elapsed, in scheduling order.
// Callbacks scheduled while it runs wait for a later frame. The first
// error is returned and the remaining due callbacks are dropped.
func (q *FrameQueue) RunDue() error {
	now := q.now()
	var due []*frameEntry
	kept := q.pending[:0]
	for _, e := range q.pending {
		if e.due.After(now) {
			kept = append(kept, e)
		} else {
			due = append(due, e)
		}
	}
	q.pending = kept
	for _, e := range due {
		if err := e.fn(); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of callbacks waiting to run.
func (q *FrameQueue) Len() int { return len(q.pending) }

type frameEntry struct {
	queue *FrameQueue
	due   time.Time
	fn    func() error
}

func (e *frameEntry) Cancel() bool {
	q := e.queue
	for i, p := range q.pending {
		if p == e {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return true
		}
	}
	return false
}
