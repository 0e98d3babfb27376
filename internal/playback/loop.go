package playback

import (
	"context"
	"sync"
	"time"
)

// DefaultRefreshRate is the frame rate used when none is configured.
const DefaultRefreshRate = 60.0

const (
	timerWaiting = iota
	timerFrame
	timerFired
	timerCancelled
)

// Loop is a single-goroutine event loop. Posted events and scheduled
// callbacks all run on the goroutine that called Run, one at a time.
type Loop struct {
	mu      sync.Mutex
	queue   []func() error
	frame   []*loopTimer
	wake    chan struct{}
	frames  <-chan time.Time
	refresh time.Duration
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithFrames replaces the refresh ticker with an external frame source.
func WithFrames(frames <-chan time.Time) LoopOption {
	return func(l *Loop) { l.frames = frames }
}

// NewLoop creates a loop whose frame boundaries occur refreshRate times
// per second.
func NewLoop(refreshRate float64, opts ...LoopOption) *Loop {
	if refreshRate <= 0 {
		refreshRate = DefaultRefreshRate
	}
	l := &Loop{
		wake:    make(chan struct{}, 1),
		refresh: time.Duration(float64(time.Second) / refreshRate),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Post queues fn to run on the loop goroutine. Safe for concurrent use.
func (l *Loop) Post(fn func() error) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	l.signal()
}

// Schedule waits delay, then parks fn until the next frame boundary, where
// it runs on the loop goroutine.
func (l *Loop) Schedule(delay time.Duration, fn func() error) Handle {
	t := &loopTimer{loop: l, fn: fn}
	l.mu.Lock()
	t.timer = time.AfterFunc(delay, t.expire)
	l.mu.Unlock()
	return t
}

// Run processes events until ctx is done or a callback fails. The first
// callback error is returned and stops the loop.
func (l *Loop) Run(ctx context.Context) error {
	frames := l.frames
	if frames == nil {
		ticker := time.NewTicker(l.refresh)
		defer ticker.Stop()
		frames = ticker.C
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			if err := l.drainEvents(); err != nil {
				return err
			}
		case <-frames:
			// events posted before the frame are observed by its callbacks
			if err := l.drainEvents(); err != nil {
				return err
			}
			if err := l.runFrame(); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) drainEvents() error {
	l.mu.Lock()
	queue := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, fn := range queue {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) runFrame() error {
	l.mu.Lock()
	ready := l.frame
	l.frame = nil
	for _, t := range ready {
		t.state = timerFired
	}
	l.mu.Unlock()
	for _, t := range ready {
		if err := t.fn(); err != nil {
			return err
		}
	}
	return nil
}

// loopTimer is the Handle returned by Loop.Schedule. state is guarded by
// loop.mu.
type loopTimer struct {
	loop  *Loop
	fn    func() error
	timer *time.Timer
	state int
}

func (t *loopTimer) expire() {
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.state != timerWaiting {
		return
	}
	t.state = timerFrame
	l.frame = append(l.frame, t)
}

func (t *loopTimer) Cancel() bool {
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()
	switch t.state {
	case timerWaiting:
		t.timer.Stop()
	case timerFrame:
		for i, p := range l.frame {
			if p == t {
				l.frame = append(l.frame[:i], l.frame[i+1:]...)
				break
			}
		}
	default:
		return false
	}
	t.state = timerCancelled
	return true
}
