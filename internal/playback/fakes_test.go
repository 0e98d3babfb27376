package playback_test

import (
	"time"

	"github.com/san-kum/autochess/internal/playback"
)

// countingEngine records calls and advances a logical position on Step.
type countingEngine struct {
	resets, steps, renders int
	position               int
	finishAt               int
	stepErr, renderErr     error
	resetErr               error
}

func (e *countingEngine) Reset() error {
	e.resets++
	if e.resetErr != nil {
		return e.resetErr
	}
	e.position = 0
	return nil
}

func (e *countingEngine) Step() (bool, error) {
	e.steps++
	if e.stepErr != nil {
		return false, e.stepErr
	}
	e.position++
	return e.finishAt > 0 && e.position >= e.finishAt, nil
}

func (e *countingEngine) Render() error {
	e.renders++
	return e.renderErr
}

type scheduled struct {
	delay     time.Duration
	fn        func() error
	cancelled bool
}

func (s *scheduled) Cancel() bool {
	if s.cancelled {
		return false
	}
	s.cancelled = true
	return true
}

// manualScheduler keeps scheduled callbacks until the test fires them.
type manualScheduler struct {
	pending []*scheduled
	delays  []time.Duration
}

func (m *manualScheduler) Schedule(delay time.Duration, fn func() error) playback.Handle {
	s := &scheduled{delay: delay, fn: fn}
	m.pending = append(m.pending, s)
	m.delays = append(m.delays, delay)
	return s
}

// fire runs the oldest pending callback.
func (m *manualScheduler) fire() error {
	s := m.pending[0]
	m.pending = m.pending[1:]
	if s.cancelled {
		return nil
	}
	return s.fn()
}

func (m *manualScheduler) lastDelay() time.Duration {
	return m.delays[len(m.delays)-1]
}
