package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/autochess/internal/playback"
)

// TickMsg is delivered when a scheduled tick's delay has elapsed.
type TickMsg struct {
	ID uint64
}

// teaScheduler turns scheduled callbacks into tea.Tick commands. The
// callback runs inside Update, so it shares Bubble Tea's event goroutine
// with key handling, and its effects are painted on the renderer's next
// frame.
type teaScheduler struct {
	next    uint64
	pending map[uint64]*teaTimer
	cmds    []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[uint64]*teaTimer)}
}

func (s *teaScheduler) Schedule(delay time.Duration, fn func() error) playback.Handle {
	s.next++
	id := s.next
	t := &teaTimer{id: id, fn: fn, sched: s}
	s.pending[id] = t
	s.cmds = append(s.cmds, tea.Tick(delay, func(time.Time) tea.Msg { return TickMsg{ID: id} }))
	return t
}

// fire runs the callback for id. Cancelled or unknown ids are ignored.
func (s *teaScheduler) fire(id uint64) error {
	t, ok := s.pending[id]
	if !ok {
		return nil
	}
	delete(s.pending, id)
	return t.fn()
}

// flush returns the commands queued since the last flush.
func (s *teaScheduler) flush() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) Pending() int { return len(s.pending) }

type teaTimer struct {
	id    uint64
	fn    func() error
	sched *teaScheduler
}

func (t *teaTimer) Cancel() bool {
	if _, ok := t.sched.pending[t.id]; !ok {
		return false
	}
	delete(t.sched.pending, t.id)
	return true
}
