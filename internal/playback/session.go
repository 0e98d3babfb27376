package playback

import "github.com/google/uuid"

// Session is the mutable state of one playback session.
type Session struct {
	ID      uuid.UUID
	Rate    float64
	Playing bool
	Pending Handle
}

// NewSession returns a running session at the given rate.
func NewSession(rate float64) Session {
	return Session{
		ID:      uuid.New(),
		Rate:    rate,
		Playing: true,
	}
}

// State is the logical playback state derived from Playing.
type State int

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}
