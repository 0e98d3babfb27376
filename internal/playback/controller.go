package playback

import (
	"log/slog"
)

// Engine is the simulation driven by the controller.
type Engine interface {
	// Reset reinitializes the simulation to its start position.
	Reset() error
	// Step advances one logical unit and reports whether the simulation
	// reached a terminal condition.
	Step() (finished bool, err error)
	// Render redraws the current state without advancing it.
	Render() error
}

// Controller binds user intent to engine calls and runs the
// self-rescheduling tick loop.
type Controller struct {
	engine  Engine
	sched   Scheduler
	session Session
	logger  *slog.Logger
	ticks   int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a controller in the running state. The loop does not start
// until Start is called.
func New(eng Engine, sched Scheduler, rate float64, opts ...Option) *Controller {
	c := &Controller{
		engine:  eng,
		sched:   sched,
		session: NewSession(rate),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session", c.session.ID.String())
	return c
}

// Start schedules the first tick.
func (c *Controller) Start() {
	c.logger.Info("playback started", "rate", c.session.Rate)
	c.schedule()
}

// Reset restarts the engine and forces the running state. An engine error
// is returned as is and leaves the state untouched.
func (c *Controller) Reset() error {
	if err := c.engine.Reset(); err != nil {
		return err
	}
	c.session.Playing = true
	c.logger.Debug("reset", "state", c.State())
	return nil
}

// Toggle flips between running and paused.
func (c *Controller) Toggle() {
	c.session.Playing = !c.session.Playing
	c.logger.Debug("toggle", "state", c.State())
}

// SetRate changes the rate used by the next scheduling decision. The value
// is taken as is: zero or negative rates schedule with no delay.
func (c *Controller) SetRate(rate float64) {
	c.session.Rate = rate
	c.logger.Debug("rate changed", "rate", rate)
}

// Tick runs one loop iteration: step when running, render when paused,
// then schedule the next tick. An engine error is returned before the next
// tick is scheduled, which ends the loop.
func (c *Controller) Tick() error {
	c.ticks++
	if c.session.Playing {
		finished, err := c.engine.Step()
		if err != nil {
			c.logger.Error("step failed", "tick", c.ticks, "err", err)
			return err
		}
		if finished {
			c.session.Playing = false
			c.logger.Info("engine finished", "tick", c.ticks)
		}
	} else {
		if err := c.engine.Render(); err != nil {
			c.logger.Error("render failed", "tick", c.ticks, "err", err)
			return err
		}
	}
	c.schedule()
	return nil
}

// schedule reads the rate at decision time and records the pending handle.
// A previously pending handle is not cancelled, so a tick scheduled before
// a reset still fires.
func (c *Controller) schedule() {
	c.session.Pending = c.sched.Schedule(Delay(c.session.Rate), c.Tick)
}

func (c *Controller) State() State {
	if c.session.Playing {
		return Running
	}
	return Paused
}

func (c *Controller) Playing() bool { return c.session.Playing }
func (c *Controller) Rate() float64 { return c.session.Rate }
func (c *Controller) Ticks() int    { return c.ticks }

// Pending returns the handle of the next scheduled tick, or nil before
// Start.
func (c *Controller) Pending() Handle { return c.session.Pending }

// Session returns a copy of the session state.
func (c *Controller) Session() Session { return c.session }
