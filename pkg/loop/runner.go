package loop

import (
	"time"

	"github.com/golangdaddy/pulsekart/pkg/draw"
	"github.com/golangdaddy/pulsekart/pkg/hud"
	"github.com/golangdaddy/pulsekart/pkg/input"
)

// MaxStep bounds the elapsed time fed to a single update so a stalled
// frame cannot blow up the integration
const MaxStep = 1.0 / 30

// Session is one playable variant's simulation state
type Session interface {
	// Update advances the simulation by dt seconds
	Update(dt float64, keys input.Keys)
	// Render draws the current state
	Render(s draw.Surface)
	// Resize reports the current frame size
	Resize(w, h int)
	// Readout returns the HUD values of the last update
	Readout() hud.Readout
	// Reset restarts the session from its initial state
	Reset()
}

// Runner drives a session one tick at a time from a clock and an input source
type Runner struct {
	clock   Clock
	source  input.Source
	session Session
	last    time.Time
	started bool
	frames  int
}

// NewRunner creates a runner; the first Update has a zero step
func NewRunner(clock Clock, source input.Source, session Session) *Runner {
	return &Runner{
		clock:   clock,
		source:  source,
		session: session,
	}
}

// Step converts the time between two ticks into a clamped step in seconds
func Step(last, now time.Time) float64 {
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}

// Update samples the clock and held keys and advances the session.
// It returns the step that was applied.
func (r *Runner) Update() float64 {
	now := r.clock.Now()
	dt := 0.0
	if r.started {
		dt = Step(r.last, now)
	}
	r.last = now
	r.started = true
	r.frames++

	r.session.Update(dt, r.source.Snapshot())
	return dt
}

// Draw renders the session onto s at s's current size
func (r *Runner) Draw(s draw.Surface) {
	r.session.Resize(s.Size())
	r.session.Render(s)
}

// Readout returns the HUD values of the latest update
func (r *Runner) Readout() hud.Readout {
	return r.session.Readout()
}

// Session returns the session being driven
func (r *Runner) Session() Session {
	return r.session
}

// Frames returns how many updates have run
func (r *Runner) Frames() int {
	return r.frames
}

// Restart resets the session and forgets the previous timestamp
func (r *Runner) Restart() {
	r.session.Reset()
	r.started = false
	r.frames = 0
}
