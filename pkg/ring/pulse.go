package ring

import "math"

// PulseState is the phase of the rhythm boost
type PulseState int

const (
	PulseIdle PulseState = iota
	PulseActive
	PulseCooldown
)

func (s PulseState) String() string {
	switch s {
	case PulseActive:
		return "active"
	case PulseCooldown:
		return "cooldown"
	default:
		return "idle"
	}
}

// Pulse is the beat-gated boost. A trigger only lands when the beat is
// near its peak, and never while a pulse is running or cooling down.
type Pulse struct {
	Duration  float64 // Seconds a pulse stays active
	Cooldown  float64 // Seconds from trigger until the next trigger is allowed
	Threshold float64 // Beat intensity a trigger must exceed

	active   bool
	timer    float64
	cooldown float64
}

// NewPulse creates an idle pulse
func NewPulse(duration, cooldown, threshold float64) *Pulse {
	return &Pulse{Duration: duration, Cooldown: cooldown, Threshold: threshold}
}

// Trigger attempts to start a pulse at the given beat intensity.
// On failure the state is left unchanged.
func (p *Pulse) Trigger(beat float64) bool {
	if p.cooldown != 0 || p.active || beat <= p.Threshold {
		return false
	}
	p.active = true
	p.timer = p.Duration
	p.cooldown = p.Cooldown
	return true
}

// Tick counts down the active timer and the cooldown independently
func (p *Pulse) Tick(dt float64) {
	if p.cooldown > 0 {
		p.cooldown = math.Max(0, p.cooldown-dt)
	}
	if p.active {
		p.timer -= dt
		if p.timer <= 0 {
			p.active = false
			p.timer = 0
		}
	}
}

// State reports the current phase
func (p *Pulse) State() PulseState {
	switch {
	case p.active:
		return PulseActive
	case p.cooldown > 0:
		return PulseCooldown
	default:
		return PulseIdle
	}
}

// Active reports whether the boost is running
func (p *Pulse) Active() bool { return p.active }

// Timer returns the seconds of boost left
func (p *Pulse) Timer() float64 { return p.timer }

// CooldownLeft returns the seconds until a trigger may land again
func (p *Pulse) CooldownLeft() float64 { return p.cooldown }
