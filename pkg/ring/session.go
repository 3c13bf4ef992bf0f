// Package ring is the top-down variant: a kart lapping an elliptical
// track, collecting orbs and flashing gates with beat-timed pulse boosts.
package ring

import (
	"fmt"
	"math"

	"github.com/golangdaddy/pulsekart/pkg/beat"
	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/draw"
	"github.com/golangdaddy/pulsekart/pkg/hud"
	"github.com/golangdaddy/pulsekart/pkg/input"
	"github.com/google/uuid"
)

// Session owns all state of one ring run
type Session struct {
	ID     uuid.UUID
	tuning config.RingTuning

	track Track
	kart  Kart
	pulse *Pulse
	field *Field
	beat  *beat.Oscillator
	level float64
	score int

	pulseHeld bool // Trigger key state on the previous tick
	onTrack   bool
	width     int
	height    int
}

// NewSession creates a ring session at its reset state
func NewSession(t config.RingTuning) *Session {
	ss := &Session{
		ID:     uuid.New(),
		tuning: t,
		width:  1024,
		height: 600,
	}
	ss.Reset()
	return ss
}

// Reset rebuilds the track and items and returns the kart to the start line
func (ss *Session) Reset() {
	t := ss.tuning
	ss.track = Track{A: t.SemiA, B: t.SemiB, Width: t.Width}
	ss.kart = StartKart(ss.track)
	ss.pulse = NewPulse(t.PulseDuration, t.PulseCooldown, t.PulseThreshold)
	ss.field = NewField(ss.track, t.OrbCount, t.GateCount)
	ss.beat = beat.New(t.BeatRate, 0)
	ss.level = ss.beat.Intensity()
	ss.score = 0
	ss.pulseHeld = false
	ss.onTrack = true
}

// Resize records the frame size. Geometry is center-relative so only
// drawing depends on it.
func (ss *Session) Resize(w, h int) {
	ss.width, ss.height = w, h
}

// Update advances the run by one tick
func (ss *Session) Update(dt float64, keys input.Keys) {
	t := ss.tuning
	ss.level = ss.beat.Advance(dt, 0)

	c := input.ReadRing(keys)
	ss.pulse.Tick(dt)
	if c.Pulse && !ss.pulseHeld {
		ss.pulse.Trigger(ss.level)
	}
	ss.pulseHeld = c.Pulse

	ss.onTrack = ss.kart.Drive(c, dt, t, ss.pulse.Active(), ss.track)

	contact := ss.field.Interact(ss.kart.X, ss.kart.Y, ss.pulse.Active(), t)
	ss.score += contact.Collected
	ss.kart.Speed += contact.Boost

	ss.kart.Speed = clamp(ss.kart.Speed, t.MinSpeed, t.MaxSpeed)
}

// Render draws the whole frame back to front
func (ss *Session) Render(s draw.Surface) {
	ss.drawTrack(s)
	ss.drawItems(s)
	ss.drawKart(s)
}

// Readout returns the HUD values
func (ss *Session) Readout() hud.Readout {
	var status string
	switch ss.pulse.State() {
	case PulseActive:
		status = fmt.Sprintf("Pulse %.1fs", ss.pulse.Timer())
	case PulseCooldown:
		status = fmt.Sprintf("Cooldown %.1fs", ss.pulse.CooldownLeft())
	default:
		status = "Ready"
	}
	_, glow := hud.BeatBar(ss.level)
	return hud.Readout{
		Speed:  int(math.Round(math.Abs(ss.kart.Speed))),
		Count:  fmt.Sprintf("%d/%d", ss.score, len(ss.field.Orbs)),
		Status: status,
		Beat:   ss.level,
		Glow:   glow,
	}
}

// Kart returns a copy of the kart state
func (ss *Session) Kart() Kart {
	return ss.kart
}

// Score returns the number of orbs collected
func (ss *Session) Score() int {
	return ss.score
}

func (ss *Session) Track() Track {
	return ss.track
}

func (ss *Session) Pulse() *Pulse {
	return ss.pulse
}

func (ss *Session) Field() *Field {
	return ss.field
}

// OnTrack reports whether the kart ended the last tick on the tarmac
func (ss *Session) OnTrack() bool {
	return ss.onTrack
}

// Beat returns the beat intensity of the last update
func (ss *Session) Beat() float64 {
	return ss.level
}

// String summarises the run for logs
func (ss *Session) String() string {
	return fmt.Sprintf("ring session %s: pos=(%.0f,%.0f) speed=%.0f orbs=%d/%d pulse=%s",
		ss.ID, ss.kart.X, ss.kart.Y, ss.kart.Speed, ss.score, len(ss.field.Orbs), ss.pulse.State())
}
