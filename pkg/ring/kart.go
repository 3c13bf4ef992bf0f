package ring

import (
	"math"

	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/input"
)

// Kart is the top-down vehicle. Position is relative to the track center.
type Kart struct {
	X, Y  float64
	Angle float64 // Heading in radians, screen-space (y down)
	Speed float64
}

// StartKart places the kart on the rightmost point of the centerline heading up the screen
func StartKart(t Track) Kart {
	x, y := t.PointAt(0)
	return Kart{X: x, Y: y, Angle: -math.Pi / 2}
}

// Drive integrates one tick of motion. It reports whether the kart ended
// the tick on the track.
func (k *Kart) Drive(c input.RingControls, dt float64, t config.RingTuning, pulseActive bool, track Track) bool {
	k.Speed += c.Throttle * t.Accel * dt
	k.Speed *= damping(t, dt)
	k.Speed = clamp(k.Speed, t.MinSpeed, t.MaxSpeed)

	turnStrength := 2.4 + math.Abs(k.Speed)/120
	k.Angle += c.Steer * turnStrength * dt * (k.Speed/200 + 0.8)

	if pulseActive {
		k.Speed += t.PulseBoost * dt
	}

	k.X += math.Cos(k.Angle) * k.Speed * dt
	k.Y += math.Sin(k.Angle) * k.Speed * dt

	if !track.Contains(k.X, k.Y) {
		k.Speed *= t.OffTrackDrag
		return false
	}
	return true
}

// damping is applied once per tick unless a reference rate asks for it
// to be scaled by the step
func damping(t config.RingTuning, dt float64) float64 {
	if t.DampingRefRate > 0 {
		return math.Pow(t.Damping, dt*t.DampingRefRate)
	}
	return t.Damping
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
