package road

import (
	"math"

	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/input"
)

// Handling constants that are not part of the tuning file
const (
	DriftSteerMultiplier = 1.4  // Steering boost while drifting
	DriftDecay           = 0.92 // Drift carried into the next tick
	DriftSlide           = 0.4  // Share of drift applied to lateral position
	OffRoadX             = 2.1  // Lateral offset beyond which the verge slows the kart
	MaxX                 = 2.6  // Hard lateral bound
	HeatRise             = 1.4  // Drift heat gained per second
	HeatFall             = 0.8  // Drift heat lost per second
	HeatSpeedFraction    = 0.35 // Fraction of max speed needed to build heat
	HeatMinDrift         = 0.02 // Drift needed to build heat
	ScorePerUnit         = 0.02 // Score per world unit travelled
)

// Kart is the player's vehicle on the road
type Kart struct {
	Position  float64 // Distance along the loop
	Speed     float64
	X         float64 // Lateral offset, ±1 at the road edges
	Drift     float64
	DriftHeat float64 // Drift intensity in [0,1]
}

// Drive integrates one tick of motion and returns the score earned and
// whether the kart is throwing sparks this tick
func (k *Kart) Drive(c input.RoadControls, dt float64, t config.RoadTuning, track *Track) (score int, sparking bool) {
	switch {
	case c.Throttle:
		k.Speed += t.Accel * dt
	case c.Brake:
		k.Speed -= t.Brake * dt
	default:
		k.Speed -= t.Decel * dt
	}
	k.Speed = clamp(k.Speed, 0, t.MaxSpeed)

	speedPercent := k.Speed / t.MaxSpeed
	driftStrength := 1.0
	grip := 1.0
	if c.Drift {
		driftStrength = DriftSteerMultiplier
		grip = t.DriftGrip
	}
	steer := c.Steer * (t.SteerBase + speedPercent*t.SteerGain) * dt * driftStrength

	k.Drift += steer * (1 - grip)
	k.Drift *= DriftDecay
	k.X += steer*grip + k.Drift*DriftSlide

	if math.Abs(k.X) > OffRoadX {
		k.Speed -= t.OffRoadDecel * dt
		k.Speed = clamp(k.Speed, 0, t.MaxSpeed)
	}
	k.X = clamp(k.X, -MaxX, MaxX)

	k.Position = track.Wrap(k.Position + k.Speed*dt)

	if c.Drift && k.Speed > t.MaxSpeed*HeatSpeedFraction && math.Abs(k.Drift) > HeatMinDrift {
		k.DriftHeat = math.Min(1, k.DriftHeat+dt*HeatRise)
		sparking = true
	} else {
		k.DriftHeat = math.Max(0, k.DriftHeat-dt*HeatFall)
	}

	// Fractions below one point are dropped every tick, not carried
	score = int(math.Floor(k.Speed * dt * ScorePerUnit))
	return score, sparking
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
