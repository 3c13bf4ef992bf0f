// Package beat drives the visual rhythm shared by the HUD and gameplay.
package beat

import "math"

// Oscillator is a phase accumulator. The phase only ever grows;
// wrapping is left to the sine.
type Oscillator struct {
	Rate      float64 // Radians per second
	SpeedGain float64 // Radians added per tick at full vehicle speed
	phase     float64
}

// New creates an oscillator at phase zero
func New(rate, speedGain float64) *Oscillator {
	return &Oscillator{Rate: rate, SpeedGain: speedGain}
}

// Advance moves the phase forward and returns the new intensity.
// speedRatio is the vehicle speed as a fraction of its maximum; its
// contribution is per tick, not per second.
func (o *Oscillator) Advance(dt, speedRatio float64) float64 {
	o.phase += dt*o.Rate + speedRatio*o.SpeedGain
	return o.Intensity()
}

// Intensity returns the current value in [0,1]
func (o *Oscillator) Intensity() float64 {
	return (math.Sin(o.phase) + 1) / 2
}

// Phase returns the accumulated phase in radians
func (o *Oscillator) Phase() float64 {
	return o.phase
}
