package ring

import (
	"math"

	"github.com/golangdaddy/pulsekart/pkg/config"
)

// OrbState only ever moves from OrbUncollected to OrbCollected
type OrbState int

const (
	OrbUncollected OrbState = iota
	OrbCollected
)

// GateState toggles between armed and triggered with hysteresis
type GateState int

const (
	GateArmed GateState = iota
	GateTriggered
)

// Orb is a collectible on the centerline
type Orb struct {
	Angle float64
	X, Y  float64
	State OrbState
}

// Gate is a boost gate on the centerline
type Gate struct {
	Angle float64
	X, Y  float64
	State GateState
}

// Field holds the orbs and gates of a session
type Field struct {
	Orbs  []Orb
	Gates []Gate
}

// Contact is what one tick of item interaction produced
type Contact struct {
	Collected int     // Orbs picked up
	Flashed   int     // Gates triggered
	Boost     float64 // Speed to add
}

// NewField spaces orbs and gates evenly around the track. Orbs sit half a
// spacing off the start line so none is taken on the first tick.
func NewField(t Track, orbs, gates int) *Field {
	f := &Field{
		Orbs:  make([]Orb, orbs),
		Gates: make([]Gate, gates),
	}
	for i := range f.Orbs {
		step := 2 * math.Pi / float64(orbs)
		angle := step*float64(i) + step/2
		x, y := t.PointAt(angle)
		f.Orbs[i] = Orb{Angle: angle, X: x, Y: y}
	}
	for i := range f.Gates {
		angle := 2 * math.Pi * float64(i) / float64(gates)
		x, y := t.PointAt(angle)
		f.Gates[i] = Gate{Angle: angle, X: x, Y: y}
	}
	return f
}

// Interact checks the kart at (x, y) against every item
func (f *Field) Interact(x, y float64, pulseActive bool, t config.RingTuning) Contact {
	var c Contact
	for i := range f.Orbs {
		o := &f.Orbs[i]
		if o.State == OrbCollected {
			continue
		}
		if math.Hypot(x-o.X, y-o.Y) < t.OrbRadius {
			o.State = OrbCollected
			c.Collected++
			c.Boost += t.OrbBoost
		}
	}
	for i := range f.Gates {
		g := &f.Gates[i]
		d := math.Hypot(x-g.X, y-g.Y)
		if d < t.GateRadius && pulseActive && g.State == GateArmed {
			g.State = GateTriggered
			c.Flashed++
			c.Boost += t.GateBoost
		}
		if d > t.GateRearm {
			g.State = GateArmed
		}
	}
	return c
}

// Remaining returns how many orbs are still uncollected
func (f *Field) Remaining() int {
	n := 0
	for _, o := range f.Orbs {
		if o.State == OrbUncollected {
			n++
		}
	}
	return n
}
