package road

import (
	"math/rand"

	"github.com/golangdaddy/pulsekart/pkg/draw"
)

const (
	sparkLife   = 0.6 // Seconds
	sparkFall   = 40  // Pixels per second
	sparkJitter = 8   // Horizontal shimmer in pixels
	sparkChance = 0.3 // Emission probability per sparking tick
)

// Spark is a short-lived drift particle in screen space
type Spark struct {
	X, Y float64
	Life float64 // Seconds remaining, also used as opacity
	Size float64
	Hue  float64
}

func newSpark(x, y float64, rng *rand.Rand) Spark {
	return Spark{
		X:    x,
		Y:    y,
		Life: sparkLife,
		Size: 4 + rng.Float64()*4,
		Hue:  300 + rng.Float64()*40,
	}
}

// ageSparks drops sparks past their lifetime and lets the rest fall
func ageSparks(sparks []Spark, dt float64) []Spark {
	alive := sparks[:0]
	for _, s := range sparks {
		s.Life -= dt
		s.Y += sparkFall * dt
		if s.Life > 0 {
			alive = append(alive, s)
		}
	}
	return alive
}

func drawSparks(s draw.Surface, sparks []Spark, rng *rand.Rand) {
	for _, sp := range sparks {
		c := draw.HSL(sp.Hue, 0.9, 0.7, sp.Life)
		x := sp.X + (rng.Float64()-0.5)*sparkJitter
		s.FillEllipse(x, sp.Y, sp.Size, sp.Size, c)
	}
}
