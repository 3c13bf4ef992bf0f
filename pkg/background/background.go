package background

import (
	"image/color"
	"math/rand"

	"github.com/golangdaddy/pulsekart/pkg/draw"
)

// Generator creates procedural backdrop details for a frame size
type Generator struct {
	Width  int
	Height int
	rng    *rand.Rand
}

// Streak is a vertical motion line
type Streak struct {
	X, Y   float64
	Length float64
}

// Star is a fixed backdrop point
type Star struct {
	X, Y    float64 // Fraction of the frame size in [0,1)
	Size    float64
	Twinkle float64 // Phase offset against the beat
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(width, height int, rng *rand.Rand) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
		rng:    rng,
	}
}

// Resize updates the frame size used for new details
func (g *Generator) Resize(width, height int) {
	g.Width = width
	g.Height = height
}

// SpeedLines scatters count streaks over the top 60% of the frame.
// Their length stretches with the beat.
func (g *Generator) SpeedLines(count int, beat float64) []Streak {
	lines := make([]Streak, count)
	for i := range lines {
		lines[i] = Streak{
			X:      g.rng.Float64() * float64(g.Width),
			Y:      g.rng.Float64() * float64(g.Height) * 0.6,
			Length: 40 + beat*80,
		}
	}
	return lines
}

// DrawSpeedLines strokes streaks in a beat-tinted cyan
func DrawSpeedLines(s draw.Surface, lines []Streak, beat float64) {
	c := draw.RGBA(120, 226, 255, 0.12+beat*0.2)
	for _, l := range lines {
		s.StrokePolyline([]draw.Point{{X: l.X, Y: l.Y}, {X: l.X, Y: l.Y + l.Length}}, 1, c, false)
	}
}

// Starfield places count stars from a fixed seed so the sky is identical every session
func Starfield(count int, seed int64) []Star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:       rng.Float64(),
			Y:       rng.Float64(),
			Size:    0.6 + rng.Float64()*1.4,
			Twinkle: rng.Float64(),
		}
	}
	return stars
}

// DrawStarfield plots stars scaled to the surface, brightening on the beat
func DrawStarfield(s draw.Surface, stars []Star, beat float64) {
	w, h := s.Size()
	for _, st := range stars {
		// Each star peaks at a different point of the beat
		level := 0.25 + 0.5*beat*st.Twinkle
		c := color.RGBA{200, 220, 255, 255}
		s.FillEllipse(st.X*float64(w), st.Y*float64(h), st.Size, st.Size, draw.WithAlpha(c, level))
	}
}
