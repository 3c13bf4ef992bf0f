package ring

import (
	"math"

	"github.com/golangdaddy/pulsekart/pkg/background"
	"github.com/golangdaddy/pulsekart/pkg/draw"
)

const (
	StarCount   = 90
	StarSeed    = 7
	DashCount   = 48
	KartScale   = 0.4
	OrbSize     = 8
	GateWidth   = 5
	EdgeWidth   = 3
	centerWidth = 2
)

var (
	backdrop    = draw.Hex("#07060f")
	infield     = draw.Hex("#0b0a1c")
	tarmac      = draw.Hex("#1a1b33")
	edgeColor   = draw.Hex("#8bd6ff")
	centerColor = draw.RGBA(255, 255, 255, 0.25)
	orbColor    = draw.Hex("#7cf7ff")
	gateArmed   = draw.RGBA(255, 211, 107, 0.5)
	gateLit     = draw.Hex("#ffffff")
	kartColor   = draw.Hex("#61d3ff")
	kartPulse   = draw.Hex("#ff7cf7")
	kartOutline = []draw.Point{{X: 0, Y: -50}, {X: 40, Y: 40}, {X: 0, Y: 20}, {X: -40, Y: 40}}
	stars       = background.Starfield(StarCount, StarSeed)
)

// center returns the frame center; all ring geometry hangs off it
func center(s draw.Surface) (float64, float64) {
	w, h := s.Size()
	return float64(w) / 2, float64(h) / 2
}

func (ss *Session) drawTrack(s draw.Surface) {
	w, h := s.Size()
	s.FillRect(0, 0, float64(w), float64(h), backdrop)
	background.DrawStarfield(s, stars, ss.level)

	cx, cy := center(s)
	oa, ob := ss.track.Outer()
	ia, ib := ss.track.Inner()

	s.FillEllipse(cx, cy, oa, ob, tarmac)
	s.FillEllipse(cx, cy, ia, ib, infield)

	s.SetGlow(draw.Glow{Color: draw.WithAlpha(edgeColor, 0.3+ss.level*0.5), Blur: 6 + ss.level*10})
	s.StrokeEllipse(cx, cy, oa, ob, EdgeWidth, edgeColor)
	s.StrokeEllipse(cx, cy, ia, ib, EdgeWidth, edgeColor)
	s.SetGlow(draw.Glow{})

	// Every other slice of the centerline is painted
	step := 2 * math.Pi / DashCount
	for i := 0; i < DashCount; i += 2 {
		x0, y0 := ss.track.PointAt(step * float64(i))
		x1, y1 := ss.track.PointAt(step * float64(i+1))
		s.StrokePolyline([]draw.Point{{X: cx + x0, Y: cy + y0}, {X: cx + x1, Y: cy + y1}}, centerWidth, centerColor, false)
	}
}

func (ss *Session) drawItems(s draw.Surface) {
	cx, cy := center(s)
	oa, ob := ss.track.Outer()
	ia, ib := ss.track.Inner()

	for _, g := range ss.field.Gates {
		cos, sin := math.Cos(g.Angle), math.Sin(g.Angle)
		bar := []draw.Point{
			{X: cx + cos*ia, Y: cy + sin*ib},
			{X: cx + cos*oa, Y: cy + sin*ob},
		}
		if g.State == GateTriggered {
			s.SetGlow(draw.Glow{Color: draw.WithAlpha(gateLit, 0.8), Blur: 18})
			s.StrokePolyline(bar, GateWidth, gateLit, false)
			s.SetGlow(draw.Glow{})
			continue
		}
		s.StrokePolyline(bar, GateWidth, gateArmed, false)
	}

	r := OrbSize + ss.level*3
	s.SetGlow(draw.Glow{Color: draw.WithAlpha(orbColor, 0.7), Blur: 10 + ss.level*8})
	for _, o := range ss.field.Orbs {
		if o.State == OrbCollected {
			continue
		}
		s.FillEllipse(cx+o.X, cy+o.Y, r, r, orbColor)
	}
	s.SetGlow(draw.Glow{})
}

// drawKart points the arrow along the heading. The outline faces up, so
// it is turned a quarter further than the heading angle.
func (ss *Session) drawKart(s draw.Surface) {
	cx, cy := center(s)
	k := ss.kart
	xf := draw.Rotate(k.Angle+math.Pi/2, cx+k.X, cy+k.Y)

	outline := make([]draw.Point, len(kartOutline))
	for i, p := range kartOutline {
		outline[i] = draw.Point{X: p.X * KartScale, Y: p.Y * KartScale}
	}

	body := kartColor
	glow := draw.Glow{Color: draw.WithAlpha(kartColor, 0.5), Blur: 8}
	if ss.pulse.Active() {
		body = kartPulse
		glow = draw.Glow{Color: draw.RGBA(255, 140, 255, 0.9), Blur: 24 + ss.level*10}
	}
	s.SetGlow(glow)
	s.FillPolygon(xf.Apply(outline), body)
	s.SetGlow(draw.Glow{})
}
