package road

import (
	"github.com/golangdaddy/pulsekart/pkg/draw"
)

// Kart screen placement and road decoration constants
const (
	LipHeight      = 40   // Elevation of a segment's second edge above its first
	RumbleScale    = 1.12 // Rumble strip outer edge relative to road half-width
	LaneScale      = 0.08 // Lane line width relative to road half-width
	KartLaneScale  = 120  // Pixels of kart displacement per unit of lateral offset
	KartAnchorY    = 0.78 // Kart baseline as a fraction of frame height
	SparkAnchorY   = 0.8  // Spark spawn line as a fraction of frame height
	SpeedLineCount = 40
)

var (
	skyTop      = draw.Hex("#4c1c7a")
	skyBottom   = draw.Hex("#0a0b18")
	rumble      = draw.Hex("#8bd6ff")
	laneColor   = draw.RGBA(255, 255, 255, 0.2)
	moonColor   = draw.RGBA(255, 255, 255, 0.12)
	kartCool    = draw.Hex("#61d3ff")
	kartHot     = draw.Hex("#ff7cf7")
	cockpit     = draw.RGBA(0, 0, 0, 0.4)
	kartOutline = []draw.Point{{X: 0, Y: -50}, {X: 40, Y: 40}, {X: 0, Y: 20}, {X: -40, Y: 40}}
)

// drawBackground paints the sky gradient and the beat-pulsing moon
func drawBackground(s draw.Surface, beat float64) {
	w, h := s.Size()
	fw, fh := float64(w), float64(h)
	s.FillGradient(0, 0, fw, fh, draw.Gradient{Top: skyTop, Bottom: skyBottom})

	r := 80 + beat*20
	s.FillEllipse(fw*0.78, fh*0.22, r, r, moonColor)
}

// drawRoad walks outward from the segment under the camera. A running
// horizon holds the lowest screen Y painted so far; any segment projecting
// at or below it is hidden behind nearer road and skipped, not terminal.
func (ss *Session) drawRoad(s draw.Surface) {
	w, h := s.Size()
	t := ss.tuning
	proj := Projector{Depth: t.CameraDepth, RoadWidth: t.RoadWidth}
	segments := ss.track.Segments
	base := ss.track.At(ss.kart.Position).Index

	x, dx := 0.0, 0.0
	horizon := float64(h)

	for n := 0; n < t.DrawDistance; n++ {
		seg := segments[(base+n)%len(segments)]
		z := float64(n+1) * t.SegmentLength

		segmentX := x
		x += dx
		dx += seg.Curve

		worldX := segmentX - ss.kart.X*t.RoadWidth
		worldY := seg.Hill - t.CameraHeight
		edge := proj.Project(worldX, worldY, z, w, h)
		if edge.Y >= horizon {
			continue
		}
		lip := proj.Project(worldX, worldY+LipHeight, z, w, h)

		rumbleW := edge.W * RumbleScale
		laneW := edge.W * LaneScale

		s.FillRect(0, edge.Y, float64(w), horizon-edge.Y, seg.Grass)

		s.FillPolygon([]draw.Point{
			{X: edge.X - edge.W, Y: edge.Y},
			{X: edge.X + edge.W, Y: edge.Y},
			{X: lip.X + lip.W, Y: lip.Y},
			{X: lip.X - lip.W, Y: lip.Y},
		}, seg.Road)

		s.FillPolygon([]draw.Point{
			{X: edge.X - rumbleW, Y: edge.Y},
			{X: edge.X - edge.W, Y: edge.Y},
			{X: lip.X - lip.W, Y: lip.Y},
			{X: lip.X - rumbleW, Y: lip.Y},
		}, rumble)
		s.FillPolygon([]draw.Point{
			{X: edge.X + rumbleW, Y: edge.Y},
			{X: edge.X + edge.W, Y: edge.Y},
			{X: lip.X + lip.W, Y: lip.Y},
			{X: lip.X + rumbleW, Y: lip.Y},
		}, rumble)

		s.StrokePolyline([]draw.Point{{X: edge.X, Y: edge.Y}, {X: lip.X, Y: lip.Y}}, laneW, laneColor, false)

		horizon = edge.Y
	}
}

// kartAnchor returns the kart's screen position for the current lateral offset
func kartAnchor(w, h int, x float64) (float64, float64) {
	return float64(w)/2 + x*KartLaneScale, float64(h) * KartAnchorY
}

func (ss *Session) drawKart(s draw.Surface) {
	w, h := s.Size()
	ax, ay := kartAnchor(w, h, ss.kart.X)
	heat := ss.kart.DriftHeat
	tilt := ss.kart.Drift * 12
	xf := draw.Rotate(tilt*0.01, ax, ay)

	s.SetGlow(draw.Glow{
		Color: draw.RGBA(255, 140, 255, 0.6+heat*0.6),
		Blur:  20 + heat*15,
	})
	body := kartCool
	if heat > 0.2 {
		body = kartHot
	}
	s.FillPolygon(xf.Apply(kartOutline), body)
	s.FillPolygon(xf.Apply(draw.Rect(-12, -6, 24, 28)), cockpit)
	s.SetGlow(draw.Glow{})
}
