package draw

import (
	"image/color"
	"math"
)

// Point is a screen-space coordinate
type Point struct {
	X, Y float64
}

// Gradient is a vertical linear gradient between two colors
type Gradient struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// Glow is a soft halo drawn behind filled shapes.
// The zero value disables it.
type Glow struct {
	Color color.RGBA
	Blur  float64
}

// Surface is the drawing capability a frame is rendered onto.
// All coordinates are in screen pixels with the origin at the top-left.
type Surface interface {
	// Size returns the current frame size
	Size() (w, h int)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillGradient(x, y, w, h float64, g Gradient)
	FillPolygon(pts []Point, c color.RGBA)
	StrokePolyline(pts []Point, width float64, c color.RGBA, closed bool)
	FillEllipse(cx, cy, rx, ry float64, c color.RGBA)
	StrokeEllipse(cx, cy, rx, ry, width float64, c color.RGBA)
	// SetGlow applies g to every fill until it is changed again
	SetGlow(g Glow)
}

// Affine is a rotation followed by a translation
type Affine struct {
	cos, sin float64
	dx, dy   float64
}

// Rotate returns a transform rotating by angle radians around (x, y)'s origin and moving it to (x, y)
func Rotate(angle, x, y float64) Affine {
	return Affine{cos: math.Cos(angle), sin: math.Sin(angle), dx: x, dy: y}
}

// Apply transforms every point of a local-space shape
func (a Affine) Apply(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{
			X: p.X*a.cos - p.Y*a.sin + a.dx,
			Y: p.X*a.sin + p.Y*a.cos + a.dy,
		}
	}
	return out
}

// Rect returns the four corners of an axis-aligned rectangle
func Rect(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// EllipsePoints approximates an ellipse outline with n vertices
func EllipsePoints(cx, cy, rx, ry float64, n int) []Point {
	if n < 3 {
		n = 3
	}
	pts := make([]Point, n)
	for i := range pts {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = Point{cx + math.Cos(a)*rx, cy + math.Sin(a)*ry}
	}
	return pts
}

// EllipseSegments picks an outline resolution proportional to the ellipse size
func EllipseSegments(rx, ry float64) int {
	n := int(math.Max(rx, ry) / 2)
	if n < 16 {
		return 16
	}
	if n > 128 {
		return 128
	}
	return n
}
