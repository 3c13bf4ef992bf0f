package ring

import "math"

// Track is a closed elliptical loop centered on the frame.
// Coordinates are relative to that center.
type Track struct {
	A     float64 // Horizontal centerline semi-axis
	B     float64 // Vertical centerline semi-axis
	Width float64
}

// Outer returns the semi-axes of the outer boundary
func (t Track) Outer() (a, b float64) {
	return t.A + t.Width/2, t.B + t.Width/2
}

// Inner returns the semi-axes of the inner boundary
func (t Track) Inner() (a, b float64) {
	return t.A - t.Width/2, t.B - t.Width/2
}

// Contains reports whether (dx, dy) lies on the tarmac: inside or on the
// outer ellipse and outside or on the inner one
func (t Track) Contains(dx, dy float64) bool {
	oa, ob := t.Outer()
	ia, ib := t.Inner()
	outer := dx*dx/(oa*oa) + dy*dy/(ob*ob)
	inner := dx*dx/(ia*ia) + dy*dy/(ib*ib)
	return outer <= 1 && inner >= 1
}

// PointAt maps a centerline angle to a position
func (t Track) PointAt(angle float64) (x, y float64) {
	return math.Cos(angle) * t.A, math.Sin(angle) * t.B
}
