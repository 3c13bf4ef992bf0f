package draw

import (
	"image/color"
	"math"
)

// GlowLayerCount is how many halo copies approximate one blur
const GlowLayerCount = 3

// Centroid returns the vertex average of a shape
func Centroid(pts []Point) Point {
	var c Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{c.X / n, c.Y / n}
}

// Grow pushes every vertex away from the centroid by d pixels
func Grow(pts []Point, d float64) []Point {
	c := Centroid(pts)
	out := make([]Point, len(pts))
	for i, p := range pts {
		dx, dy := p.X-c.X, p.Y-c.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			out[i] = p
			continue
		}
		out[i] = Point{p.X + dx/l*d, p.Y + dy/l*d}
	}
	return out
}

// GlowLayers returns halo outlines for pts, outermost first, spread
// across the blur radius
func GlowLayers(pts []Point, blur float64) [][]Point {
	if blur <= 0 {
		return nil
	}
	layers := make([][]Point, GlowLayerCount)
	for i := range layers {
		layers[i] = Grow(pts, blur*float64(GlowLayerCount-i)/GlowLayerCount)
	}
	return layers
}

// GlowLayerColor is the color of one halo layer; stacked layers add up
// towards the glow's own alpha near the shape
func GlowLayerColor(g Glow) color.RGBA {
	return WithAlpha(g.Color, float64(g.Color.A)/255/GlowLayerCount)
}
