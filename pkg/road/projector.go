package road

import "fmt"

// Projection is a world point mapped onto the frame
type Projection struct {
	X float64 // Screen X of the road center
	Y float64 // Screen Y
	W float64 // Road half-width in pixels
}

// Projector performs the perspective divide for the road renderer
type Projector struct {
	Depth     float64 // Camera depth constant
	RoadWidth float64 // Road half-width in world units
}

// Project maps (x, y, z) relative to the camera onto a w×h frame.
// z must be positive; the renderer only ever asks for z = (n+1)·segmentLength.
func (p Projector) Project(x, y, z float64, w, h int) Projection {
	if z <= 0 {
		panic(fmt.Sprintf("road: projecting non-positive depth %v", z))
	}
	scale := p.Depth / z
	fw, fh := float64(w), float64(h)
	return Projection{
		X: (1 + x*scale) * fw / 2,
		Y: (1 - y*scale) * fh / 2,
		W: scale * p.RoadWidth * fw / 2,
	}
}
