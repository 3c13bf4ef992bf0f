package road

import (
	"image/color"
	"math"

	"github.com/golangdaddy/pulsekart/pkg/draw"
)

// Segment is one slice of the looped road
type Segment struct {
	Index int        // Position in the loop
	Curve float64    // Horizontal deviation rate added while walking past this segment
	Hill  float64    // Elevation offset
	Road  color.RGBA // Tarmac color
	Grass color.RGBA // Verge color
}

// Track is the closed loop of segments
type Track struct {
	Segments      []Segment
	SegmentLength float64
}

var (
	roadDark   = draw.Hex("#141427")
	roadLight  = draw.Hex("#1e1f38")
	grassDark  = draw.Hex("#0e2c25")
	grassLight = draw.Hex("#123a2f")
)

// Generate builds the deterministic curving, hilly loop.
// The same count always yields the same sequence.
func Generate(count int, segmentLength float64) *Track {
	segments := make([]Segment, count)
	for i := range segments {
		fi := float64(i)
		seg := Segment{
			Index: i,
			Curve: math.Sin(fi/28)*0.9 + math.Sin(fi/11)*0.4,
			Hill:  math.Sin(fi/18) * 80,
			Road:  roadDark,
			Grass: grassDark,
		}
		if i%2 == 1 {
			seg.Road = roadLight
			seg.Grass = grassLight
		}
		segments[i] = seg
	}
	return &Track{Segments: segments, SegmentLength: segmentLength}
}

// Length returns the total loop length in world units
func (t *Track) Length() float64 {
	return float64(len(t.Segments)) * t.SegmentLength
}

// At returns the segment under longitudinal position z
func (t *Track) At(z float64) Segment {
	i := int(math.Floor(z/t.SegmentLength)) % len(t.Segments)
	if i < 0 {
		i += len(t.Segments)
	}
	return t.Segments[i]
}

// Wrap folds z into [0, Length)
func (t *Track) Wrap(z float64) float64 {
	length := t.Length()
	z = math.Mod(z, length)
	if z < 0 {
		z += length
	}
	if z >= length {
		z = 0
	}
	return z
}
