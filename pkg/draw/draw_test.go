package draw

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, color.RGBA{0x4c, 0x1c, 0x7a, 255}, Hex("#4c1c7a"))
	assert.Panics(t, func() { Hex("purple") })
}

func TestHSL(t *testing.T) {
	red := HSL(360, 1, 0.5, 1)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, red)

	spark := HSL(320, 0.9, 0.7, 0.5)
	assert.Greater(t, spark.R, spark.G)
	assert.Equal(t, uint8(128), spark.A)
}

func TestBlendAndLerp(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	assert.Equal(t, white, Blend(black, white))
	assert.Equal(t, black, Blend(black, WithAlpha(white, 0)))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, Blend(black, WithAlpha(white, 0.5)))

	assert.Equal(t, black, Lerp(black, white, -1))
	assert.Equal(t, white, Lerp(black, white, 2))
}

func TestAffine(t *testing.T) {
	pts := Rotate(math.Pi/2, 10, 20).Apply([]Point{{1, 0}, {0, 1}})
	require.Len(t, pts, 2)
	assert.InDelta(t, 10, pts[0].X, 1e-9)
	assert.InDelta(t, 21, pts[0].Y, 1e-9)
	assert.InDelta(t, 9, pts[1].X, 1e-9)
	assert.InDelta(t, 20, pts[1].Y, 1e-9)
}

func TestEllipsePoints(t *testing.T) {
	pts := EllipsePoints(100, 50, 40, 20, 8)
	require.Len(t, pts, 8)
	for _, p := range pts {
		dx, dy := (p.X-100)/40, (p.Y-50)/20
		assert.InDelta(t, 1, dx*dx+dy*dy, 1e-9)
	}
	assert.Len(t, EllipsePoints(0, 0, 1, 1, 1), 3)
	assert.Equal(t, 16, EllipseSegments(4, 4))
	assert.Equal(t, 128, EllipseSegments(4000, 10))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(320, 200)
	w, h := r.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, h)

	glow := Glow{Color: Hex("#ff7cf7"), Blur: 20}
	r.FillRect(0, 0, 10, 10, Hex("#000000"))
	r.SetGlow(glow)
	r.FillPolygon(Rect(0, 0, 5, 5), Hex("#ffffff"))
	r.SetGlow(Glow{})
	r.StrokePolyline([]Point{{0, 0}, {1, 1}}, 2, Hex("#ffffff"), false)

	assert.Equal(t, 1, r.Count(OpPolygon))
	assert.Equal(t, glow, r.Ops[1].Glow)
	assert.Equal(t, Glow{}, r.Ops[2].Glow)
	assert.Len(t, r.Filter(OpPolyline, Hex("#ffffff")), 1)

	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestGlowLayers(t *testing.T) {
	square := Rect(-1, -1, 2, 2)
	assert.Equal(t, Point{0, 0}, Centroid(square))
	assert.Equal(t, Point{}, Centroid(nil))
	assert.Nil(t, GlowLayers(square, 0))

	layers := GlowLayers(square, 9)
	require.Len(t, layers, GlowLayerCount)
	outer := layers[0][0]
	inner := layers[GlowLayerCount-1][0]
	assert.InDelta(t, math.Sqrt2+9, math.Hypot(outer.X, outer.Y), 1e-9)
	assert.InDelta(t, math.Sqrt2+3, math.Hypot(inner.X, inner.Y), 1e-9)

	c := GlowLayerColor(Glow{Color: RGBA(255, 0, 0, 0.6), Blur: 9})
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(51), c.A)
}
