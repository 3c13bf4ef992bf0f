package draw

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses a "#rrggbb" color. It panics on malformed input,
// so it is only meant for palette literals.
func Hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("draw: bad palette color " + s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// RGBA builds a straight (non-premultiplied) color from an alpha in [0,1]
func RGBA(r, g, b uint8, alpha float64) color.RGBA {
	return color.RGBA{r, g, b, alpha8(alpha)}
}

// HSL builds a color from hue in degrees and saturation/lightness in [0,1]
func HSL(hue, sat, light, alpha float64) color.RGBA {
	c := colorful.Hsl(math.Mod(hue, 360), sat, light).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, alpha8(alpha)}
}

// WithAlpha replaces the alpha channel of c
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	c.A = alpha8(alpha)
	return c
}

// Blend mixes c over dst using c's alpha and returns an opaque color
func Blend(dst, c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.RGBA{mix(dst.R, c.R), mix(dst.G, c.G), mix(dst.B, c.B), 255}
}

// Lerp interpolates between two colors, t in [0,1]
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func alpha8(alpha float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
}
