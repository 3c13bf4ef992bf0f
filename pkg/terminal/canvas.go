package terminal

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/pulsekart/pkg/draw"
	"golang.org/x/image/vector"
)

// Virtual frame the sessions draw into; the raster is scaled from it
const (
	FrameWidth  = 1024
	FrameHeight = 600
)

// halfBlock shows the top pixel of a cell as foreground and the bottom one as background
const halfBlock = '▀'

// Canvas rasterizes draw.Surface calls into a small RGBA image with two
// pixels per terminal cell, then flushes it as half-block glyphs.
type Canvas struct {
	img    *image.RGBA
	sx, sy float64 // Raster pixels per frame pixel
	glow   draw.Glow
	z      *vector.Rasterizer
}

// NewCanvas creates a canvas covering cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{z: vector.NewRasterizer(1, 1)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid; the virtual frame size is unchanged
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if c.img != nil && c.img.Bounds().Dx() == cols && c.img.Bounds().Dy() == rows*2 {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	c.sx = float64(cols) / FrameWidth
	c.sy = float64(rows*2) / FrameHeight
}

// Image exposes the raster
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Flush writes the raster to screen starting at the top-left cell
func (c *Canvas) Flush(screen tcell.Screen) {
	b := c.img.Bounds()
	for y := 0; y < b.Dy()/2; y++ {
		for x := 0; x < b.Dx(); x++ {
			top := c.img.RGBAAt(x, y*2)
			bottom := c.img.RGBAAt(x, y*2+1)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(x, y, halfBlock, nil, st)
		}
	}
}

func (c *Canvas) Size() (int, int) {
	return FrameWidth, FrameHeight
}

func (c *Canvas) SetGlow(g draw.Glow) {
	c.glow = g
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	c.FillPolygon(draw.Rect(x, y, w, h), clr)
}

// FillGradient interpolates per raster row
func (c *Canvas) FillGradient(x, y, w, h float64, g draw.Gradient) {
	r := c.bounds(draw.Rect(x, y, w, h))
	if r.Empty() || h <= 0 {
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		t := (float64(py)+0.5)/c.sy - y
		row := draw.Lerp(g.Top, g.Bottom, t/h)
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.SetRGBA(px, py, draw.Blend(c.img.RGBAAt(px, py), row))
		}
	}
}

func (c *Canvas) FillPolygon(pts []draw.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	if c.glow.Blur > 0 {
		halo := draw.GlowLayerColor(c.glow)
		for _, layer := range draw.GlowLayers(pts, c.glow.Blur) {
			c.fill(layer, halo)
		}
	}
	c.fill(pts, clr)
}

// StrokePolyline fills one quad per segment
func (c *Canvas) StrokePolyline(pts []draw.Point, width float64, clr color.RGBA, closed bool) {
	if len(pts) < 2 {
		return
	}
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	// Keep hairlines at least one raster pixel wide
	width = math.Max(width, 1/math.Min(c.sx, c.sy))
	for i := 0; i+1 < len(pts); i++ {
		c.fill(segmentQuad(pts[i], pts[i+1], width), clr)
	}
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, clr color.RGBA) {
	c.FillPolygon(draw.EllipsePoints(cx, cy, rx, ry, draw.EllipseSegments(rx, ry)), clr)
}

func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, width float64, clr color.RGBA) {
	c.StrokePolyline(draw.EllipsePoints(cx, cy, rx, ry, draw.EllipseSegments(rx, ry)), width, clr, true)
}

// fill rasterizes a closed outline clipped to its bounding box and
// composites it over the raster
func (c *Canvas) fill(pts []draw.Point, clr color.RGBA) {
	r := c.bounds(pts)
	if r.Empty() || clr.A == 0 {
		return
	}
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = stddraw.Over
	c.z.MoveTo(float32(pts[0].X*c.sx-ox), float32(pts[0].Y*c.sy-oy))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X*c.sx-ox), float32(p.Y*c.sy-oy))
	}
	c.z.ClosePath()
	src := image.NewUniform(color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: clr.A})
	c.z.Draw(c.img, r, src, image.Point{})
}

// bounds returns the raster rectangle covering pts, clipped to the image
func (c *Canvas) bounds(pts []draw.Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X*c.sx), math.Max(maxX, p.X*c.sx)
		minY, maxY = math.Min(minY, p.Y*c.sy), math.Max(maxY, p.Y*c.sy)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	return r.Intersect(c.img.Bounds())
}

func segmentQuad(a, b draw.Point, width float64) []draw.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return draw.Rect(a.X-width/2, a.Y-width/2, width, width)
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return []draw.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
}
