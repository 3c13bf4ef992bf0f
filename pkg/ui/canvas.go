package ui

import (
	"image"
	"image/color"

	"github.com/golangdaddy/pulsekart/pkg/draw"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas renders draw.Surface calls onto an ebiten image as triangle meshes
type Canvas struct {
	dst  *ebiten.Image
	glow draw.Glow
	vs   []ebiten.Vertex
	is   []uint16
}

// NewCanvas creates a canvas with no target; Bind one before drawing
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Bind points the canvas at the image being drawn this frame
func (c *Canvas) Bind(dst *ebiten.Image) {
	c.dst = dst
	c.glow = draw.Glow{}
}

func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) SetGlow(g draw.Glow) {
	c.glow = g
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	c.FillPolygon(draw.Rect(x, y, w, h), clr)
}

// FillGradient shades the rectangle with per-vertex colors
func (c *Canvas) FillGradient(x, y, w, h float64, g draw.Gradient) {
	pts := draw.Rect(x, y, w, h)
	c.vs = c.vs[:0]
	c.is = append(c.is[:0], 0, 1, 2, 0, 2, 3)
	for i, p := range pts {
		clr := g.Top
		if i >= 2 {
			clr = g.Bottom
		}
		c.vs = append(c.vs, vertex(p.X, p.Y, clr))
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, triangleOptions(ebiten.FillRuleFillAll))
}

// FillPolygon fills with the non-zero rule so concave outlines like the
// kart arrow come out right
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

func (c *Canvas) StrokePolyline(pts []draw.Point, width float64, clr color.RGBA, closed bool) {
	if len(pts) < 2 {
		return
	}
	if c.glow.Blur > 0 {
		halo := draw.GlowLayerColor(c.glow)
		for i := draw.GlowLayerCount; i > 0; i-- {
			c.stroke(pts, width+c.glow.Blur*float64(i)/draw.GlowLayerCount, halo, closed)
		}
	}
	c.stroke(pts, width, clr, closed)
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, clr color.RGBA) {
	c.FillPolygon(draw.EllipsePoints(cx, cy, rx, ry, draw.EllipseSegments(rx, ry)), clr)
}

func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, width float64, clr color.RGBA) {
	c.StrokePolyline(draw.EllipsePoints(cx, cy, rx, ry, draw.EllipseSegments(rx, ry)), width, clr, true)
}

func (c *Canvas) fill(pts []draw.Point, clr color.RGBA) {
	path := outline(pts, true)
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.draw(clr, ebiten.FillRuleNonZero)
}

func (c *Canvas) stroke(pts []draw.Point, width float64, clr color.RGBA, closed bool) {
	path := outline(pts, closed)
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	c.draw(clr, ebiten.FillRuleFillAll)
}

func (c *Canvas) draw(clr color.RGBA, rule ebiten.FillRule) {
	for i := range c.vs {
		c.vs[i] = vertex(float64(c.vs[i].DstX), float64(c.vs[i].DstY), clr)
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, triangleOptions(rule))
}

func outline(pts []draw.Point, closed bool) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		path.Close()
	}
	return &path
}

func vertex(x, y float64, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 0xff,
		ColorG: float32(clr.G) / 0xff,
		ColorB: float32(clr.B) / 0xff,
		ColorA: float32(clr.A) / 0xff,
	}
}

func triangleOptions(rule ebiten.FillRule) *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{
		FillRule:       rule,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
}
