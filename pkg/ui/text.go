package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glyphHeight is the pixel height of the bitmap font at scale 1
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// drawText draws str scaled so its glyphs are size pixels tall, with its
// left edge at x and its vertical middle at centerY
func drawText(screen *ebiten.Image, str string, x, centerY, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, centerY-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawCenteredText is drawText with the string centered on centerX
func drawCenteredText(screen *ebiten.Image, str string, centerX, centerY, size float64, clr color.Color) {
	width := text.Advance(str, face) * size / glyphHeight
	drawText(screen, str, centerX-width/2, centerY, size, clr)
}

// drawPanel draws a translucent box with a 2px border
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bg, border color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, border, false)
}

// drawButton draws a menu option with its label centered
func drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bg, fg color.Color) {
	drawPanel(screen, x, y, width, height, bg, color.RGBA{80, 80, 100, 255})
	drawCenteredText(screen, label, x+width/2, y+height/2, glyphHeight, fg)
}
