package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/pulsekart/pkg/draw"
	"github.com/golangdaddy/pulsekart/pkg/hud"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUD panel placement
const (
	hudX      = 20.0
	hudY      = 20.0
	hudWidth  = 220.0
	hudHeight = 150.0
	barHeight = 12.0
)

var (
	hudBackground = color.RGBA{20, 20, 30, 200}
	hudBorder     = color.RGBA{100, 100, 120, 255}
	barTrack      = color.RGBA{40, 40, 60, 255}
	barFill       = draw.Hex("#ff7cf7")
)

// DrawHUD paints the readout panel in the top-left corner
func DrawHUD(screen *ebiten.Image, canvas *Canvas, r hud.Readout) {
	drawPanel(screen, hudX, hudY, hudWidth, hudHeight, hudBackground, hudBorder)

	speed := fmt.Sprintf("%d", r.Speed)
	drawText(screen, speed, hudX+16, hudY+34, 36, speedColor(r.Speed))
	drawText(screen, "SPEED", hudX+130, hudY+40, 16, color.RGBA{200, 200, 200, 255})

	lines := r.Lines()
	drawText(screen, lines[1], hudX+16, hudY+76, 16, color.RGBA{150, 200, 255, 255})
	drawText(screen, lines[2], hudX+16, hudY+100, 16, color.RGBA{150, 200, 255, 255})

	drawBeatBar(canvas, hudX+12, hudY+hudHeight-26, hudWidth-24, r)
}

// drawBeatBar fills the bar proportionally to the beat with a halo that
// swells on the peak
func drawBeatBar(canvas *Canvas, x, y, width float64, r hud.Readout) {
	percent, glow := hud.BeatBar(r.Beat)
	canvas.FillRect(x, y, width, barHeight, barTrack)
	canvas.SetGlow(draw.Glow{Color: draw.WithAlpha(barFill, 0.5), Blur: glow / 2})
	canvas.FillRect(x, y, width*percent/100, barHeight, barFill)
	canvas.SetGlow(draw.Glow{})
}

// speedColor shifts green to yellow to red as the readout climbs
func speedColor(speed int) color.RGBA {
	switch {
	case speed < 150:
		return color.RGBA{100, 255, 100, 255}
	case speed < 280:
		return color.RGBA{255, 255, 100, 255}
	default:
		return color.RGBA{255, 100, 100, 255}
	}
}
