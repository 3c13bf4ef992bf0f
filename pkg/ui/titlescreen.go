package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/pulsekart/pkg/background"
	"github.com/golangdaddy/pulsekart/pkg/beat"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen lets the player pick a variant
type TitleScreen struct {
	startTime time.Time
	options   []string
	selected  int
	onSelect  func(index int) // Callback when an option is chosen
	canvas    *Canvas
	stars     []background.Star
	beat      *beat.Oscillator
}

// NewTitleScreen creates a title screen listing options
func NewTitleScreen(options []string, onSelect func(index int)) *TitleScreen {
	return &TitleScreen{
		startTime: time.Now(),
		options:   options,
		onSelect:  onSelect,
		canvas:    NewCanvas(),
		stars:     background.Starfield(120, 3),
		beat:      beat.New(2, 0),
	}
}

// Update handles menu input. Escape on the title quits the game.
func (ts *TitleScreen) Update() error {
	ts.beat.Advance(1.0/float64(ebiten.TPS()), 0)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ts.selected = (ts.selected + len(ts.options) - 1) % len(ts.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ts.selected = (ts.selected + 1) % len(ts.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ts.onSelect != nil {
			ts.onSelect(ts.selected)
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{10, 11, 24, 255})

	ts.canvas.Bind(screen)
	background.DrawStarfield(ts.canvas, ts.stars, ts.beat.Intensity())

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Title swells between 1.0 and 1.1 of its base size
	titleSize := 96 * (1 + 0.1*ts.beat.Intensity())
	brightness := math.Min(1, 0.8+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(124 * brightness),
		uint8(247 * brightness),
		255,
	}
	drawCenteredText(screen, "PULSEKART", centerX, centerY, titleSize, titleColor)
	drawCenteredText(screen, "Neon Arcade Racing", centerX, centerY+80, 32, color.RGBA{180, 180, 200, 255})

	buttonWidth := 300.0
	buttonHeight := 50.0
	buttonX := centerX - buttonWidth/2
	for i, label := range ts.options {
		bg := color.RGBA{40, 40, 60, 255}
		fg := color.RGBA{255, 255, 255, 255}
		if i == ts.selected {
			bg = color.RGBA{60, 100, 140, 255}
			fg = color.RGBA{200, 240, 255, 255}
		}
		drawButton(screen, label, buttonX, float64(height)/2+40+float64(i)*70, buttonWidth, buttonHeight, bg, fg)
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawCenteredText(screen, "Arrows: Choose | Enter: Race | Esc: Quit", centerX, float64(height)-50, 20, color.RGBA{150, 200, 255, 255})
	}

	drawRules(screen, width, height)
}

// drawRules frames the menu with two thin horizontal lines
func drawRules(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	for _, y := range []float64{float64(height) / 6, float64(height) * 5 / 6} {
		vector.DrawFilledRect(screen, 0, float32(y), float32(width), 2, lineColor, false)
	}
}
