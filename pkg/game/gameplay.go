package game

import (
	"github.com/golangdaddy/pulsekart/pkg/loop"
	"github.com/golangdaddy/pulsekart/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameplayScreen runs one session inside the ebiten loop
type GameplayScreen struct {
	runner    *loop.Runner
	canvas    *ui.Canvas
	onGameEnd func()
}

// NewGameplayScreen creates a gameplay screen driving runner
func NewGameplayScreen(runner *loop.Runner, onGameEnd func()) *GameplayScreen {
	return &GameplayScreen{
		runner:    runner,
		canvas:    ui.NewCanvas(),
		onGameEnd: onGameEnd,
	}
}

// Update ticks the session. Escape leaves to the title, R restarts.
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.runner.Restart()
	}
	gs.runner.Update()
	return nil
}

// Draw renders the session and the HUD over it
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.canvas.Bind(screen)
	gs.runner.Draw(gs.canvas)
	ui.DrawHUD(screen, gs.canvas, gs.runner.Readout())
}
