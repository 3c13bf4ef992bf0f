package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/loop"
	"github.com/golangdaddy/pulsekart/pkg/ui"
	"github.com/golangdaddy/pulsekart/pkg/variant"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	tuning        config.Tuning
	rng           *rand.Rand
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance. An empty start shows the title
// screen; otherwise that variant starts straight away.
func NewGame(t config.Tuning, rng *rand.Rand, start string) (*Game, error) {
	game := &Game{
		tuning: t,
		rng:    rng,
	}
	if start == "" {
		game.showTitle()
		return game, nil
	}
	if err := game.startGameplay(start); err != nil {
		return nil, err
	}
	return game, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout follows the window so sessions see resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

func (g *Game) showTitle() {
	titles := make([]string, len(variant.Names))
	for i, name := range variant.Names {
		titles[i] = variant.Titles[name]
	}
	g.currentScreen = ui.NewTitleScreen(titles, func(index int) {
		if err := g.startGameplay(variant.Names[index]); err != nil {
			log.Printf("Failed to start %s: %v", variant.Names[index], err)
		}
	})
}

// startGameplay transitions to a fresh session of the named variant
func (g *Game) startGameplay(name string) error {
	session, err := variant.New(name, g.tuning, g.rng)
	if err != nil {
		return fmt.Errorf("starting gameplay: %w", err)
	}
	runner := loop.NewRunner(loop.RealClock{}, KeySource{}, session)
	log.Printf("Game started: %s", session)
	g.currentScreen = NewGameplayScreen(runner, func() {
		log.Printf("Game ended after %d frames: %s", runner.Frames(), session)
		g.showTitle()
	})
	return nil
}
