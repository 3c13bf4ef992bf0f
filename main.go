package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/game"
	"github.com/golangdaddy/pulsekart/pkg/headless"
	"github.com/golangdaddy/pulsekart/pkg/loop"
	"github.com/golangdaddy/pulsekart/pkg/terminal"
	"github.com/golangdaddy/pulsekart/pkg/variant"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	name := flag.String("variant", "", "variant to play: road or ring (ebiten shows a menu when empty)")
	frontend := flag.String("frontend", "ebiten", "frontend: ebiten, terminal or headless")
	tuningPath := flag.String("tuning", "", "path to a JSON tuning file")
	frames := flag.Int("frames", 600, "ticks to simulate with -frontend headless")
	seed := flag.Int64("seed", 0, "random seed for sparks and speed lines (0 uses the clock)")
	flag.Parse()

	tuning := config.Default()
	if *tuningPath != "" {
		var err error
		tuning, err = config.Load(*tuningPath)
		if err != nil {
			log.Printf("Failed to load tuning, using defaults: %v", err)
		} else {
			log.Printf("Loaded tuning from %s", *tuningPath)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var err error
	switch *frontend {
	case "ebiten":
		err = runEbiten(tuning, rng, *name)
	case "terminal":
		err = runTerminal(tuning, rng, orDefault(*name))
	case "headless":
		err = runHeadless(tuning, rng, orDefault(*name), *frames)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontend)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func orDefault(name string) string {
	if name == "" {
		return variant.Road
	}
	return name
}

func runEbiten(tuning config.Tuning, rng *rand.Rand, name string) error {
	g, err := game.NewGame(tuning, rng, name)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(1024, 600)
	ebiten.SetWindowTitle("Pulsekart")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runTerminal(tuning config.Tuning, rng *rand.Rand, name string) error {
	session, err := variant.New(name, tuning, rng)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clock := loop.RealClock{}
	latch := terminal.NewLatch(clock, terminal.HoldFor)
	runner := loop.NewRunner(clock, latch, session)
	log.Printf("Game started: %s", session)
	if err := terminal.New(screen, runner, latch).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runHeadless(tuning config.Tuning, rng *rand.Rand, name string, frames int) error {
	session, err := variant.New(name, tuning, rng)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Game started: %s", session)
	res, err := headless.Run(ctx, session, headless.PilotFor(session), frames)
	if err != nil {
		return err
	}
	log.Printf("Game ended after %d frames (%d draw calls in the last): %s", res.Frames, res.Ops, session)
	for _, line := range res.Readout.Lines() {
		log.Print(line)
	}
	return nil
}
