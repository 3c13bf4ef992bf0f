// Package terminal plays a session inside a terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/pulsekart/pkg/hud"
	"github.com/golangdaddy/pulsekart/pkg/loop"
)

// FrameRate is the terminal redraw rate
const FrameRate = 30

var (
	hudStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 200, 255)).Background(tcell.NewRGBColor(20, 20, 30))
	helpStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 120, 140)).Background(tcell.NewRGBColor(20, 20, 30))
	beatStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 124, 247)).Background(tcell.NewRGBColor(20, 20, 30))
	helpText   = "arrows/wasd drive  shift drift  space pulse  r restart  q quit"
	beatBarLen = 20
)

// Frontend owns the screen and drives a runner from a ticker
type Frontend struct {
	screen tcell.Screen
	runner *loop.Runner
	latch  *Latch
	canvas *Canvas
}

// New creates a frontend on an initialised screen. The runner must read
// its keys from latch.
func New(screen tcell.Screen, runner *loop.Runner, latch *Latch) *Frontend {
	cols, rows := screen.Size()
	return &Frontend{
		screen: screen,
		runner: runner,
		latch:  latch,
		canvas: NewCanvas(cols, rows-1),
	}
}

// Run ticks and redraws until the player quits or ctx is done
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / FrameRate)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.handleEvent(ev) {
				log.Printf("Game ended after %d frames: %s", f.runner.Frames(), f.runner.Session())
				return nil
			}
		case <-tick.C:
			f.Frame()
		}
	}
}

// handleEvent reports false when the player quits
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		cols, rows := f.screen.Size()
		f.canvas.Resize(cols, rows-1)
		f.screen.Sync()
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC ||
			(e.Key() == tcell.KeyRune && e.Rune() == 'q') {
			return false
		}
		if e.Key() == tcell.KeyRune && (e.Rune() == 'r' || e.Rune() == 'R') {
			f.runner.Restart()
			return true
		}
		f.latch.HandleKey(e)
	}
	return true
}

// Frame runs one tick and paints it
func (f *Frontend) Frame() {
	f.runner.Update()
	f.runner.Draw(f.canvas)
	f.canvas.Flush(f.screen)

	_, rows := f.screen.Size()
	drawHUD(f.screen, rows-1, f.runner.Readout())
	f.screen.Show()
}

// drawHUD fills one status row with the readout, the beat bar and help
func drawHUD(screen tcell.Screen, row int, r hud.Readout) {
	cols, _ := screen.Size()
	for x := 0; x < cols; x++ {
		screen.SetContent(x, row, ' ', nil, hudStyle)
	}

	lines := r.Lines()
	x := drawString(screen, 0, row, fmt.Sprintf(" %s  %s  %s  ", lines[0], lines[1], lines[2]), hudStyle)
	x = drawString(screen, x, row, BeatBar(r.Beat, beatBarLen), beatStyle)
	drawString(screen, x, row, "  "+helpText, helpStyle)
}

// BeatBar renders the beat level as a fixed-width text gauge
func BeatBar(beat float64, width int) string {
	percent, _ := hud.BeatBar(beat)
	filled := int(percent/100*float64(width) + 0.5)
	filled = max(0, min(filled, width))
	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '░'
		if i < filled {
			bar[i] = '█'
		}
	}
	return string(bar)
}

func drawString(screen tcell.Screen, x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, st)
		x++
	}
	return x
}
