package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/draw"
	"github.com/golangdaddy/pulsekart/pkg/input"
	"github.com/golangdaddy/pulsekart/pkg/loop"
	"github.com/golangdaddy/pulsekart/pkg/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = draw.Hex("#ff0000")
	black = draw.Hex("#000000")
	white = draw.Hex("#ffffff")
)

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(64, 30)
	w, h := c.Size()
	require.Equal(t, FrameWidth, w)
	require.Equal(t, FrameHeight, h)
	require.Equal(t, 64, c.Image().Bounds().Dx())
	require.Equal(t, 60, c.Image().Bounds().Dy())

	c.FillRect(0, 0, FrameWidth, FrameHeight, black)
	c.FillRect(0, 0, FrameWidth/2, FrameHeight, red)

	left := c.Image().RGBAAt(10, 30)
	assert.InDelta(t, 255, int(left.R), 2)
	assert.InDelta(t, 0, int(left.G), 2)

	right := c.Image().RGBAAt(50, 30)
	assert.InDelta(t, 0, int(right.R), 2)

	c.FillRect(0, 0, FrameWidth, FrameHeight, draw.WithAlpha(white, 0.5))
	assert.InDelta(t, 128, int(c.Image().RGBAAt(50, 30).G), 3)
}

func TestCanvasGradient(t *testing.T) {
	c := NewCanvas(16, 20)
	c.FillGradient(0, 0, FrameWidth, FrameHeight, draw.Gradient{Top: white, Bottom: black})

	prev := 256
	for y := 0; y < 40; y++ {
		r := int(c.Image().RGBAAt(8, y).R)
		assert.LessOrEqual(t, r, prev, "row %d", y)
		prev = r
	}
	assert.Greater(t, int(c.Image().RGBAAt(8, 0).R), 240)
	assert.Less(t, int(c.Image().RGBAAt(8, 39).R), 15)
}

func TestCanvasGlowAndStroke(t *testing.T) {
	c := NewCanvas(64, 30)
	c.SetGlow(draw.Glow{Color: white, Blur: 80})
	c.FillEllipse(512, 300, 40, 40, red)
	c.SetGlow(draw.Glow{})

	// 32,30 is the center; 40px is under 3 raster pixels wide, the halo reaches past it
	assert.Greater(t, int(c.Image().RGBAAt(32, 30).R), 200)
	halo := c.Image().RGBAAt(32+6, 30)
	assert.Greater(t, int(halo.G), 0)

	c.StrokePolyline([]draw.Point{{X: 0, Y: 500}, {X: 1024, Y: 500}}, 1, white, false)
	assert.Greater(t, int(c.Image().RGBAAt(5, 50).B), 0, "hairlines stay visible")
}

func TestCanvasFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(32, 11)

	c := NewCanvas(32, 10)
	c.FillRect(0, 0, FrameWidth, FrameHeight/2, red)
	c.FillRect(0, FrameHeight/2, FrameWidth, FrameHeight/2, black)
	c.Flush(screen)

	mainc, _, style, _ := screen.GetContent(3, 2)
	assert.Equal(t, halfBlock, mainc)
	fg, bg, _ := style.Decompose()
	r, g, b := fg.RGB()
	assert.InDelta(t, 255, int(r), 2)
	assert.InDelta(t, 0, int(g), 2)
	assert.InDelta(t, 0, int(b), 2)
	r, _, _ = bg.RGB()
	assert.InDelta(t, 255, int(r), 2)

	_, _, style, _ = screen.GetContent(3, 8)
	fg, _, _ = style.Decompose()
	r, _, _ = fg.RGB()
	assert.InDelta(t, 0, int(r), 2)
}

func TestLatch(t *testing.T) {
	clock := loop.NewMockClock(time.Unix(0, 0))
	l := NewLatch(clock, HoldFor)

	l.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.True(t, l.Snapshot().Held(input.ArrowUp))

	clock.Advance(170 * time.Millisecond)
	l.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone))
	keys := l.Snapshot()
	assert.True(t, keys.Held(input.ArrowUp))
	assert.True(t, keys.Held(input.KeyD))
	assert.True(t, keys.Held(input.Shift))

	clock.Advance(20 * time.Millisecond)
	keys = l.Snapshot()
	assert.False(t, keys.Held(input.ArrowUp), "released once the hold window passes")
	assert.True(t, keys.Held(input.KeyD))

	clock.Advance(time.Second)
	assert.Empty(t, l.Snapshot())
}

func TestKeyNames(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []string
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), []string{input.ArrowLeft}},
		{"shifted arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), []string{input.Shift, input.ArrowRight}},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), []string{input.KeyW}},
		{"uppercase letter", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), []string{input.Shift, input.KeyA}},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []string{input.Space}},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), nil},
		{"unmapped key", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyNames(tt.ev))
		})
	}
}

func TestBeatBar(t *testing.T) {
	assert.Equal(t, "░░░░", BeatBar(0, 4))
	assert.Equal(t, "██░░", BeatBar(0.5, 4))
	assert.Equal(t, "████", BeatBar(1, 4))
}

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *loop.MockClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	clock := loop.NewMockClock(time.Unix(0, 0))
	latch := NewLatch(clock, HoldFor)
	runner := loop.NewRunner(clock, latch, ring.NewSession(config.Default().Ring))
	return New(screen, runner, latch), screen, clock
}

func rowText(screen tcell.Screen, row int) string {
	cols, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, row)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestFrontendFrame(t *testing.T) {
	f, screen, clock := newTestFrontend(t)

	f.Frame()
	hudRow := rowText(screen, 24)
	assert.Contains(t, hudRow, "SPEED 0")
	assert.Contains(t, hudRow, "ORBS 0/12")
	assert.Contains(t, hudRow, "PULSE Ready")

	assert.True(t, f.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	for i := 0; i < 5; i++ {
		clock.Advance(time.Second / FrameRate)
		f.Frame()
	}
	assert.Greater(t, f.runner.Readout().Speed, 0)
	assert.Equal(t, 6, f.runner.Frames())

	assert.True(t, f.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Equal(t, 0, f.runner.Frames())
	assert.False(t, f.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestFrontendRunStopsOnContext(t *testing.T) {
	f, _, _ := newTestFrontend(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.Run(ctx), context.DeadlineExceeded)
}
