// Package headless runs a session without a display, feeding it scripted
// keys on a mock clock and rendering into a recorder.
package headless

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/golangdaddy/pulsekart/pkg/draw"
	"github.com/golangdaddy/pulsekart/pkg/hud"
	"github.com/golangdaddy/pulsekart/pkg/input"
	"github.com/golangdaddy/pulsekart/pkg/loop"
	"github.com/golangdaddy/pulsekart/pkg/ring"
)

const (
	TickRate   = 60
	PulseEvery = 45 // Ticks between pulse key presses
	lookAhead  = 0.35
	deadband   = 0.05
)

// Pilot picks the keys held on each tick
type Pilot interface {
	Keys(frame int) []string
}

// Cruise holds the throttle and taps the pulse key every PulseEvery ticks
type Cruise struct {
	PulseEvery int
}

func (c Cruise) Keys(frame int) []string {
	keys := []string{input.ArrowUp}
	if c.PulseEvery > 0 && frame%c.PulseEvery == 0 {
		keys = append(keys, input.Space)
	}
	return keys
}

// RingPilot steers a ring kart along the centerline by aiming at a point
// a little further round the loop
type RingPilot struct {
	Cruise
	Session *ring.Session
}

func (p RingPilot) Keys(frame int) []string {
	keys := p.Cruise.Keys(frame)
	k := p.Session.Kart()
	t := p.Session.Track()

	// The kart laps with decreasing centerline angle
	at := math.Atan2(k.Y/t.B, k.X/t.A)
	tx, ty := t.PointAt(at - lookAhead)
	diff := math.Remainder(math.Atan2(ty-k.Y, tx-k.X)-k.Angle, 2*math.Pi)
	switch {
	case diff < -deadband:
		keys = append(keys, input.ArrowLeft)
	case diff > deadband:
		keys = append(keys, input.ArrowRight)
	}
	return keys
}

// PilotFor returns the autopilot suited to session
func PilotFor(session loop.Session) Pilot {
	cruise := Cruise{PulseEvery: PulseEvery}
	if ss, ok := session.(*ring.Session); ok {
		return RingPilot{Cruise: cruise, Session: ss}
	}
	return Cruise{}
}

// Result summarises a headless run
type Result struct {
	Frames  int
	Ops     int // Draw calls in the last frame
	Readout hud.Readout
}

// Run plays frames ticks at TickRate
func Run(ctx context.Context, session loop.Session, pilot Pilot, frames int) (Result, error) {
	clock := loop.NewMockClock(time.Unix(0, 0))
	keys := input.NewKeySet()
	runner := loop.NewRunner(clock, keys, session)
	rec := draw.NewRecorder(1024, 600)

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("headless run stopped at frame %d: %w", i, err)
		}
		keys.Set(pilot.Keys(i)...)
		runner.Update()
		rec.Reset()
		runner.Draw(rec)
		clock.Advance(time.Second / TickRate)
	}

	return Result{
		Frames:  runner.Frames(),
		Ops:     len(rec.Ops),
		Readout: runner.Readout(),
	}, nil
}
