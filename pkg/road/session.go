// Package road is the pseudo-3D endless road variant: a looped strip of
// curving, hilly segments projected scanline-style in front of the kart.
package road

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golangdaddy/pulsekart/pkg/background"
	"github.com/golangdaddy/pulsekart/pkg/beat"
	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/draw"
	"github.com/golangdaddy/pulsekart/pkg/hud"
	"github.com/golangdaddy/pulsekart/pkg/input"
	"github.com/google/uuid"
)

// Session owns all state of one road run
type Session struct {
	ID     uuid.UUID
	tuning config.RoadTuning
	rng    *rand.Rand

	track  *Track
	kart   Kart
	beat   *beat.Oscillator
	level  float64 // Beat intensity of the last update
	score  int
	sparks []Spark

	backdrop *background.Generator
	width    int
	height   int
}

// NewSession creates a road session at its reset state.
// rng feeds spark emission and decorative randomness only; geometry is deterministic.
func NewSession(t config.RoadTuning, rng *rand.Rand) *Session {
	ss := &Session{
		ID:     uuid.New(),
		tuning: t,
		rng:    rng,
		width:  1024,
		height: 600,
	}
	ss.backdrop = background.NewGenerator(ss.width, ss.height, rng)
	ss.Reset()
	return ss
}

// Reset regenerates the track and puts the kart back at the start
func (ss *Session) Reset() {
	ss.track = Generate(ss.tuning.SegmentCount, ss.tuning.SegmentLength)
	ss.kart = Kart{}
	ss.beat = beat.New(ss.tuning.BeatRate, ss.tuning.BeatSpeedGain)
	ss.level = ss.beat.Intensity()
	ss.score = 0
	ss.sparks = nil
}

// Resize records the frame size used for spark placement
func (ss *Session) Resize(w, h int) {
	ss.width, ss.height = w, h
	ss.backdrop.Resize(w, h)
}

// Update advances the run by one tick
func (ss *Session) Update(dt float64, keys input.Keys) {
	ss.level = ss.beat.Advance(dt, ss.kart.Speed/ss.tuning.MaxSpeed)

	score, sparking := ss.kart.Drive(input.ReadRoad(keys), dt, ss.tuning, ss.track)
	ss.score += score
	if sparking && ss.rng.Float64() < sparkChance {
		x, _ := kartAnchor(ss.width, ss.height, ss.kart.X)
		ss.sparks = append(ss.sparks, newSpark(x, float64(ss.height)*SparkAnchorY, ss.rng))
	}

	ss.sparks = ageSparks(ss.sparks, dt)
}

// Render draws the whole frame back to front
func (ss *Session) Render(s draw.Surface) {
	drawBackground(s, ss.level)
	ss.drawRoad(s)
	background.DrawSpeedLines(s, ss.backdrop.SpeedLines(SpeedLineCount, ss.level), ss.level)
	ss.drawKart(s)
	drawSparks(s, ss.sparks, ss.rng)
}

// Readout returns the HUD values
func (ss *Session) Readout() hud.Readout {
	status := "Grip"
	if ss.kart.DriftHeat > 0.15 {
		status = "Drifting"
	}
	_, glow := hud.BeatBar(ss.level)
	return hud.Readout{
		Speed:  int(math.Round(ss.kart.Speed / 20)),
		Count:  fmt.Sprintf("%d", ss.score/100),
		Status: status,
		Beat:   ss.level,
		Glow:   glow,
	}
}

// Kart returns a copy of the kart state
func (ss *Session) Kart() Kart {
	return ss.kart
}

// Score returns the accumulated distance score
func (ss *Session) Score() int {
	return ss.score
}

// Track returns the segment loop
func (ss *Session) Track() *Track {
	return ss.track
}

// Sparks returns the live particles
func (ss *Session) Sparks() []Spark {
	return ss.sparks
}

// String summarises the run for logs
func (ss *Session) String() string {
	return fmt.Sprintf("road session %s: pos=%.0f speed=%.0f x=%.2f score=%d",
		ss.ID, ss.kart.Position, ss.kart.Speed, ss.kart.X, ss.score)
}
