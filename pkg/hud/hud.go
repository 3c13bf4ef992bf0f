package hud

import "fmt"

// Readout is everything the HUD shows for one tick
type Readout struct {
	Speed  int     // Speed display value
	Count  string  // Orb or score counter text
	Status string  // Pulse or drift status text
	Beat   float64 // Beat bar fill in [0,1]
	Glow   float64 // Beat bar glow radius in pixels
}

// BeatBar returns the bar fill percentage and glow for a beat intensity
func BeatBar(beat float64) (percent, glow float64) {
	return beat * 100, 12 + beat*18
}

// Lines formats the readout as plain text rows for text-only frontends
func (r Readout) Lines() []string {
	percent, _ := BeatBar(r.Beat)
	return []string{
		fmt.Sprintf("SPEED %d", r.Speed),
		fmt.Sprintf("ORBS %s", r.Count),
		fmt.Sprintf("PULSE %s", r.Status),
		fmt.Sprintf("BEAT %3.0f%%", percent),
	}
}
