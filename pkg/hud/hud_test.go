package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBeatBar(t *testing.T) {
	percent, glow := BeatBar(0.5)
	assert.Equal(t, 50.0, percent)
	assert.Equal(t, 21.0, glow)
}

func TestLines(t *testing.T) {
	r := Readout{Speed: 21, Count: "3/12", Status: "Ready", Beat: 1}
	assert.Equal(t, []string{"SPEED 21", "ORBS 3/12", "PULSE Ready", "BEAT 100%"}, r.Lines())
}
