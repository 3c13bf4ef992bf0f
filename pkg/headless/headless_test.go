package headless

import (
	"context"
	"math/rand"
	"testing"

	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/input"
	"github.com/golangdaddy/pulsekart/pkg/ring"
	"github.com/golangdaddy/pulsekart/pkg/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCruise(t *testing.T) {
	c := Cruise{PulseEvery: 3}
	assert.Equal(t, []string{input.ArrowUp, input.Space}, c.Keys(0))
	assert.Equal(t, []string{input.ArrowUp}, c.Keys(1))
	assert.Equal(t, []string{input.ArrowUp, input.Space}, c.Keys(6))
	assert.Equal(t, []string{input.ArrowUp}, Cruise{}.Keys(0))
}

func TestPilotFor(t *testing.T) {
	tuning := config.Default()
	assert.IsType(t, RingPilot{}, PilotFor(ring.NewSession(tuning.Ring)))
	assert.IsType(t, Cruise{}, PilotFor(road.NewSession(tuning.Road, rand.New(rand.NewSource(1)))))
}

func TestRunRing(t *testing.T) {
	tuning := config.Default().Ring
	ss := ring.NewSession(tuning)

	res, err := Run(context.Background(), ss, PilotFor(ss), 600)
	require.NoError(t, err)
	assert.Equal(t, 600, res.Frames)
	assert.Positive(t, res.Ops)
	assert.Positive(t, ss.Score(), "following the centerline picks up orbs")
	assert.NotEqual(t, "0/12", res.Readout.Count)
	assert.LessOrEqual(t, ss.Kart().Speed, tuning.MaxSpeed)
}

func TestRunRoad(t *testing.T) {
	ss := road.NewSession(config.Default().Road, rand.New(rand.NewSource(5)))

	res, err := Run(context.Background(), ss, PilotFor(ss), 120)
	require.NoError(t, err)
	assert.Positive(t, res.Readout.Speed)
	assert.Positive(t, ss.Kart().Position)
	assert.Equal(t, 0.0, ss.Kart().X, "no steering keys were held")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, ring.NewSession(config.Default().Ring), Cruise{}, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
