package variant

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/ring"
	"github.com/golangdaddy/pulsekart/pkg/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tuning := config.Default()

	ss, err := New(Road, tuning, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.IsType(t, &road.Session{}, ss)

	ss, err = New(Ring, tuning, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.IsType(t, &ring.Session{}, ss)

	_, err = New("hover", tuning, nil)
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.ErrorContains(t, err, `"hover"`)

	for _, name := range Names {
		assert.NotEmpty(t, Titles[name])
	}
}
