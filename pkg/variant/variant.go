// Package variant maps a variant name to a fresh session.
package variant

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/golangdaddy/pulsekart/pkg/config"
	"github.com/golangdaddy/pulsekart/pkg/loop"
	"github.com/golangdaddy/pulsekart/pkg/ring"
	"github.com/golangdaddy/pulsekart/pkg/road"
)

const (
	Road = "road"
	Ring = "ring"
)

// ErrUnknownVariant is returned for a name that is neither Road nor Ring
var ErrUnknownVariant = errors.New("unknown variant")

// Names lists the playable variants in menu order
var Names = []string{Road, Ring}

// Titles are the menu labels of Names
var Titles = map[string]string{
	Road: "Endless Road",
	Ring: "Pulse Ring",
}

// New creates a session of the named variant
func New(name string, t config.Tuning, rng *rand.Rand) (loop.Session, error) {
	switch name {
	case Road:
		return road.NewSession(t.Road, rng), nil
	case Ring:
		return ring.NewSession(t.Ring), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}
