package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySetSnapshotIsACopy(t *testing.T) {
	ks := NewKeySet()
	ks.Press(ArrowUp)
	snap := ks.Snapshot()

	ks.Release(ArrowUp)
	ks.Press(Shift)

	assert.True(t, snap.Held(ArrowUp))
	assert.False(t, snap.Held(Shift))
	assert.False(t, ks.Snapshot().Held(ArrowUp))
}

func TestKeySetConcurrentAccess(t *testing.T) {
	ks := NewKeySet()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				ks.Press(KeyA)
				_ = ks.Snapshot().Held(KeyA)
				ks.Release(KeyA)
			}
		}()
	}
	wg.Wait()
	assert.False(t, ks.Snapshot().Held(KeyA))
}

func TestReadRoad(t *testing.T) {
	tests := []struct {
		name string
		keys Snapshot
		want RoadControls
	}{
		{"idle", Snapshot{}, RoadControls{}},
		{"arrows", Snapshot{ArrowLeft: true, ArrowUp: true}, RoadControls{Steer: -1, Throttle: true}},
		{"wasd drift", Snapshot{KeyD: true, KeyS: true, Shift: true}, RoadControls{Steer: 1, Brake: true, Drift: true}},
		{"both directions cancel", Snapshot{KeyA: true, ArrowRight: true}, RoadControls{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadRoad(tt.keys))
		})
	}
}

func TestReadRing(t *testing.T) {
	assert.Equal(t, RingControls{Throttle: 1}, ReadRing(Snapshot{KeyW: true}))
	assert.Equal(t, RingControls{Throttle: -1, Steer: -1}, ReadRing(Snapshot{ArrowDown: true, KeyA: true}))
	assert.Equal(t, RingControls{Pulse: true}, ReadRing(Snapshot{ArrowUp: true, KeyS: true, Space: true}))

	ks := NewKeySet()
	ks.Set(Space, ArrowRight)
	assert.Equal(t, RingControls{Steer: 1, Pulse: true}, ReadRing(ks.Snapshot()))
}
