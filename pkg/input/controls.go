package input

// RoadControls are the driving inputs of the pseudo-3D variant
type RoadControls struct {
	Steer    float64 // -1 left, 0, +1 right
	Throttle bool
	Brake    bool
	Drift    bool
}

// RingControls are the driving inputs of the top-down variant
type RingControls struct {
	Steer    float64 // -1 left, 0, +1 right
	Throttle float64 // -1 reverse, 0, +1 forward
	Pulse    bool    // Pulse key held this tick
}

// ReadRoad samples the pseudo-3D controls from held keys
func ReadRoad(k Keys) RoadControls {
	return RoadControls{
		Steer:    steer(k),
		Throttle: k.Held(ArrowUp) || k.Held(KeyW),
		Brake:    k.Held(ArrowDown) || k.Held(KeyS),
		Drift:    k.Held(Shift),
	}
}

// ReadRing samples the top-down controls from held keys
func ReadRing(k Keys) RingControls {
	throttle := 0.0
	if k.Held(ArrowUp) || k.Held(KeyW) {
		throttle++
	}
	if k.Held(ArrowDown) || k.Held(KeyS) {
		throttle--
	}
	return RingControls{
		Steer:    steer(k),
		Throttle: throttle,
		Pulse:    k.Held(Space),
	}
}

func steer(k Keys) float64 {
	s := 0.0
	if k.Held(ArrowLeft) || k.Held(KeyA) {
		s--
	}
	if k.Held(ArrowRight) || k.Held(KeyD) {
		s++
	}
	return s
}
