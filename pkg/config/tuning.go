package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidTuning is returned when a tuning value would break a simulation invariant
var ErrInvalidTuning = errors.New("invalid tuning")

// RoadTuning holds the parameters of the pseudo-3D road variant
type RoadTuning struct {
	SegmentCount  int     `json:"segment_count"`   // Segments in the looped track
	SegmentLength float64 `json:"segment_length"`  // World length of one segment
	RoadWidth     float64 `json:"road_width"`      // Half-width of the road in world units
	CameraHeight  float64 `json:"camera_height"`   // Camera elevation above the road
	CameraDepth   float64 `json:"camera_depth"`    // Projection plane distance
	DrawDistance  int     `json:"draw_distance"`   // Segments walked per frame
	MaxSpeed      float64 `json:"max_speed"`       // World units per second
	Accel         float64 `json:"accel"`           // Throttle acceleration
	Brake         float64 `json:"brake"`           // Brake deceleration
	Decel         float64 `json:"decel"`           // Coasting deceleration
	OffRoadDecel  float64 `json:"off_road_decel"`  // Extra deceleration off the tarmac
	DriftGrip     float64 `json:"drift_grip"`      // Grip while the drift modifier is held
	SteerBase     float64 `json:"steer_base"`      // Steering at standstill
	SteerGain     float64 `json:"steer_gain"`      // Additional steering at full speed
	BeatRate      float64 `json:"beat_rate"`       // Oscillator radians per second
	BeatSpeedGain float64 `json:"beat_speed_gain"` // Oscillator phase added per tick at full speed
}

// RingTuning holds the parameters of the top-down elliptical track variant
type RingTuning struct {
	SemiA          float64 `json:"semi_a"`           // Horizontal centerline semi-axis
	SemiB          float64 `json:"semi_b"`           // Vertical centerline semi-axis
	Width          float64 `json:"width"`            // Track width straddling the centerline
	Accel          float64 `json:"accel"`            // Throttle acceleration
	Damping        float64 `json:"damping"`          // Speed multiplier applied each tick
	DampingRefRate float64 `json:"damping_ref_rate"` // 0 keeps per-tick damping, >0 scales it by dt
	MinSpeed       float64 `json:"min_speed"`        // Reverse speed limit
	MaxSpeed       float64 `json:"max_speed"`        // Forward speed limit
	OffTrackDrag   float64 `json:"off_track_drag"`   // Speed multiplier while outside the track
	PulseDuration  float64 `json:"pulse_duration"`   // Seconds a pulse stays active
	PulseCooldown  float64 `json:"pulse_cooldown"`   // Seconds before a new pulse may start
	PulseThreshold float64 `json:"pulse_threshold"`  // Beat intensity a trigger must exceed
	PulseBoost     float64 `json:"pulse_boost"`      // Speed added per second while active
	OrbCount       int     `json:"orb_count"`        // Orbs evenly spaced on the centerline
	OrbRadius      float64 `json:"orb_radius"`       // Pickup distance
	OrbBoost       float64 `json:"orb_boost"`        // Flat speed gain per orb
	GateCount      int     `json:"gate_count"`       // Boost gates evenly spaced on the centerline
	GateRadius     float64 `json:"gate_radius"`      // Trigger distance
	GateRearm      float64 `json:"gate_rearm"`       // Distance that re-arms a gate
	GateBoost      float64 `json:"gate_boost"`       // Flat speed gain per gate flash
	BeatRate       float64 `json:"beat_rate"`        // Oscillator radians per second
}

// Tuning is the full set of tunables for both variants
type Tuning struct {
	Road RoadTuning `json:"road"`
	Ring RingTuning `json:"ring"`
}

// Default returns the stock tuning
func Default() Tuning {
	return Tuning{
		Road: RoadTuning{
			SegmentCount:  500,
			SegmentLength: 180,
			RoadWidth:     2000,
			CameraHeight:  1100,
			CameraDepth:   0.85,
			DrawDistance:  240,
			MaxSpeed:      7200,
			Accel:         4200,
			Brake:         6400,
			Decel:         2400,
			OffRoadDecel:  3600,
			DriftGrip:     0.6,
			SteerBase:     2.2,
			SteerGain:     3.4,
			BeatRate:      3.2,
			BeatSpeedGain: 3.6,
		},
		Ring: RingTuning{
			SemiA:          360,
			SemiB:          210,
			Width:          110,
			Accel:          260,
			Damping:        0.98,
			DampingRefRate: 0,
			MinSpeed:       -120,
			MaxSpeed:       320,
			OffTrackDrag:   0.92,
			PulseDuration:  2.2,
			PulseCooldown:  3.5,
			PulseThreshold: 0.72,
			PulseBoost:     120,
			OrbCount:       12,
			OrbRadius:      26,
			OrbBoost:       40,
			GateCount:      4,
			GateRadius:     32,
			GateRearm:      60,
			GateBoost:      80,
			BeatRate:       3.0,
		},
	}
}

// Validate checks that the tuning keeps the simulation invariants reachable
func (t Tuning) Validate() error {
	r := t.Road
	switch {
	case r.SegmentCount < 1:
		return fmt.Errorf("%w: road segment_count must be positive", ErrInvalidTuning)
	case r.SegmentLength <= 0:
		return fmt.Errorf("%w: road segment_length must be positive", ErrInvalidTuning)
	case r.CameraDepth <= 0:
		return fmt.Errorf("%w: road camera_depth must be positive", ErrInvalidTuning)
	case r.DrawDistance < 1 || r.DrawDistance > r.SegmentCount:
		return fmt.Errorf("%w: road draw_distance %d outside [1, %d]", ErrInvalidTuning, r.DrawDistance, r.SegmentCount)
	case r.MaxSpeed <= 0:
		return fmt.Errorf("%w: road max_speed must be positive", ErrInvalidTuning)
	case r.DriftGrip < 0 || r.DriftGrip > 1:
		return fmt.Errorf("%w: road drift_grip %.2f outside [0, 1]", ErrInvalidTuning, r.DriftGrip)
	}

	g := t.Ring
	switch {
	case g.Width <= 0:
		return fmt.Errorf("%w: ring width must be positive", ErrInvalidTuning)
	case g.SemiA-g.Width/2 <= 0 || g.SemiB-g.Width/2 <= 0:
		return fmt.Errorf("%w: ring inner ellipse collapses (width %.1f too large)", ErrInvalidTuning, g.Width)
	case g.MinSpeed > g.MaxSpeed:
		return fmt.Errorf("%w: ring min_speed %.1f above max_speed %.1f", ErrInvalidTuning, g.MinSpeed, g.MaxSpeed)
	case g.Damping <= 0 || g.Damping > 1:
		return fmt.Errorf("%w: ring damping %.3f outside (0, 1]", ErrInvalidTuning, g.Damping)
	case g.DampingRefRate < 0:
		return fmt.Errorf("%w: ring damping_ref_rate must not be negative", ErrInvalidTuning)
	case g.OrbCount < 0 || g.GateCount < 0:
		return fmt.Errorf("%w: ring orb_count and gate_count must not be negative", ErrInvalidTuning)
	case g.GateRearm < g.GateRadius:
		return fmt.Errorf("%w: ring gate_rearm %.1f below gate_radius %.1f", ErrInvalidTuning, g.GateRearm, g.GateRadius)
	}
	return nil
}

// Load reads a tuning file and merges it onto the defaults.
// Fields absent from the file keep their default value.
func Load(path string) (Tuning, error) {
	t := Default()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return t, fmt.Errorf("tuning file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return t, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	const maxFileSize = 1 << 20
	if info.Size() > maxFileSize {
		return t, fmt.Errorf("tuning file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	// Decoding onto the populated defaults leaves omitted fields untouched
	if err := json.Unmarshal(data, &t); err != nil {
		return Default(), fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Default(), err
	}
	return t, nil
}
