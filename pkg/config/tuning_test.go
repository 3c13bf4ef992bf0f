package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()
		path := writeTuning(t, "tuning.json", `{"road": {"max_speed": 9000}, "ring": {"orb_count": 6}}`)

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9000.0, got.Road.MaxSpeed)
		assert.Equal(t, 6, got.Ring.OrbCount)
		assert.Equal(t, Default().Road.Accel, got.Road.Accel)
		assert.Equal(t, Default().Ring.SemiA, got.Ring.SemiA)
	})

	t.Run("rejects non-json extension", func(t *testing.T) {
		t.Parallel()
		path := writeTuning(t, "tuning.yaml", `{}`)

		_, err := Load(path)
		assert.ErrorContains(t, err, ".json extension")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		path := writeTuning(t, "tuning.json", `{"road": `)

		got, err := Load(path)
		assert.Error(t, err)
		assert.Equal(t, Default(), got)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		path := writeTuning(t, "tuning.json", `{"ring": {"width": 1000}}`)

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidTuning)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"draw distance beyond track", func(t *Tuning) { t.Road.DrawDistance = t.Road.SegmentCount + 1 }},
		{"zero segment length", func(t *Tuning) { t.Road.SegmentLength = 0 }},
		{"zero camera depth", func(t *Tuning) { t.Road.CameraDepth = 0 }},
		{"grip above one", func(t *Tuning) { t.Road.DriftGrip = 1.5 }},
		{"inverted speed clamp", func(t *Tuning) { t.Ring.MinSpeed = 400 }},
		{"damping above one", func(t *Tuning) { t.Ring.Damping = 1.1 }},
		{"negative reference rate", func(t *Tuning) { t.Ring.DampingRefRate = -60 }},
		{"rearm inside trigger radius", func(t *Tuning) { t.Ring.GateRearm = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := Default()
			tt.mutate(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)
		})
	}
}
