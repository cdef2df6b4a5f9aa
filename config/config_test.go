package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/shared/tunables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensitivityScalesWithSteps(t *testing.T) {
	base := Camera.Sensitivity
	assert.InDelta(t, base, SettingsMenu.Sensitivity(SettingsMenu.DefaultSensitivityIndex), 1e-9)
	assert.InDelta(t, base*0.5, SettingsMenu.Sensitivity(-3), 1e-9)
	assert.InDelta(t, base*2, SettingsMenu.Sensitivity(99), 1e-9)
}

func TestApplyOverrides(t *testing.T) {
	field, camera, avatar := Field, Camera, Avatar
	t.Cleanup(func() { Field, Camera, Avatar = field, camera, avatar })

	wind := float32(0.9)
	maxPitch := float32(45)
	require.NoError(t, ApplyOverrides(&tunables.Overrides{
		Field:  tunables.FieldOverrides{WindStrength: &wind},
		Camera: tunables.CameraOverrides{MaxPitchDeg: &maxPitch},
	}))

	assert.Equal(t, wind, Field.WindStrength)
	assert.InDelta(t, math32.Pi/4, Camera.MaxPitch, 1e-6)
	assert.Equal(t, field.Count, Field.Count, "absent keys keep defaults")
	assert.Equal(t, camera.MinPitch, Camera.MinPitch)

	assert.NoError(t, ApplyOverrides(nil))
	assert.Equal(t, wind, Field.WindStrength)
}

func TestApplyOverridesRejectsSingleInvertedBound(t *testing.T) {
	field, camera := Field, Camera
	t.Cleanup(func() { Field, Camera = field, camera })

	cases := []struct {
		name string
		o    tunables.CameraOverrides
	}{
		{"min_above_current_max", tunables.CameraOverrides{MinPitchDeg: ptr(float32(40))}},
		{"max_below_current_min", tunables.CameraOverrides{MaxPitchDeg: ptr(float32(-80))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wind := float32(0.7)
			err := ApplyOverrides(&tunables.Overrides{
				Field:  tunables.FieldOverrides{WindStrength: &wind},
				Camera: tc.o,
			})
			assert.Error(t, err)
			assert.Equal(t, camera.MinPitch, Camera.MinPitch)
			assert.Equal(t, camera.MaxPitch, Camera.MaxPitch)
			assert.Equal(t, field.WindStrength, Field.WindStrength, "nothing applies from a rejected file")
		})
	}

	require.NoError(t, ApplyOverrides(&tunables.Overrides{
		Camera: tunables.CameraOverrides{MinPitchDeg: ptr(float32(20))},
	}))
	assert.InDelta(t, math32.DegToRad(20), Camera.MinPitch, 1e-6)
	assert.LessOrEqual(t, Camera.MinPitch, Camera.MaxPitch)
}

func ptr[T any](v T) *T {
	return &v
}

func TestLoadOverrides(t *testing.T) {
	avatar := Avatar
	t.Cleanup(func() { Avatar = avatar })

	dir := t.TempDir()
	assert.False(t, LoadOverrides(filepath.Join(dir, "missing.yaml")))

	path := filepath.Join(dir, "meadow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("avatar:\n  moveSpeed: 9\n"), 0o644))
	assert.True(t, LoadOverrides(path))
	assert.Equal(t, float32(9), Avatar.MoveSpeed)

	require.NoError(t, os.WriteFile(path, []byte("field:\n  count: -1\n"), 0o644))
	assert.False(t, LoadOverrides(path))

	camera := Camera
	t.Cleanup(func() { Camera = camera })
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  minPitchDeg: 40\n"), 0o644))
	assert.False(t, LoadOverrides(path))
	assert.Equal(t, camera.MinPitch, Camera.MinPitch)
}

func TestFollowSettingsMirrorsConfig(t *testing.T) {
	s := FollowSettings()
	assert.Equal(t, Avatar.MoveSpeed, s.MoveSpeed)
	assert.Equal(t, Camera.Offset, s.Offset)
	assert.Equal(t, Scene.GroundY, s.GroundY)
	assert.Less(t, s.MinPitch, s.MaxPitch)
}
