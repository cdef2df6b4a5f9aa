package components

import (
	"testing"

	"github.com/automoto/meadow/assets"
	"github.com/stretchr/testify/assert"
)

func TestTrackFirstSampleHasNoMotion(t *testing.T) {
	var in InputData
	dx, dy := in.Track(100, 50)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = in.Track(110, 45)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(-5), dy)

	in.DeltaX = 3
	in.ResetCursor()
	assert.Zero(t, in.DeltaX)
	dx, dy = in.Track(500, 500)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestSpaceConversion(t *testing.T) {
	s := SpaceData{Scale: 16, Origin: 320}

	x, y := s.ToSpace(0, 0)
	assert.Equal(t, 320.0, x)
	assert.Equal(t, 320.0, y)

	x, y = s.ToSpace(-2.5, 4)
	assert.Equal(t, 280.0, x)
	assert.Equal(t, 384.0, y)

	wx, wz := s.ToWorld(x, y)
	assert.InDelta(t, -2.5, wx, 1e-6)
	assert.InDelta(t, 4, wz, 1e-6)
}

func TestSetMovingShowsOneVariant(t *testing.T) {
	var a AvatarData
	a.SetMoving(false)
	assert.Equal(t, assets.VariantIdle, a.Visible())
	assert.True(t, a.Variants[assets.VariantIdle].Visible)
	assert.False(t, a.Variants[assets.VariantRun].Visible)

	a.SetMoving(true)
	assert.Equal(t, assets.VariantRun, a.Visible())
	assert.False(t, a.Variants[assets.VariantIdle].Visible)
	assert.True(t, a.Moving)
}
