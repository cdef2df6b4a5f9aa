package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJumpStaysGroundedWithoutInput(t *testing.T) {
	j := Jump{Speed: 5, Gravity: 20}
	y := j.Step(0, 0, false, 0.016)
	assert.Zero(t, y)
	assert.False(t, j.Airborne)
}

func TestJumpArcLands(t *testing.T) {
	j := Jump{Speed: 5, Gravity: 20}

	y := j.Step(0, 0, true, 0.1)
	assert.True(t, j.Airborne)
	assert.InDelta(t, 0.3, y, 1e-5)

	peak := y
	for i := 0; i < 100 && j.Airborne; i++ {
		// Holding the key mid-air must not relaunch.
		y = j.Step(y, 0, true, 0.05)
		if y > peak {
			peak = y
		}
	}
	assert.False(t, j.Airborne)
	assert.Zero(t, y)
	// Velocity updates before height: 3, 2, 1, 0 m/s over 0.05s steps.
	assert.InDelta(t, 0.45, peak, 1e-5)
}

func TestJumpPeakApproachesAnalytic(t *testing.T) {
	j := Jump{Speed: 5, Gravity: 20}
	const dt = 0.001

	var y, peak float32
	y = j.Step(y, 0, true, dt)
	for i := 0; i < 10000 && j.Airborne; i++ {
		y = j.Step(y, 0, false, dt)
		peak = max(peak, y)
	}
	assert.False(t, j.Airborne)
	// v^2 / 2g
	assert.InDelta(t, 0.625, peak, 0.01)
}
