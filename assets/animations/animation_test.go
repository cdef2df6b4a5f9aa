package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipDuration(t *testing.T) {
	cases := []struct {
		name string
		clip Clip
		want float32
	}{
		{"eight_frames", Clip{First: 0, Last: 7, Step: 1, FramesPerSecond: 8}, 1},
		{"stepped", Clip{First: 0, Last: 7, Step: 2, FramesPerSecond: 4}, 1},
		{"zero_rate", Clip{First: 0, Last: 7, Step: 1}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, c.clip.Duration(), 1e-6)
		})
	}
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(&Clip{Name: "run", First: 0, Last: 3, Step: 1, FramesPerSecond: 4})

	a.Update(0.5)
	assert.InDelta(t, 0.5, a.Phase(), 1e-5)

	a.Update(0.75)
	assert.InDelta(t, 0.25, a.Phase(), 1e-5)

	a.Update(3)
	assert.InDelta(t, 0.25, a.Phase(), 1e-5)

	a.Restart()
	assert.Zero(t, a.Phase())
}

func TestAnimationWithoutDuration(t *testing.T) {
	a := NewAnimation(&Clip{First: 0, Last: 3, Step: 1})
	a.Update(1)
	assert.Zero(t, a.Phase())
}

func TestMixerPlay(t *testing.T) {
	idle := &Clip{Name: "idle", First: 0, Last: 3, Step: 1, FramesPerSecond: 2}
	run := &Clip{Name: "run", First: 0, Last: 7, Step: 1, FramesPerSecond: 12}
	m := NewMixer(idle, run)

	assert.Nil(t, m.Current())
	m.Advance(1)
	assert.Zero(t, m.Phase())

	require.NoError(t, m.Play("idle"))
	m.Advance(1)
	assert.InDelta(t, 0.5, m.Phase(), 1e-6)

	// Replaying the current clip keeps its cursor.
	require.NoError(t, m.Play("idle"))
	assert.InDelta(t, 0.5, m.Phase(), 1e-6)

	require.NoError(t, m.Play("run"))
	assert.Zero(t, m.Phase())

	assert.Error(t, m.Play("dance"))
	assert.InDelta(t, 2, m.Elapsed(), 1e-6)
}
