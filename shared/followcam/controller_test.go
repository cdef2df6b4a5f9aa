package followcam

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
}

func TestLookIgnoredWithoutCapture(t *testing.T) {
	c := New(DefaultSettings())
	c.Look(250, -80, false)
	assert.Equal(t, Orientation{}, c.Orientation)

	c.Look(100, 0, true)
	assert.InDelta(t, -0.2, c.Orientation.Yaw, tol)
}

func TestLookVerticalIsLessSensitive(t *testing.T) {
	c := New(DefaultSettings())
	c.Look(0, -10, true)
	assert.InDelta(t, 10*0.002*0.7, c.Orientation.Pitch, tol)
}

func TestPitchAlwaysClamped(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	rng := rand.New(rand.NewPCG(3, 5))

	for i := 0; i < 2000; i++ {
		dx := (rng.Float32() - 0.5) * 2000
		dy := (rng.Float32() - 0.5) * 2000
		c.Look(dx, dy, true)
		require.GreaterOrEqual(t, c.Orientation.Pitch, s.MinPitch)
		require.LessOrEqual(t, c.Orientation.Pitch, s.MaxPitch)
	}
}

func TestPitchBoundsAreAsymmetric(t *testing.T) {
	s := DefaultSettings()
	assert.InDelta(t, 30, math32.RadToDeg(s.MaxPitch), 0.01)
	assert.InDelta(t, -51.43, math32.RadToDeg(s.MinPitch), 0.01)
}

func TestUpdateKeepsCameraAboveGround(t *testing.T) {
	s := DefaultSettings()
	rng := rand.New(rand.NewPCG(9, 1))

	for i := 0; i < 500; i++ {
		c := New(s)
		c.Orientation.Yaw = (rng.Float32() - 0.5) * 40
		c.Orientation.Pitch = s.MinPitch + rng.Float32()*(s.MaxPitch-s.MinPitch)
		pose := NewPose(math32.Vec3(
			(rng.Float32()-0.5)*100,
			(rng.Float32()-0.7)*4,
			(rng.Float32()-0.5)*100,
		))

		c.Update(pose, rng.Float32())
		require.GreaterOrEqual(t, c.Ideal.Y, s.GroundY+s.GroundClearance)
		require.GreaterOrEqual(t, c.LookAt.Y, s.GroundY+s.LookClearance)
	}
}

func TestUpdateFromRestSaturates(t *testing.T) {
	c := New(DefaultSettings())
	pose := NewPose(math32.Vec3(0, 0, 0))

	assertVec(t, math32.Vec3(0, 1.5, 4), c.IdealPosition(pose.Position))

	c.Update(pose, 1)
	assertVec(t, math32.Vec3(0, 1.5, 4), c.Current)
	assertVec(t, math32.Vec3(0, 0.8, 0), c.LookAt)
}

func TestUpdateSmoothsPartially(t *testing.T) {
	c := New(DefaultSettings())
	pose := NewPose(math32.Vec3(0, 0, 0))

	c.Update(pose, 0.05)
	assertVec(t, math32.Vec3(0, 0.75, 2), c.Current)

	c.Update(pose, 0.05)
	assertVec(t, math32.Vec3(0, 1.125, 3), c.Current)
}

func TestSteepPitchIsClampedToGround(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.Orientation.Pitch = s.MaxPitch

	ideal := c.IdealPosition(math32.Vec3(0, 0, 0))
	assert.InDelta(t, s.GroundY+s.GroundClearance, ideal.Y, tol)
}

func TestLookTargetBelowGround(t *testing.T) {
	c := New(DefaultSettings())
	target := c.LookTarget(math32.Vec3(2, -1, 3))
	assertVec(t, math32.Vec3(2, 0.5, 3), target)
}

func TestMoveWithoutInputLeavesPose(t *testing.T) {
	c := New(DefaultSettings())
	c.Orientation.Yaw = 1.1
	pose := NewPose(math32.Vec3(1, 0, -2))
	pose.Orientation = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 0.4)
	before := pose

	cases := []struct {
		name string
		dirs Directions
	}{
		{"none", Directions{}},
		{"forward_back", Directions{Forward: true, Back: true}},
		{"left_right", Directions{Left: true, Right: true}},
		{"all_four", Directions{Forward: true, Back: true, Left: true, Right: true}},
		{"jump_only", Directions{Jump: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			moved := c.Move(&pose, tc.dirs, 0.016)
			assert.False(t, moved)
			assert.Equal(t, before, pose)
		})
	}
}

func TestMoveForwardFollowsYaw(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	pose := NewPose(math32.Vec3(0, 0, 0))

	require.True(t, c.Move(&pose, Directions{Forward: true}, 0.5))
	assertVec(t, math32.Vec3(0, 0, -s.MoveSpeed*0.5), pose.Position)

	c.Orientation.Yaw = math32.Pi / 2
	pose = NewPose(math32.Vec3(0, 0, 0))
	require.True(t, c.Move(&pose, Directions{Forward: true}, 0.5))
	assertVec(t, math32.Vec3(-s.MoveSpeed*0.5, 0, 0), pose.Position)
}

func TestMoveDiagonalIsNormalized(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	pose := NewPose(math32.Vec3(0, 0, 0))

	c.Move(&pose, Directions{Forward: true, Right: true}, 1)
	assert.InDelta(t, s.MoveSpeed, pose.Position.Length(), tol)
	assert.Zero(t, pose.Position.Y)
}

func TestMoveTurnsGradually(t *testing.T) {
	c := New(DefaultSettings())
	pose := NewPose(math32.Vec3(0, 0, 0))

	// Facing +Z, moving toward -Z: a half turn is needed.
	c.Move(&pose, Directions{Forward: true}, 0.016)
	facing := math32.Vec3(0, 0, 1).MulQuat(pose.Orientation)
	assert.Greater(t, facing.Z, float32(0), "one short tick must not snap the facing")

	for i := 0; i < 120; i++ {
		c.Move(&pose, Directions{Forward: true}, 0.016)
	}
	facing = math32.Vec3(0, 0, 1).MulQuat(pose.Orientation)
	assert.InDelta(t, -1, facing.Z, 0.01)
}

func TestSnapSkipsSmoothing(t *testing.T) {
	c := New(DefaultSettings())
	pose := NewPose(math32.Vec3(5, 0, 5))
	c.Snap(pose)
	assertVec(t, math32.Vec3(5, 1.5, 9), c.Current)
}

func TestInvertY(t *testing.T) {
	s := DefaultSettings()
	s.InvertY = true
	c := New(s)
	c.Look(0, -10, true)
	assert.InDelta(t, -10*0.002*0.7, c.Orientation.Pitch, tol)
}
