package systems

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestScene(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.Scene.BoundsSize)
	factory.CreateBounds(e, cfg.Scene.BoundsSize)
	factory.CreateClock(e)
	avatar := factory.CreateAvatar(e)
	factory.CreateCamera(e, components.Avatar.Get(avatar).Pose, false)
	return e
}

func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func TestAvatarIdleStaysPut(t *testing.T) {
	e := newTestScene(t)
	avatar, ok := GetAvatar(e)
	require.True(t, ok)
	start := avatar.Pose.Position

	for range 30 {
		hold(e)
		UpdateAvatar(e)
	}

	assert.Equal(t, start, avatar.Pose.Position)
	assert.False(t, avatar.Moving)
	assert.Equal(t, "idle", avatar.Visible().String())
}

func TestAvatarRunsAndSwitchesVariant(t *testing.T) {
	e := newTestScene(t)
	avatar, _ := GetAvatar(e)

	hold(e, cfg.ActionMoveForward)
	UpdateAvatar(e)

	assert.True(t, avatar.Moving)
	assert.Equal(t, "run", avatar.Visible().String())
	moved := avatar.Pose.Position.Sub(cfg.Avatar.Spawn).Length()
	assert.InDelta(t, cfg.Avatar.MoveSpeed/float32(cfg.C.TPS), moved, 1e-3)

	hold(e)
	UpdateAvatar(e)
	assert.False(t, avatar.Moving)
	assert.Equal(t, "idle", avatar.Visible().String())
}

func TestAvatarStopsAtBounds(t *testing.T) {
	e := newTestScene(t)
	avatar, _ := GetAvatar(e)
	half := cfg.Scene.BoundsSize / 2

	// Long enough to cross the whole field several times over.
	for range 20 * cfg.C.TPS {
		hold(e, cfg.ActionMoveForward, cfg.ActionMoveRight)
		UpdateAvatar(e)
	}

	p := avatar.Pose.Position
	assert.LessOrEqual(t, math32.Abs(p.X), half+0.01)
	assert.LessOrEqual(t, math32.Abs(p.Z), half+0.01)
	assert.Greater(t, math32.Abs(p.X)+math32.Abs(p.Z), half, "the avatar reached a wall")
}

func TestAvatarJumpLands(t *testing.T) {
	e := newTestScene(t)
	avatar, _ := GetAvatar(e)

	hold(e, cfg.ActionJump)
	UpdateAvatar(e)
	require.True(t, avatar.Jump.Airborne)
	assert.Greater(t, avatar.Pose.Position.Y, cfg.Scene.GroundY)

	for range 5 * cfg.C.TPS {
		hold(e)
		UpdateAvatar(e)
	}
	assert.False(t, avatar.Jump.Airborne)
	assert.Equal(t, cfg.Scene.GroundY, avatar.Pose.Position.Y)
}

func TestBothMixersAdvance(t *testing.T) {
	e := newTestScene(t)
	avatar, _ := GetAvatar(e)

	for range 10 {
		hold(e)
		UpdateAvatar(e)
	}
	for _, v := range avatar.Variants {
		assert.InDelta(t, 10/float32(cfg.C.TPS), v.Mixer.Elapsed(), 1e-4)
	}
}
