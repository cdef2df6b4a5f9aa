package systems

import (
	"log"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/assets"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/followcam"
	"github.com/automoto/meadow/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAvatar moves the avatar, keeps it inside the bounds, integrates the
// jump and advances both animation mixers.
func UpdateAvatar(e *ecs.ECS) {
	avatarEntry, ok := tags.Avatar.First(e.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	avatar := components.Avatar.Get(avatarEntry)
	ctrl := components.Camera.Get(cameraEntry).Controller
	input := getOrCreateInput(e)
	clock := GetOrCreateClock(e)

	dirs := Directions(input)
	prev := avatar.Pose.Position
	moving := ctrl.Move(&avatar.Pose, dirs, clock.Delta)
	if moving {
		constrainToBounds(e, avatarEntry, avatar, prev)
	}

	avatar.Pose.Position.Y = avatar.Jump.Step(avatar.Pose.Position.Y, cfg.Scene.GroundY, dirs[followcam.Jump], clock.Delta)

	if moving != avatar.Moving {
		avatar.SetMoving(moving)
		variant := avatar.Visible()
		if err := avatar.Variants[variant].Mixer.Play(variant.String()); err != nil {
			log.Printf("Warning: Could not play %s clip: %v", variant, err)
		}
	}

	// Both mixers run every tick so a variant resumes mid-cycle when shown.
	for i := range avatar.Variants {
		avatar.Variants[i].Mixer.Advance(clock.Delta)
	}
}

// constrainToBounds replays the planar step from prev against the solid walls
// of the space, one axis at a time, and writes the resolved position back.
func constrainToBounds(e *ecs.ECS, entry *donburi.Entry, avatar *components.AvatarData, prev math32.Vector3) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok || !entry.HasComponent(components.Object) {
		return
	}
	space := components.Space.Get(spaceEntry)
	obj := components.Object.Get(entry).Object

	px, pz := space.ToSpace(prev.X, prev.Z)
	nx, nz := space.ToSpace(avatar.Pose.Position.X, avatar.Pose.Position.Z)
	obj.X = px - obj.W/2
	obj.Y = pz - obj.H/2

	dx := resolveAxis(obj, nx-px, 0)
	obj.X += dx
	dy := resolveAxis(obj, 0, nz-pz)
	obj.Y += dy
	obj.Update()

	avatar.Pose.Position.X, avatar.Pose.Position.Z = space.ToWorld(obj.X+obj.W/2, obj.Y+obj.H/2)
}

// resolveAxis shortens a single-axis step so obj stops at the first solid.
func resolveAxis(obj *resolv.Object, dx, dy float64) float64 {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		if dx != 0 {
			return dx
		}
		return dy
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		if dx != 0 {
			return dx
		}
		return dy
	}
	contact := check.ContactWithObject(solids[0])
	if dx != 0 {
		return contact.X()
	}
	return contact.Y()
}

// GetAvatar returns the avatar component, if spawned.
func GetAvatar(e *ecs.ECS) (*components.AvatarData, bool) {
	entry, ok := tags.Avatar.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Avatar.Get(entry), true
}

// visibleModel returns the shown variant's model and its playback phase.
func visibleModel(avatar *components.AvatarData) (*assets.Model, float32) {
	v := &avatar.Variants[avatar.Visible()]
	return &v.Model, v.Mixer.Phase()
}
