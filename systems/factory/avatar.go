package factory

import (
	"github.com/automoto/meadow/archetypes"
	"github.com/automoto/meadow/assets"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/followcam"
	"github.com/automoto/meadow/shared/gamemath"
	"github.com/automoto/meadow/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAvatar spawns the avatar at the configured spawn point, idle and on
// the ground. The collision footprint joins the space when it exists.
func CreateAvatar(ecs *ecs.ECS) *donburi.Entry {
	avatar := archetypes.Avatar.Spawn(ecs)

	spawn := cfg.Avatar.Spawn
	spawn.Y = cfg.Scene.GroundY
	data := components.AvatarData{
		Pose: followcam.NewPose(spawn),
		Jump: gamemath.Jump{
			Speed:   cfg.Avatar.JumpSpeed,
			Gravity: cfg.Avatar.Gravity,
		},
		Scale: cfg.Avatar.Scale,
		Variants: GenerateVariants(assets.Palette{
			Body: cfg.Avatar.BodyColor,
			Limb: cfg.Avatar.LimbColor,
			Head: cfg.Avatar.HeadColor,
		}),
	}
	data.SetMoving(false)
	components.Avatar.SetValue(avatar, data)

	var x, y, size float64
	size = float64(cfg.Avatar.CollisionWidth)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		x, y = space.ToSpace(spawn.X, spawn.Z)
		size *= space.Scale
	}

	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.AddTags("character", tags.ResolvAvatar)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = avatar
	components.Object.SetValue(avatar, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return avatar
}
