package archetypes

import (
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Avatar = newArchetype(
		tags.Avatar,
		components.Avatar,
		components.Object,
	)
	Field = newArchetype(
		tags.Grass,
		components.Field,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Light = newArchetype(
		components.Light,
	)
	Ground = newArchetype(
		components.Ground,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Fade = newArchetype(
		components.Fade,
	)
	Tunables = newArchetype(
		components.Tunables,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
