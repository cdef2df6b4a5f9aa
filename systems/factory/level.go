package factory

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/meadow/archetypes"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/grass"
	"github.com/automoto/meadow/shared/tunables"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateField populates the grass field once from the configured seed.
func CreateField(ecs *ecs.ECS) *donburi.Entry {
	field := archetypes.Field.Spawn(ecs)

	rng := rand.New(rand.NewPCG(cfg.Field.Seed, cfg.Field.Seed>>1))
	f := grass.New(grass.Params{
		Count:        cfg.Field.Count,
		Side:         cfg.Field.Side,
		Variation:    cfg.Field.Variation,
		WindStrength: &cfg.Field.WindStrength,
	}, rng)
	f.Advance(0)

	components.Field.Set(field, &components.FieldData{Field: f})
	return field
}

// CreateGround spawns the checkerboard plane.
func CreateGround(ecs *ecs.ECS) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Ground.SetValue(ground, components.GroundData{
		Y:     cfg.Scene.GroundY,
		Size:  cfg.Scene.GroundSize,
		Tiles: cfg.Scene.GroundTiles,
	})
	return ground
}

// CreateLight spawns the directional light.
func CreateLight(ecs *ecs.ECS) *donburi.Entry {
	light := archetypes.Light.Spawn(ecs)
	components.Light.SetValue(light, components.LightData{
		Direction: cfg.Light.Direction,
		Ambient:   cfg.Light.Ambient,
		Intensity: cfg.Light.Intensity,
	})
	return light
}

// CreateClock spawns the scene time base at zero.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		Delta: 1 / float32(cfg.C.TPS),
	})
	return clock
}

// CreateFade spawns an opaque overlay that fades out over seconds.
func CreateFade(ecs *ecs.ECS, seconds float32) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Tween: gween.New(1, 0, seconds, ease.Linear),
		Alpha: 1,
	})
	return fade
}

// CreateTunables watches path for edits. A watcher that cannot start leaves
// the scene running on the values already loaded.
func CreateTunables(ecs *ecs.ECS, path string) *donburi.Entry {
	entry := archetypes.Tunables.Spawn(ecs)
	data := components.TunablesData{Path: path}
	if path != "" {
		w, err := tunables.NewWatcher(path)
		if err != nil {
			log.Printf("Warning: Could not watch tunables: %v", err)
		} else {
			data.Watcher = w
		}
	}
	components.Tunables.SetValue(entry, data)
	return entry
}

// CreateLevel builds the static part of the scene: collision bounds, the
// ground, the light and the grass field.
func CreateLevel(ecs *ecs.ECS) {
	CreateSpace(ecs, cfg.Scene.BoundsSize)
	CreateBounds(ecs, cfg.Scene.BoundsSize)
	CreateGround(ecs)
	CreateLight(ecs)
	CreateField(ecs)
}
