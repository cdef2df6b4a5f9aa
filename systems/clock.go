package systems

import (
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances scene time by one tick. Wrapped in the pause check so
// the wind and the avatar freeze together.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Delta = 1 / float32(cfg.C.TPS)
	clock.Elapsed += clock.Delta
	clock.Ticks++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
