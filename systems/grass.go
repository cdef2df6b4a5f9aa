package systems

import (
	"github.com/automoto/meadow/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrass sways every field to the current scene time.
func UpdateGrass(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	components.Field.Each(ecs.World, func(e *donburi.Entry) {
		components.Field.Get(e).Field.Advance(clock.Elapsed)
	})
}

// syncInstanceBuffer refreshes the cached matrices once per dirty pass.
func syncInstanceBuffer(f *components.FieldData) {
	if !f.Field.Dirty() {
		return
	}
	f.Matrices = f.Field.InstanceMatrices(f.Matrices)
	f.Uploads++
}
