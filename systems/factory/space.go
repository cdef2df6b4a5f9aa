package factory

import (
	"math"

	"github.com/automoto/meadow/archetypes"
	"github.com/automoto/meadow/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceScale is resolv units per world unit; resolv cells are integers.
const spaceScale = 16

// CreateSpace spawns a collision space covering a square of side size world
// units, centered on the origin, with two units of margin on every side.
func CreateSpace(ecs *ecs.ECS, size float32) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)

	side := int(math.Ceil(float64(size+4) * spaceScale))
	spaceData := resolv.NewSpace(side, side, spaceScale, spaceScale)
	components.Space.SetValue(space, components.SpaceData{
		Space:  spaceData,
		Scale:  spaceScale,
		Origin: float64(side) / 2,
	})
	return space
}
