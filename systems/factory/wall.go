package factory

import (
	"github.com/automoto/meadow/archetypes"
	"github.com/automoto/meadow/components"
	"github.com/automoto/meadow/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns a solid rectangle in space coordinates.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateBounds walls off a square of side size world units centered on the
// origin. The space must exist.
func CreateBounds(ecs *ecs.ECS, size float32) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	minX, minY := space.ToSpace(-size/2, -size/2)
	maxX, maxY := space.ToSpace(size/2, size/2)
	thick := space.Scale // one world unit
	width := maxX - minX

	CreateWall(ecs, minX-thick, minY-thick, width+2*thick, thick) // north
	CreateWall(ecs, minX-thick, maxY, width+2*thick, thick)       // south
	CreateWall(ecs, minX-thick, minY, thick, maxY-minY)           // west
	CreateWall(ecs, maxX, minY, thick, maxY-minY)                 // east
}
