package systems

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/view"
	"github.com/automoto/meadow/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var showBounds bool

// DrawDebug outlines every collision object of the space on the ground.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !showBounds {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry).View

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	y := cfg.Scene.GroundY + 0.02
	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{255, 80, 80, 255}
		} else if obj.HasTags(tags.ResolvAvatar) {
			c = color.RGBA{80, 80, 255, 255}
		}

		x0, z0 := space.ToWorld(obj.X, obj.Y)
		x1, z1 := space.ToWorld(obj.X+obj.W, obj.Y+obj.H)
		corners := [4]math32.Vector3{
			math32.Vec3(x0, y, z0),
			math32.Vec3(x1, y, z0),
			math32.Vec3(x1, y, z1),
			math32.Vec3(x0, y, z1),
		}
		strokeOutline(screen, cam, corners, c)
	}
}

func strokeOutline(screen *ebiten.Image, cam *view.Camera, corners [4]math32.Vector3, c color.RGBA) {
	var pts [4]view.Point
	for i, p := range corners {
		pt, ok := cam.Project(p)
		if !ok {
			return
		}
		pts[i] = pt
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, 1, c, false)
	}
}
