package systems

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/assets"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// maxBatchVertices keeps every batch addressable by uint16 indices.
const maxBatchVertices = 65535 / 3 * 3

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	// Per-frame scratch, reused to avoid allocations
	sceneTris   []assets.Triangle
	groundQueue view.Queue
	sceneQueue  view.Queue
	vertices    []ebiten.Vertex
	indices     []uint16
	trisOp      = &ebiten.DrawTrianglesOptions{}
)

func init() {
	whiteImage.Fill(color.White)
}

// RenderStats describes the last drawn frame for the debug HUD.
type RenderStats struct {
	Triangles int
	Batches   int
	Blades    int
}

var lastStats RenderStats

// DrawScene rasterizes the ground, the grass field and the avatar with
// Lambert shading, painter-sorted, through DrawTriangles.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Scene.SkyColor)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry).View
	light := getLight(ecs)
	lastStats = RenderStats{}

	// Ground goes first and is sorted on its own; nothing is below it.
	sceneTris = sceneTris[:0]
	components.Ground.Each(ecs.World, func(e *donburi.Entry) {
		g := components.Ground.Get(e)
		sceneTris = assets.AppendGround(sceneTris, g.Size, g.Tiles, g.Y, cfg.Scene.GroundColor, cfg.Scene.GroundAlt)
	})
	queueTriangles(&groundQueue, cam, light, sceneTris)

	sceneTris = sceneTris[:0]
	components.Field.Each(ecs.World, func(e *donburi.Entry) {
		sceneTris = appendField(sceneTris, components.Field.Get(e), cam.Eye)
	})
	if avatar, ok := GetAvatar(ecs); ok {
		sceneTris = appendAvatar(sceneTris, avatar)
	}
	queueTriangles(&sceneQueue, cam, light, sceneTris)

	drawQueue(screen, &groundQueue)
	drawQueue(screen, &sceneQueue)
}

// appendField emits the blades within draw distance of eye from the
// instance buffer, refreshing it first when the field is dirty.
func appendField(dst []assets.Triangle, f *components.FieldData, eye math32.Vector3) []assets.Triangle {
	syncInstanceBuffer(f)
	maxDist := cfg.Field.DrawDistance * cfg.Field.DrawDistance
	for i := range f.Matrices {
		m := &f.Matrices[i]
		dx, dz := m[12]-eye.X, m[14]-eye.Z
		if dx*dx+dz*dz > maxDist {
			continue
		}
		dst = assets.AppendBlade(dst, m, cfg.Field.BladeWidth, cfg.Field.BladeHeight, cfg.Field.BaseColor, cfg.Field.TipColor)
		lastStats.Blades++
	}
	return dst
}

// appendAvatar emits the visible variant posed by its mixer.
func appendAvatar(dst []assets.Triangle, avatar *components.AvatarData) []assets.Triangle {
	model, phase := visibleModel(avatar)
	s := avatar.Scale
	var world math32.Matrix4
	world.SetTransform(avatar.Pose.Position, avatar.Pose.Orientation, math32.Vec3(s, s, s))
	return assets.AppendModel(dst, model, &world, phase)
}

func queueTriangles(q *view.Queue, cam *view.Camera, light *components.LightData, tris []assets.Triangle) {
	q.Reset()
	for i := range tris {
		t := &tris[i]
		k := assets.Lambert(t.Normal, light.Direction, light.Ambient, light.Intensity, t.TwoSided)
		shaded := [3]color.RGBA{
			assets.Shade(t.C[0], k),
			assets.Shade(t.C[1], k),
			assets.Shade(t.C[2], k),
		}
		q.Add(cam, t.V, shaded, t.Normal, t.TwoSided)
	}
	q.Sort()
	lastStats.Triangles += q.Len()
}

// drawQueue submits faces in order, flushing whenever a batch is full.
func drawQueue(screen *ebiten.Image, q *view.Queue) {
	vertices = vertices[:0]
	indices = indices[:0]
	for _, f := range q.Faces() {
		if len(vertices)+3 > maxBatchVertices {
			flushBatch(screen)
		}
		base := uint16(len(vertices))
		for _, v := range f.V {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   1,
				SrcY:   1,
				ColorR: v.R,
				ColorG: v.G,
				ColorB: v.B,
				ColorA: v.A,
			})
		}
		indices = append(indices, base, base+1, base+2)
	}
	flushBatch(screen)
}

func flushBatch(screen *ebiten.Image) {
	if len(indices) == 0 {
		return
	}
	screen.DrawTriangles(vertices, indices, whiteSubImage, trisOp)
	lastStats.Batches++
	vertices = vertices[:0]
	indices = indices[:0]
}

// getLight returns the scene light, or the configured one before it spawns.
func getLight(ecs *ecs.ECS) *components.LightData {
	if entry, ok := components.Light.First(ecs.World); ok {
		return components.Light.Get(entry)
	}
	return &components.LightData{
		Direction: cfg.Light.Direction,
		Ambient:   cfg.Light.Ambient,
		Intensity: cfg.Light.Intensity,
	}
}
