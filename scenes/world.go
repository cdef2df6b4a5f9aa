package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/followcam"
	"github.com/automoto/meadow/systems"
	"github.com/automoto/meadow/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// stage is one step of building the world.
type stage struct {
	name string
	run  func(*WorldScene)
}

// worldStages build the scene in order. The loading scene runs one per tick.
var worldStages = []stage{
	{"Preparing systems", (*WorldScene).configureSystems},
	{"Laying the ground", func(ws *WorldScene) { factory.CreateLevel(ws.ecs) }},
	{"Spawning the avatar", (*WorldScene).spawnAvatar},
	{"Watching tunables", func(ws *WorldScene) { factory.CreateTunables(ws.ecs, ws.tunablesPath) }},
}

// WorldScene is the grass field with the avatar and its follow camera.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tunablesPath string
	intro        bool

	built int
	once  sync.Once
}

// NewWorldScene creates the world scene. tunablesPath may be empty.
func NewWorldScene(sc SceneChanger, tunablesPath string) *WorldScene {
	return &WorldScene{sceneChanger: sc, tunablesPath: tunablesPath, intro: true}
}

// buildNext runs the next build stage and reports whether any remain.
func (ws *WorldScene) buildNext() bool {
	if ws.built >= len(worldStages) {
		return false
	}
	worldStages[ws.built].run(ws)
	ws.built++
	return ws.built < len(worldStages)
}

// build runs every remaining stage.
func (ws *WorldScene) build() {
	for ws.buildNext() {
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.build)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configureSystems() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdateTunables)

	// Scene systems wrapped with the pause check
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLook))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateGrass))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAvatar))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddSystem(systems.UpdateFade)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)
	ecs.AddRenderer(cfg.Overlay, systems.DrawFade)

	ws.ecs = ecs
}

func (ws *WorldScene) spawnAvatar() {
	factory.CreateClock(ws.ecs)
	avatar := factory.CreateAvatar(ws.ecs)
	factory.CreateCamera(ws.ecs, avatarPose(avatar), ws.intro)
	systems.ApplySettings(ws.ecs)

	if !cfg.Debug.SkipLoading {
		factory.CreateFade(ws.ecs, cfg.Loading.FadeSeconds)
	}
}

func avatarPose(entry *donburi.Entry) followcam.Pose {
	return components.Avatar.Get(entry).Pose
}
