package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/meadow/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// LoadingScene builds the world one stage per tick behind a status panel,
// then hands over to it.
type LoadingScene struct {
	sceneChanger SceneChanger
	world        *WorldScene
	panel        *ui.LoadingUI
}

// NewLoadingScene creates a loading scene for a new world scene.
func NewLoadingScene(sc SceneChanger, tunablesPath string) *LoadingScene {
	ls := &LoadingScene{
		sceneChanger: sc,
		world:        NewWorldScene(sc, tunablesPath),
	}
	panel, err := ui.NewLoadingUI()
	if err != nil {
		log.Printf("Warning: Could not build loading panel: %v", err)
	} else {
		ls.panel = panel
		panel.SetProgress(worldStages[0].name, 0)
	}
	return ls
}

func (ls *LoadingScene) Update() {
	if ls.panel != nil {
		ls.panel.Update()
	}

	more := ls.world.buildNext()
	if !more {
		ls.sceneChanger.ChangeScene(ls.world)
		return
	}
	if ls.panel != nil {
		done := float32(ls.world.built) / float32(len(worldStages))
		ls.panel.SetProgress(worldStages[ls.world.built].name, done)
	}
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ls.panel != nil {
		ls.panel.Draw(screen)
	}
}
