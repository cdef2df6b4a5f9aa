package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/meadow/config"
	"github.com/automoto/meadow/fonts"
	"github.com/automoto/meadow/scenes"
	"github.com/automoto/meadow/shared/tunables"
	"github.com/automoto/meadow/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(tunablesPath string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipLoading {
		g.scene = scenes.NewWorldScene(g, tunablesPath)
	} else {
		g.scene = scenes.NewLoadingScene(g, tunablesPath)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tunablesPath := flag.String("tunables", tunables.DefaultPath, "YAML file with live-tunable overrides; empty disables")
	flag.BoolVar(&config.Debug.SkipLoading, "skip-loading", config.Debug.SkipLoading, "start in the scene without the loading screen")
	flag.BoolVar(&config.Debug.ShowHUD, "hud", config.Debug.ShowHUD, "start with the debug HUD visible")
	flag.BoolVar(&config.Debug.NoCapture, "no-capture", config.Debug.NoCapture, "never capture the pointer")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if *tunablesPath != "" {
		config.LoadOverrides(*tunablesPath)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	} else if saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(*tunablesPath)); err != nil {
		log.Fatal(err)
	}
}
