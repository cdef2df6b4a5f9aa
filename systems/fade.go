package systems

import (
	"image/color"

	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances the fade-in overlay and removes it once transparent.
func UpdateFade(e *ecs.ECS) {
	clock := GetOrCreateClock(e)
	var finished []donburi.Entity
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		fade := components.Fade.Get(entry)
		if fade.Tween == nil {
			return
		}
		alpha, done := fade.Tween.Update(frameDelta(clock))
		fade.Alpha = alpha
		if done {
			finished = append(finished, entry.Entity())
		}
	})
	for _, entity := range finished {
		e.World.Remove(entity)
	}
}

// frameDelta falls back to the fixed tick before the clock first runs.
func frameDelta(clock *components.ClockData) float32 {
	if clock.Delta > 0 {
		return clock.Delta
	}
	return 1 / float32(cfg.C.TPS)
}

// DrawFade covers the screen with the scene's sky color at the fade alpha.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		fade := components.Fade.Get(entry)
		if fade.Alpha <= 0 {
			return
		}
		sky := cfg.Scene.SkyColor
		a := min(fade.Alpha, 1)
		c := color.RGBA{
			R: uint8(float32(sky.R) * a),
			G: uint8(float32(sky.G) * a),
			B: uint8(float32(sky.B) * a),
			A: uint8(255 * a),
		}
		vector.FillRect(screen, 0, 0,
			float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
			c, false)
	})
}
