package components

import (
	"github.com/automoto/meadow/shared/followcam"
	"github.com/automoto/meadow/shared/view"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Controller *followcam.Controller
	View       *view.Camera

	// Intro dollies the offset in from afar after the scene loads. Nil once
	// finished.
	Intro *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
