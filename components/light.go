package components

import (
	"cogentcore.org/core/math32"
	"github.com/yohamta/donburi"
)

// LightData is a directional light plus an ambient term.
type LightData struct {
	Direction math32.Vector3 // unit vector the light travels along
	Ambient   float32
	Intensity float32
}

var Light = donburi.NewComponentType[LightData]()

// GroundData is the checkerboard plane the scene stands on.
type GroundData struct {
	Y     float32
	Size  float32
	Tiles int
}

var Ground = donburi.NewComponentType[GroundData]()
