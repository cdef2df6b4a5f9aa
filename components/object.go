package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData maps the ground plane into a resolv space. World X maps to space
// X and world Z to space Y, both scaled by Scale and shifted so the world
// origin sits at the space center.
type SpaceData struct {
	*resolv.Space
	Scale  float64
	Origin float64 // space coordinate of world 0
}

// ToSpace converts a world ground position to space coordinates.
func (s *SpaceData) ToSpace(x, z float32) (float64, float64) {
	return float64(x)*s.Scale + s.Origin, float64(z)*s.Scale + s.Origin
}

// ToWorld converts space coordinates to a world ground position.
func (s *SpaceData) ToWorld(x, y float64) (float32, float32) {
	return float32((x - s.Origin) / s.Scale), float32((y - s.Origin) / s.Scale)
}

var Space = donburi.NewComponentType[SpaceData]()
