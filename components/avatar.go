package components

import (
	"github.com/automoto/meadow/assets"
	"github.com/automoto/meadow/assets/animations"
	"github.com/automoto/meadow/shared/followcam"
	"github.com/automoto/meadow/shared/gamemath"
	"github.com/yohamta/donburi"
)

// VariantData is one of the avatar's two models with its own mixer.
type VariantData struct {
	Model   assets.Model
	Mixer   *animations.Mixer
	Visible bool
}

type AvatarData struct {
	Pose   followcam.Pose
	Moving bool
	Jump   gamemath.Jump
	Scale  float32

	Variants [assets.VariantCount]VariantData
}

// SetMoving shows the run variant while moving and the idle one otherwise.
func (a *AvatarData) SetMoving(moving bool) {
	a.Moving = moving
	a.Variants[assets.VariantIdle].Visible = !moving
	a.Variants[assets.VariantRun].Visible = moving
}

// Visible returns the variant currently shown.
func (a *AvatarData) Visible() assets.Variant {
	if a.Variants[assets.VariantRun].Visible {
		return assets.VariantRun
	}
	return assets.VariantIdle
}

var Avatar = donburi.NewComponentType[AvatarData]()
