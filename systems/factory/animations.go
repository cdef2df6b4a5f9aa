package factory

import (
	"log"

	"github.com/automoto/meadow/assets"
	"github.com/automoto/meadow/assets/animations"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
)

// GenerateVariants builds both avatar variants, each with its own mixer
// already playing its clip.
func GenerateVariants(palette assets.Palette) [assets.VariantCount]components.VariantData {
	fps := [assets.VariantCount]float32{
		assets.VariantIdle: cfg.Avatar.IdleFPS,
		assets.VariantRun:  cfg.Avatar.RunFPS,
	}

	var variants [assets.VariantCount]components.VariantData
	for v := assets.Variant(0); v < assets.VariantCount; v++ {
		clip := assets.AvatarClip(v, fps[v], cfg.Avatar.ClipFrames)
		mixer := animations.NewMixer(clip)
		if err := mixer.Play(clip.Name); err != nil {
			log.Printf("Warning: Could not play %s clip: %v", clip.Name, err)
		}
		variants[v] = components.VariantData{
			Model: assets.AvatarModel(v, palette),
			Mixer: mixer,
		}
	}
	return variants
}
