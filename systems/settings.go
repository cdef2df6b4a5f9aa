package systems

import (
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// startupSettings seeds the Settings component of the first scene.
var startupSettings = components.SettingsData{
	SensitivityIndex: cfg.SettingsMenu.DefaultSensitivityIndex,
	ResolutionIndex:  cfg.SettingsMenu.DefaultResolutionIndex,
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		s := startupSettings
		s.Fullscreen = ebiten.IsFullscreen()
		s.ShowHUD = s.ShowHUD || cfg.Debug.ShowHUD
		components.Settings.SetValue(ent, s)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// ApplySettings pushes the viewer settings into the follow camera. Call it
// after the settings change or the controller settings are rebuilt.
func ApplySettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	ctrl := components.Camera.Get(cameraEntry).Controller
	ctrl.Settings.Sensitivity = cfg.SettingsMenu.Sensitivity(settings.SensitivityIndex)
	ctrl.Settings.InvertY = settings.InvertY
}

// adjustSensitivity steps the sensitivity index by dir within the steps.
func adjustSensitivity(s *components.SettingsData, dir int) bool {
	next := max(0, min(s.SensitivityIndex+dir, len(cfg.SettingsMenu.SensitivitySteps)-1))
	if next == s.SensitivityIndex {
		return false
	}
	s.SensitivityIndex = next
	return true
}

func setFullscreen(s *components.SettingsData, on bool) {
	s.Fullscreen = on
	ebiten.SetFullscreen(on)
	if !on && s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
