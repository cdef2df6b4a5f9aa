package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the viewer settings edited from the pause menu and
// persisted between runs.
type SettingsData struct {
	SensitivityIndex int // index into config.SettingsMenu.SensitivitySteps
	InvertY          bool
	Fullscreen       bool
	ShowHUD          bool
	ResolutionIndex  int
}

// Settings is the component type for the viewer settings
var Settings = donburi.NewComponentType[SettingsData]()
