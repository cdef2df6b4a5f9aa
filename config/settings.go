package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains the pause menu's adjustable values
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	// Multipliers applied to Camera.Sensitivity
	SensitivitySteps        []float32
	DefaultSensitivityIndex int
	MenuOptions             []string
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex:  0,
		SensitivitySteps:        []float32{0.5, 0.75, 1, 1.5, 2},
		DefaultSensitivityIndex: 2,
		MenuOptions:             []string{"Resume", "Sensitivity", "Invert Y", "Fullscreen", "Exit"},
	}
}

// Sensitivity returns the look sensitivity at step i, clamped to the steps.
func (s *SettingsMenuConfig) Sensitivity(i int) float32 {
	if len(s.SensitivitySteps) == 0 {
		return Camera.Sensitivity
	}
	i = max(0, min(i, len(s.SensitivitySteps)-1))
	return Camera.Sensitivity * s.SensitivitySteps[i]
}
