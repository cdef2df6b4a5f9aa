package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SensitivityIndex int  `json:"sensitivityIndex"`
	InvertY          bool `json:"invertY"`
	Fullscreen       bool `json:"fullscreen"`
	ShowHUD          bool `json:"showHud"`
	ResolutionIndex  int  `json:"resolutionIndex"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "meadow",
	})
	if err != nil {
		return fmt.Errorf("persistence: open: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. Missing storage or a missing item
// yield nil settings and no error.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("persistence: load %s: %w", settingsKey, err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("persistence: parse %s: %w", settingsKey, err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("persistence: encode %s: %w", settingsKey, err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("persistence: save %s: %w", settingsKey, err)
	}
	return nil
}

// SaveCurrentSettings saves the settings component, logging failures.
func SaveCurrentSettings(s *components.SettingsData) {
	startupSettings = *s
	saved := &SavedSettings{
		SensitivityIndex: s.SensitivityIndex,
		InvertY:          s.InvertY,
		Fullscreen:       s.Fullscreen,
		ShowHUD:          s.ShowHUD,
		ResolutionIndex:  s.ResolutionIndex,
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created; the first scene picks the
// values up through GetOrCreateSettings.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	steps := len(cfg.SettingsMenu.SensitivitySteps)
	startupSettings.SensitivityIndex = max(0, min(saved.SensitivityIndex, steps-1))
	startupSettings.InvertY = saved.InvertY
	startupSettings.ShowHUD = saved.ShowHUD
	startupSettings.Fullscreen = saved.Fullscreen

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		startupSettings.ResolutionIndex = saved.ResolutionIndex
		if !saved.Fullscreen {
			res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}
}
