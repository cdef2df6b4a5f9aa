package systems

import (
	"fmt"
	"os"

	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
			ReleasePointer(input)
		}
	}

	// Only process menu input while paused
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	settings := GetOrCreateSettings(ecs)
	changed := false

	// Left/right adjust the value of the selected row
	dir := 0
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		dir = -1
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		dir = 1
	}
	if dir != 0 {
		switch pause.SelectedOption {
		case components.MenuSensitivity:
			changed = adjustSensitivity(settings, dir)
		case components.MenuInvertY:
			settings.InvertY = !settings.InvertY
			changed = true
		case components.MenuFullscreen:
			setFullscreen(settings, !settings.Fullscreen)
			changed = true
		}
	}

	// Handle selection
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuSensitivity:
			// Select cycles through the steps
			if !adjustSensitivity(settings, 1) {
				settings.SensitivityIndex = 0
			}
			changed = true
		case components.MenuInvertY:
			settings.InvertY = !settings.InvertY
			changed = true
		case components.MenuFullscreen:
			setFullscreen(settings, !settings.Fullscreen)
			changed = true
		case components.MenuExit:
			os.Exit(0)
		}
	}

	if changed {
		ApplySettings(ecs)
		SaveCurrentSettings(settings)
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	// Calculate menu positioning
	menuOptions := cfg.SettingsMenu.MenuOptions
	itemStep := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	totalMenuHeight := float64(len(menuOptions)) * itemStep
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()
	settings := GetOrCreateSettings(ecs)

	for i, option := range menuOptions {
		y := startY + float64(i)*itemStep

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		label := option
		if value := optionValue(components.PauseMenuOption(i), settings); value != "" {
			label = fmt.Sprintf("%s: < %s >", option, value)
		}

		textWidth := text.BoundString(fontFace, label).Dx()
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := text.BoundString(hintFont, hint).Dx()
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// optionValue returns the current value shown beside a menu row, or "".
func optionValue(opt components.PauseMenuOption, s *components.SettingsData) string {
	switch opt {
	case components.MenuSensitivity:
		return fmt.Sprintf("%.2fx", cfg.SettingsMenu.SensitivitySteps[s.SensitivityIndex])
	case components.MenuInvertY:
		return onOff(s.InvertY)
	case components.MenuFullscreen:
		return onOff(s.Fullscreen)
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate/Adjust   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate/Adjust   A: Select   Start: Resume"
	}
	return "Arrows: Navigate/Adjust   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
