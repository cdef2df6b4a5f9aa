package systems

import (
	"strings"

	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/followcam"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateLook and UpdateAvatar in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	stick := getAnalogStickState(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if stick.left {
		input.Current[cfg.ActionMoveLeft] = true
		input.Current[cfg.ActionMenuLeft] = true
	}
	if stick.right {
		input.Current[cfg.ActionMoveRight] = true
		input.Current[cfg.ActionMenuRight] = true
	}
	if stick.up {
		input.Current[cfg.ActionMoveForward] = true
		input.Current[cfg.ActionMenuUp] = true
	}
	if stick.down {
		input.Current[cfg.ActionMoveBack] = true
		input.Current[cfg.ActionMenuDown] = true
	}
	if stick.used {
		gamepadUsed = true
		activeGamepadID = stick.gamepad
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	updatePointer(ecs, input, stick)
}

// updatePointer engages capture on click and samples the look delta.
func updatePointer(e *ecs.ECS, input *components.InputData, stick analogState) {
	input.DeltaX, input.DeltaY = 0, 0

	// The OS can drop the lock (focus loss); follow it.
	if input.Captured && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		input.Captured = false
		input.ResetCursor()
	}

	if !input.Captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		!GetOrCreatePause(e).IsPaused && !cfg.Debug.NoCapture {
		CapturePointer(input)
	}

	if !input.Captured {
		return
	}

	x, y := ebiten.CursorPosition()
	dx, dy := input.Track(x, y)
	speed := float32(cfg.Input.StickLookSpeed)
	input.DeltaX = dx + float32(stick.lookX)*speed
	input.DeltaY = dy + float32(stick.lookY)*speed
}

// CapturePointer locks the cursor to the window and starts producing deltas.
func CapturePointer(input *components.InputData) {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	input.Captured = true
	input.ResetCursor()
}

// ReleasePointer unlocks the cursor; look deltas stop until the next capture.
func ReleasePointer(input *components.InputData) {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	input.Captured = false
	input.ResetCursor()
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

type analogState struct {
	left, right, up, down bool
	lookX, lookY          float64 // right stick, deadzone applied
	used                  bool
	gamepad               ebiten.GamepadID
}

// getAnalogStickState reads both analog sticks from all gamepads.
func getAnalogStickState(gamepads []ebiten.GamepadID) analogState {
	deadzone := cfg.Input.AnalogDeadzone
	var s analogState

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		lookX := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		lookY := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)

		before := s
		s.left = s.left || horizontal < -deadzone
		s.right = s.right || horizontal > deadzone
		s.up = s.up || vertical < -deadzone
		s.down = s.down || vertical > deadzone
		if lookX < -deadzone || lookX > deadzone {
			s.lookX = lookX
		}
		if lookY < -deadzone || lookY > deadzone {
			s.lookY = lookY
		}
		if s != before {
			s.used = true
			s.gamepad = gpID
		}
	}
	return s
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Directions maps the held movement actions onto the follow camera's
// direction set.
func Directions(input *components.InputData) followcam.Directions {
	var d followcam.Directions
	d[followcam.Forward] = input.Current[cfg.ActionMoveForward]
	d[followcam.Back] = input.Current[cfg.ActionMoveBack]
	d[followcam.Left] = input.Current[cfg.ActionMoveLeft]
	d[followcam.Right] = input.Current[cfg.ActionMoveRight]
	d[followcam.Jump] = input.Current[cfg.ActionJump]
	return d
}
