package components

import (
	cfg "github.com/automoto/meadow/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	// Captured is true while the pointer is locked to the window. Look
	// deltas are only produced while it is set.
	Captured bool

	// Pointer motion since the previous tick, in pixels.
	DeltaX, DeltaY float32

	// Last sampled cursor position; valid after the first captured tick.
	CursorX, CursorY int
	cursorValid      bool
}

// Track records a cursor sample and returns the motion since the last one.
// The first sample after Reset yields no motion.
func (in *InputData) Track(x, y int) (dx, dy float32) {
	if in.cursorValid {
		dx = float32(x - in.CursorX)
		dy = float32(y - in.CursorY)
	}
	in.CursorX, in.CursorY = x, y
	in.cursorValid = true
	return dx, dy
}

// ResetCursor forgets the last sample so the next Track reports no motion.
func (in *InputData) ResetCursor() {
	in.cursorValid = false
	in.DeltaX, in.DeltaY = 0, 0
}

var Input = donburi.NewComponentType[InputData]()
