package config

import (
	"fmt"
	"image/color"
	"log"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/shared/followcam"
	"github.com/automoto/meadow/shared/tunables"
)

// FieldConfig contains the grass field configuration
type FieldConfig struct {
	Count        int
	Side         float32 // footprint side length, centered on the origin
	Variation    float32 // width scale band (1 ± Variation/2)
	WindStrength float32
	Seed         uint64

	// Blade geometry in local space before instance scale
	BladeWidth  float32
	BladeHeight float32

	BaseColor color.RGBA
	TipColor  color.RGBA

	// Blades farther than this from the camera are not drawn
	DrawDistance float32
}

// CameraConfig contains follow camera behavior configuration
type CameraConfig struct {
	Sensitivity float32 // radians per pointer pixel (horizontal)
	InvertY     bool
	Smoothing   float32 // lerp factor per second toward the ideal offset

	MinPitch float32 // radians
	MaxPitch float32 // radians

	Offset          math32.Vector3 // offset behind the avatar in orientation space
	GroundClearance float32        // camera never dips closer than this to the ground
	LookHeight      float32        // look target height above the avatar origin
	LookClearance   float32        // look target never dips closer than this to the ground

	// Lens
	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	// Intro dolly from IntroDistance times the offset down to the offset
	IntroDistance float32
	IntroSeconds  float32
}

// AvatarConfig contains avatar movement and model configuration
type AvatarConfig struct {
	MoveSpeed     float32 // units per second
	RotationSpeed float32 // facing slerp rate per second
	JumpSpeed     float32
	Gravity       float32

	Spawn math32.Vector3
	Scale float32 // uniform model scale

	// Collision footprint on the ground plane
	CollisionWidth float32

	BodyColor  color.RGBA
	LimbColor  color.RGBA
	HeadColor  color.RGBA
	IdleFPS    float32
	RunFPS     float32
	ClipFrames int
}

// SceneConfig contains ground plane and boundary configuration
type SceneConfig struct {
	GroundY     float32
	GroundSize  float32 // side length of the drawn ground plane
	GroundTiles int     // ground subdivisions per side
	BoundsSize  float32 // side length of the walkable square

	SkyColor    color.RGBA
	GroundColor color.RGBA
	GroundAlt   color.RGBA // checker tint for alternating tiles
}

// LightConfig contains the directional light
type LightConfig struct {
	Direction math32.Vector3 // direction the light travels
	Ambient   float32        // 0.0-1.0
	Intensity float32
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains the debug HUD configuration
type HUDConfig struct {
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
	BgColor   color.RGBA
}

// LoadingConfig contains loading screen configuration
type LoadingConfig struct {
	FadeSeconds float32
	Title       string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipLoading bool // Skip the loading screen fade
	ShowHUD     bool // Start with the debug HUD visible
	NoCapture   bool // Never capture the pointer (useful under remote desktops)
}

// Global configuration instances
var C *Config
var Field FieldConfig
var Camera CameraConfig
var Avatar AvatarConfig
var Scene SceneConfig
var Light LightConfig
var Pause PauseConfig
var HUD HUDConfig
var Loading LoadingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "meadow",
		TPS:    60,
	}

	Field = FieldConfig{
		Count:        6000,
		Side:         30,
		Variation:    0.4,
		WindStrength: 0.3,
		Seed:         20240611,
		BladeWidth:   0.08,
		BladeHeight:  0.55,
		BaseColor:    color.RGBA{R: 34, G: 92, B: 28, A: 255},
		TipColor:     color.RGBA{R: 140, G: 200, B: 80, A: 255},
		DrawDistance: 24,
	}

	Camera = CameraConfig{
		Sensitivity:     0.002,
		Smoothing:       10,
		MinPitch:        -math32.Pi / 3.5, // ~-51.4 degrees, looking down
		MaxPitch:        math32.Pi / 6,    // 30 degrees, looking up
		Offset:          math32.Vec3(0, 1.5, 4),
		GroundClearance: 0.3,
		LookHeight:      0.8,
		LookClearance:   0.5,
		FOV:             65,
		Near:            0.1,
		Far:             200,
		IntroDistance:   3,
		IntroSeconds:    1.5,
	}

	Avatar = AvatarConfig{
		MoveSpeed:      5,
		RotationSpeed:  10,
		JumpSpeed:      5,
		Gravity:        14,
		Spawn:          math32.Vec3(0, 0, 0),
		Scale:          1,
		CollisionWidth: 0.6,
		BodyColor:      color.RGBA{R: 60, G: 90, B: 170, A: 255},
		LimbColor:      color.RGBA{R: 40, G: 50, B: 70, A: 255},
		HeadColor:      color.RGBA{R: 230, G: 190, B: 150, A: 255},
		IdleFPS:        4,
		RunFPS:         12,
		ClipFrames:     8,
	}

	Scene = SceneConfig{
		GroundY:     0,
		GroundSize:  60,
		GroundTiles: 24,
		BoundsSize:  40,
		SkyColor:    color.RGBA{R: 150, G: 190, B: 235, A: 255},
		GroundColor: color.RGBA{R: 70, G: 110, B: 50, A: 255},
		GroundAlt:   color.RGBA{R: 64, G: 102, B: 46, A: 255},
	}

	Light = LightConfig{
		Direction: math32.Vec3(-0.4, -1, -0.3).Normal(),
		Ambient:   0.45,
		Intensity: 0.75,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    24,
		MenuItemGap:       10,
	}

	HUD = HUDConfig{
		Margin:    10,
		LineGap:   14,
		TextColor: White,
		BgColor:   color.RGBA{R: 0, G: 0, B: 0, A: 140},
	}

	Loading = LoadingConfig{
		FadeSeconds: 0.6,
		Title:       "MEADOW",
	}
}

// FollowSettings assembles the follow camera controller settings from the
// camera, avatar and scene configuration.
func FollowSettings() followcam.Settings {
	return followcam.Settings{
		MoveSpeed:       Avatar.MoveSpeed,
		RotationSpeed:   Avatar.RotationSpeed,
		Sensitivity:     Camera.Sensitivity,
		InvertY:         Camera.InvertY,
		MinPitch:        Camera.MinPitch,
		MaxPitch:        Camera.MaxPitch,
		GroundY:         Scene.GroundY,
		Offset:          Camera.Offset,
		GroundClearance: Camera.GroundClearance,
		LookHeight:      Camera.LookHeight,
		LookClearance:   Camera.LookClearance,
		Smoothing:       Camera.Smoothing,
	}
}

// ApplyOverrides copies present tunables over the defaults. Overrides that
// would leave the pitch range inverted are rejected whole.
func ApplyOverrides(o *tunables.Overrides) error {
	if o == nil {
		return nil
	}
	minPitch, maxPitch := Camera.MinPitch, Camera.MaxPitch
	if o.Camera.MinPitchDeg != nil {
		minPitch = math32.DegToRad(*o.Camera.MinPitchDeg)
	}
	if o.Camera.MaxPitchDeg != nil {
		maxPitch = math32.DegToRad(*o.Camera.MaxPitchDeg)
	}
	if minPitch > maxPitch {
		return fmt.Errorf("config: pitch range inverted: min %.1f° > max %.1f°",
			math32.RadToDeg(minPitch), math32.RadToDeg(maxPitch))
	}

	tunables.Set(&Field.Count, o.Field.Count)
	tunables.Set(&Field.Side, o.Field.Side)
	tunables.Set(&Field.Variation, o.Field.Variation)
	tunables.Set(&Field.WindStrength, o.Field.WindStrength)

	tunables.Set(&Camera.Sensitivity, o.Camera.Sensitivity)
	tunables.Set(&Camera.Smoothing, o.Camera.Smoothing)
	tunables.Set(&Camera.FOV, o.Camera.FOV)
	Camera.MinPitch, Camera.MaxPitch = minPitch, maxPitch

	tunables.Set(&Avatar.MoveSpeed, o.Avatar.MoveSpeed)
	tunables.Set(&Avatar.RotationSpeed, o.Avatar.RotationSpeed)
	tunables.Set(&Avatar.JumpSpeed, o.Avatar.JumpSpeed)
	tunables.Set(&Avatar.Gravity, o.Avatar.Gravity)
	return nil
}

// LoadOverrides reads the tunables file at path and applies it.
// Failures leave the current values in place.
func LoadOverrides(path string) bool {
	o, err := tunables.Load(path)
	if err != nil {
		log.Printf("Warning: Could not load tunables: %v", err)
		return false
	}
	if o == nil {
		return false
	}
	if err := ApplyOverrides(o); err != nil {
		log.Printf("Warning: Could not apply tunables: %v", err)
		return false
	}
	return true
}
