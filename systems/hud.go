package systems

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames; the HUD rebuilds its lines every draw.
var hudLines []string

// UpdateHUD toggles the debug HUD and the bounds overlay.
func UpdateHUD(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings := GetOrCreateSettings(e)
		settings.ShowHUD = !settings.ShowHUD
		SaveCurrentSettings(settings)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		showBounds = !showBounds
	}
}

// DrawHUD renders frame statistics in the top-left corner and the capture
// hint at the bottom of the screen.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	drawCaptureHint(e, screen)

	if !GetOrCreateSettings(e).ShowHUD {
		return
	}

	hudLines = collectHUDLines(e, hudLines[:0])

	face := fonts.Mono.Get()
	lineGap := cfg.HUD.LineGap
	margin := cfg.HUD.Margin
	width := float32(0)
	for _, l := range hudLines {
		width = math32.Max(width, float32(text.BoundString(face, l).Dx()))
	}

	vector.FillRect(screen,
		float32(margin-4), float32(margin-4),
		width+8, float32(float64(len(hudLines))*lineGap+8),
		cfg.HUD.BgColor, false)

	for i, l := range hudLines {
		y := int(margin + float64(i+1)*lineGap - 3)
		text.Draw(screen, l, face, int(margin), y, cfg.HUD.TextColor)
	}
}

func collectHUDLines(e *ecs.ECS, lines []string) []string {
	lines = append(lines, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))

	if avatar, ok := GetAvatar(e); ok {
		p := avatar.Pose.Position
		lines = append(lines,
			fmt.Sprintf("pos %.2f %.2f %.2f", p.X, p.Y, p.Z),
			fmt.Sprintf("variant %s  airborne %t", avatar.Visible(), avatar.Jump.Airborne),
		)
	}
	if entry, ok := components.Camera.First(e.World); ok {
		ctrl := components.Camera.Get(entry).Controller
		lines = append(lines, fmt.Sprintf("yaw %.1f  pitch %.1f",
			math32.RadToDeg(ctrl.Orientation.Yaw), math32.RadToDeg(ctrl.Orientation.Pitch)))
	}
	components.Field.Each(e.World, func(entry *donburi.Entry) {
		f := components.Field.Get(entry)
		lines = append(lines, fmt.Sprintf("blades %d/%d  uploads %d  pass %d",
			lastStats.Blades, f.Field.Len(), f.Uploads, f.Field.Version()))
	})
	lines = append(lines, fmt.Sprintf("tris %d  batches %d", lastStats.Triangles, lastStats.Batches))

	input := getOrCreateInput(e)
	lines = append(lines, fmt.Sprintf("captured %t", input.Captured))
	if entry, ok := components.Tunables.First(e.World); ok {
		lines = append(lines, fmt.Sprintf("tunables reloads %d", components.Tunables.Get(entry).Reloads))
	}
	return lines
}

func drawCaptureHint(e *ecs.ECS, screen *ebiten.Image) {
	if getOrCreateInput(e).Captured || GetOrCreatePause(e).IsPaused {
		return
	}
	hint := "Click to look around   WASD: Move   Space: Jump   Esc: Pause"
	face := fonts.Small.Get()
	w := text.BoundString(face, hint).Dx()
	x := (screen.Bounds().Dx() - w) / 2
	text.Draw(screen, hint, face, x, screen.Bounds().Dy()-12, cfg.HUD.TextColor)
}
