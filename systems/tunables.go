package systems

import (
	"log"

	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTunables reapplies the tunables file after it changes on disk.
// Runs outside the pause check so edits land while paused.
func UpdateTunables(e *ecs.ECS) {
	entry, ok := components.Tunables.First(e.World)
	if !ok {
		return
	}
	t := components.Tunables.Get(entry)
	if t.Watcher == nil {
		return
	}

	select {
	case err := <-t.Watcher.Errors:
		log.Printf("Warning: tunables watcher: %v", err)
	default:
	}

	if !t.Watcher.Poll() {
		return
	}
	if !cfg.LoadOverrides(t.Path) {
		return
	}
	t.Reloads++
	log.Printf("Reloaded tunables from %s", t.Path)

	ReloadControllerSettings(e)
	reloadAvatarPhysics(e)
	components.Field.Each(e.World, func(entry *donburi.Entry) {
		components.Field.Get(entry).Field.SetWindStrength(cfg.Field.WindStrength)
	})
}

// ReloadControllerSettings rebuilds the follow camera settings from config
// and layers the viewer settings back on. A running intro keeps its offset.
func ReloadControllerSettings(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	offset := camera.Controller.Settings.Offset
	camera.Controller.Settings = cfg.FollowSettings()
	if camera.Intro != nil {
		camera.Controller.Settings.Offset = offset
	}
	camera.View.FOV = cfg.Camera.FOV
	ApplySettings(e)
}

func reloadAvatarPhysics(e *ecs.ECS) {
	avatar, ok := GetAvatar(e)
	if !ok {
		return
	}
	avatar.Jump.Speed = cfg.Avatar.JumpSpeed
	avatar.Jump.Gravity = cfg.Avatar.Gravity
}
