package systems

import (
	"github.com/automoto/meadow/components"
	"github.com/automoto/meadow/config"
	"github.com/automoto/meadow/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLook turns the camera rig by this tick's pointer delta. Runs before
// UpdateAvatar so movement uses the new yaw.
func UpdateLook(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)
	camera.Controller.Look(input.DeltaX, input.DeltaY, input.Captured)
}

// UpdateCamera trails the avatar and refreshes the projection.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	avatarEntry, ok := tags.Avatar.First(e.World)
	if !ok {
		return // no avatar yet, skip camera update
	}
	avatar := components.Avatar.Get(avatarEntry)
	clock := GetOrCreateClock(e)

	updateIntro(camera, clock.Delta)

	ctrl := camera.Controller
	ctrl.Update(avatar.Pose, clock.Delta)

	syncView(camera)
}

// updateIntro scales the follow offset down from the intro distance.
func updateIntro(camera *components.CameraData, delta float32) {
	if camera.Intro == nil {
		return
	}
	scale, done := camera.Intro.Update(delta)
	if done {
		scale = 1
		camera.Intro = nil
	}
	camera.Controller.Settings.Offset = config.Camera.Offset.MulScalar(scale)
}

// syncView copies the controller state into the projection camera.
func syncView(camera *components.CameraData) {
	v := camera.View
	v.Eye = camera.Controller.Current
	v.Target = camera.Controller.LookAt
	v.FOV = config.Camera.FOV
	v.Width, v.Height = config.C.Width, config.C.Height
	v.Update()
}
