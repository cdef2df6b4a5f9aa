package factory

import (
	"github.com/automoto/meadow/archetypes"
	"github.com/automoto/meadow/components"
	cfg "github.com/automoto/meadow/config"
	"github.com/automoto/meadow/shared/followcam"
	"github.com/automoto/meadow/shared/view"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the follow camera snapped behind pose. With intro set,
// the offset starts IntroDistance times farther out and eases in.
func CreateCamera(ecs *ecs.ECS, pose followcam.Pose, intro bool) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	ctrl := followcam.New(cfg.FollowSettings())
	data := &components.CameraData{
		Controller: ctrl,
		View:       view.NewCamera(cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far),
	}
	if intro && cfg.Camera.IntroSeconds > 0 {
		data.Intro = gween.New(cfg.Camera.IntroDistance, 1, cfg.Camera.IntroSeconds, ease.OutCubic)
		ctrl.Settings.Offset = cfg.Camera.Offset.MulScalar(cfg.Camera.IntroDistance)
	}
	ctrl.Snap(pose)

	data.View.Eye = ctrl.Current
	data.View.Target = ctrl.LookAt
	data.View.Width, data.View.Height = cfg.C.Width, cfg.C.Height
	data.View.Update()

	components.Camera.Set(camera, data)
	return camera
}
