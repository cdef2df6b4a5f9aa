// Package followcam drives a third-person avatar and the camera that trails it.
//
// The controller keeps two pieces of state: the look orientation (yaw/pitch),
// changed only by pointer deltas while input capture is engaged, and the
// smoothed camera position. Avatar pose is owned by the caller and passed in.
package followcam

import (
	"cogentcore.org/core/math32"
)

// Direction indexes the directional inputs the controller reads.
type Direction int

const (
	Forward Direction = iota
	Back
	Left
	Right
	Jump
	DirectionCount // Must be last - used for array sizing
)

// Directions holds the held state of every direction for one tick.
type Directions [DirectionCount]bool

// Any reports whether any planar direction is held.
func (d Directions) Any() bool {
	return d[Forward] || d[Back] || d[Left] || d[Right]
}

// Settings are the tunables of the controller.
type Settings struct {
	MoveSpeed     float32 // world units per second
	RotationSpeed float32 // slerp rate per second for avatar facing
	Sensitivity   float32 // horizontal radians per pointer pixel
	InvertY       bool

	MinPitch float32
	MaxPitch float32

	GroundY         float32
	Offset          math32.Vector3 // camera offset in orientation space
	GroundClearance float32        // min camera height above GroundY
	LookHeight      float32        // look target height above the avatar origin
	LookClearance   float32        // min look target height above GroundY
	Smoothing       float32        // lerp factor per second
}

// VerticalSensitivityScale makes vertical look less sensitive than horizontal.
const VerticalSensitivityScale = 0.7

// DefaultSettings returns the stock follow camera tuning.
func DefaultSettings() Settings {
	return Settings{
		MoveSpeed:       5,
		RotationSpeed:   10,
		Sensitivity:     0.002,
		MinPitch:        -math32.Pi / 3.5,
		MaxPitch:        math32.Pi / 6,
		GroundY:         0,
		Offset:          math32.Vec3(0, 1.5, 4),
		GroundClearance: 0.3,
		LookHeight:      0.8,
		LookClearance:   0.5,
		Smoothing:       10,
	}
}

// Orientation is the look direction of the camera rig.
// Yaw is unbounded; only its sine and cosine are consumed.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// Quat returns the rotation with pitch applied about the local X axis,
// then yaw about world Y.
func (o Orientation) Quat() math32.Quat {
	yaw := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), o.Yaw)
	pitch := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), o.Pitch)
	return yaw.Mul(pitch)
}

// Pose is the avatar transform the controller moves.
type Pose struct {
	Position    math32.Vector3
	Orientation math32.Quat
}

// NewPose returns a pose at position facing +Z.
func NewPose(position math32.Vector3) Pose {
	return Pose{Position: position, Orientation: math32.NewQuat(0, 0, 0, 1)}
}

// Controller translates pointer and direction input into avatar motion and a
// smoothed camera transform.
type Controller struct {
	Settings    Settings
	Orientation Orientation

	// Current is the smoothed camera position. It only snaps in Snap.
	Current math32.Vector3
	// Ideal is the clamped target of the last Update.
	Ideal math32.Vector3
	// LookAt is the point the camera faces after the last Update.
	LookAt math32.Vector3
}

// New returns a controller with the camera at the origin.
func New(s Settings) *Controller {
	return &Controller{Settings: s}
}

// Look applies a pointer delta. Deltas are ignored unless capture is active.
func (c *Controller) Look(dx, dy float32, captured bool) {
	if !captured {
		return
	}
	sh := c.Settings.Sensitivity
	sv := sh * VerticalSensitivityScale
	if c.Settings.InvertY {
		dy = -dy
	}
	c.Orientation.Yaw -= dx * sh
	c.Orientation.Pitch = math32.Clamp(c.Orientation.Pitch-dy*sv, c.Settings.MinPitch, c.Settings.MaxPitch)
}

// Basis returns the planar camera forward and right unit vectors.
func (c *Controller) Basis() (forward, right math32.Vector3) {
	s, co := math32.Sincos(c.Orientation.Yaw)
	forward = math32.Vec3(-s, 0, -co)
	right = math32.Vec3(co, 0, -s)
	return forward, right
}

// Heading returns the planar movement direction for dirs before normalizing.
// Opposite directions cancel.
func (c *Controller) Heading(dirs Directions) math32.Vector3 {
	forward, right := c.Basis()
	var dir math32.Vector3
	if dirs[Forward] {
		dir = dir.Add(forward)
	}
	if dirs[Back] {
		dir = dir.Sub(forward)
	}
	if dirs[Right] {
		dir = dir.Add(right)
	}
	if dirs[Left] {
		dir = dir.Sub(right)
	}
	return dir
}

// headingEpsilon treats float residue from cancelling directions as no input.
const headingEpsilon = 1e-6

// Move advances the avatar for one tick and reports whether it moved.
// When the summed direction is zero the pose is left untouched.
func (c *Controller) Move(pose *Pose, dirs Directions, delta float32) bool {
	dir := c.Heading(dirs)
	if dir.Length() < headingEpsilon {
		return false
	}
	dir = dir.Normal()

	pose.Position = pose.Position.Add(dir.MulScalar(c.Settings.MoveSpeed * delta))

	target := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Atan2(dir.X, dir.Z))
	pose.Orientation.Slerp(target, math32.Min(c.Settings.RotationSpeed*delta, 1))
	return true
}

// IdealPosition returns the clamped camera target for an avatar at position.
func (c *Controller) IdealPosition(position math32.Vector3) math32.Vector3 {
	ideal := c.Settings.Offset.MulQuat(c.Orientation.Quat()).Add(position)
	ideal.Y = math32.Max(c.Settings.GroundY+c.Settings.GroundClearance, ideal.Y)
	return ideal
}

// LookTarget returns the point the camera faces for an avatar at position.
func (c *Controller) LookTarget(position math32.Vector3) math32.Vector3 {
	y := math32.Max(position.Y+c.Settings.LookHeight, c.Settings.GroundY+c.Settings.LookClearance)
	return math32.Vec3(position.X, y, position.Z)
}

// Update moves the camera toward the ideal offset behind pose.
// The lerp factor is delta*Smoothing capped at 1, so long frames snap.
func (c *Controller) Update(pose Pose, delta float32) {
	c.Ideal = c.IdealPosition(pose.Position)
	alpha := math32.Clamp(delta*c.Settings.Smoothing, 0, 1)
	c.Current = c.Current.Lerp(c.Ideal, alpha)
	c.LookAt = c.LookTarget(pose.Position)
}

// Snap places the camera on its ideal position without smoothing.
func (c *Controller) Snap(pose Pose) {
	c.Ideal = c.IdealPosition(pose.Position)
	c.Current = c.Ideal
	c.LookAt = c.LookTarget(pose.Position)
}
