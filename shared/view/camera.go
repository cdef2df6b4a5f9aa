// Package view turns a look-at camera into screen-space projections.
package view

import (
	"cogentcore.org/core/math32"
)

// Camera is a perspective camera looking from Eye at Target.
type Camera struct {
	Eye    math32.Vector3
	Target math32.Vector3
	Up     math32.Vector3

	FOV  float32 // vertical field of view in degrees
	Near float32
	Far  float32

	Width  int
	Height int

	viewProj math32.Matrix4
	view     math32.Matrix4
}

// NewCamera returns a camera with a Y-up axis and the given lens.
func NewCamera(fov, near, far float32) *Camera {
	return &Camera{
		Up:   math32.Vec3(0, 1, 0),
		FOV:  fov,
		Near: near,
		Far:  far,
	}
}

// Aspect returns width over height, or 1 before the first resize.
func (c *Camera) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// Update recomputes the view and projection matrices. Call it once per frame
// after moving the camera.
func (c *Camera) Update() {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(c.Eye, c.Target, c.Up))
	var cview math32.Matrix4
	cview.SetTransform(c.Eye, lookq, math32.Vec3(1, 1, 1))
	if inv, err := cview.Inverse(); err == nil {
		c.view = *inv
	}

	var proj math32.Matrix4
	proj.SetPerspective(c.FOV, c.Aspect(), c.Near, c.Far)
	c.viewProj.MulMatrices(&proj, &c.view)
}

// ViewProjection returns the combined matrix of the last Update.
func (c *Camera) ViewProjection() *math32.Matrix4 {
	return &c.viewProj
}

// Point is a projected vertex in pixels; Depth is view-space distance along
// the viewing axis and grows away from the camera.
type Point struct {
	X, Y  float32
	Depth float32
}

// Project maps a world point to the screen. ok is false when the point is
// behind the near plane.
func (c *Camera) Project(p math32.Vector3) (Point, bool) {
	clip := math32.Vector4FromVector3(p, 1).MulMatrix4(&c.viewProj)
	if clip.W < c.Near {
		return Point{}, false
	}
	ndc := clip.PerspDiv()
	return Point{
		X:     (ndc.X + 1) * 0.5 * float32(c.Width),
		Y:     (1 - ndc.Y) * 0.5 * float32(c.Height),
		Depth: clip.W,
	}, true
}

// Forward returns the unit viewing direction.
func (c *Camera) Forward() math32.Vector3 {
	return c.Target.Sub(c.Eye).Normal()
}
