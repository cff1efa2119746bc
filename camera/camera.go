// Package camera implements the camera collaborator: view/projection matrix
// bookkeeping driven each PreRender phase from the owning entity's world
// transform.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds view and projection state. The PreRender camera system is the
// sole writer of position/orientation; consumers read the matrices after
// Update.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fovDeg float32
	aspect float32
	near   float32
	far    float32

	view           mgl32.Mat4
	projection     mgl32.Mat4
	viewProjection mgl32.Mat4
}

// New creates a camera at the origin looking down -Z with the given
// perspective parameters
func New(fovDeg, aspect, near, far float32) *Camera {
	c := &Camera{
		target: mgl32.Vec3{0, 0, -1},
		up:     mgl32.Vec3{0, 1, 0},
		fovDeg: fovDeg,
		aspect: aspect,
		near:   near,
		far:    far,
	}
	c.Update()
	return c
}

// SetPosition moves the camera eye point
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
}

// LookAt aims the camera at a world-space target
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.target = target
}

// SetPerspective updates the projection parameters
func (c *Camera) SetPerspective(fovDeg, aspect, near, far float32) {
	c.fovDeg = fovDeg
	c.aspect = aspect
	c.near = near
	c.far = far
}

// SetAspect updates only the aspect ratio, e.g. after a resize event
func (c *Camera) SetAspect(aspect float32) {
	c.aspect = aspect
}

// Update recomputes view, projection and their product from current state
func (c *Camera) Update() {
	c.view = mgl32.LookAtV(c.position, c.target, c.up)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fovDeg), c.aspect, c.near, c.far)
	c.viewProjection = c.projection.Mul4(c.view)
}

// Position returns the current eye point
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// View returns the view matrix as of the last Update
func (c *Camera) View() mgl32.Mat4 {
	return c.view
}

// Projection returns the projection matrix as of the last Update
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// ViewProjection returns projection * view as of the last Update
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.viewProjection
}
