package scene

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera. FovY is in degrees.
type Camera struct {
	FovY   float64
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fovY, aspect, near, far float64) *Camera {
	return &Camera{
		FovY:   fovY,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl64.Vec3{0, 0, -1},
		Up:     mgl64.Vec3{0, 1, 0},
	}
}

// LookAt orients the camera towards target.
func (c *Camera) LookAt(target mgl64.Vec3) { c.Target = target }

// SetAspect updates the width/height ratio used by Projection.
// Non-positive ratios are ignored.
func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// View returns the world-to-camera transform.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the camera-to-clip transform.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}
