// Package cinematic drives the camera along a fixed orbit around the origin.
package cinematic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"polycity/internal/scene"
)

// DefaultStep is how far time advances per frame.
const DefaultStep = 0.0005

// Path is a horizontal circle with a vertical bob at twice its angular rate.
type Path struct {
	Radius          float64
	BaseHeight      float64
	HeightVariation float64
}

// DefaultPath returns the stock orbit: radius 50, height 30 +- 20.
func DefaultPath() Path {
	return Path{Radius: 50, BaseHeight: 30, HeightVariation: 20}
}

// PositionAt returns the camera position at time t.
func (p Path) PositionAt(t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Cos(t) * p.Radius,
		p.BaseHeight + math.Sin(t*2)*p.HeightVariation,
		math.Sin(t) * p.Radius,
	}
}

// Controller owns the time accumulator. It never resets or stops.
type Controller struct {
	path Path
	step float64
	time float64
}

// New creates a controller at time zero.
func New(p Path, step float64) *Controller {
	return &Controller{path: p, step: step}
}

// Time returns the accumulated time.
func (c *Controller) Time() float64 { return c.time }

// Path returns the orbit followed by the controller.
func (c *Controller) Path() Path { return c.path }

// Advance steps time forward once and moves cam onto the path, facing the origin.
func (c *Controller) Advance(cam *scene.Camera) {
	c.time += c.step
	cam.Position = c.path.PositionAt(c.time)
	cam.LookAt(mgl64.Vec3{})
}
