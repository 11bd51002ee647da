package cinematic_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"polycity/internal/cinematic"
	"polycity/internal/scene"
)

func TestPositionAt(t *testing.T) {
	p := cinematic.DefaultPath()
	t.Run("should keep a horizontal distance of 50 and a height within 10..50", func(t *testing.T) {
		for i := 0; i < 2000; i++ {
			tm := float64(i) * 0.0137
			pos := p.PositionAt(tm)
			assert.InDelta(t, 50, math.Hypot(pos.X(), pos.Z()), 1e-9)
			assert.GreaterOrEqual(t, pos.Y(), 10.0)
			assert.LessOrEqual(t, pos.Y(), 50.0)
		}
	})
	t.Run("should start on the +X axis at base height", func(t *testing.T) {
		assert.Equal(t, mgl64.Vec3{50, 30, 0}, p.PositionAt(0))
	})
	t.Run("should reach the top of the bob at a quarter of pi", func(t *testing.T) {
		assert.InDelta(t, 50, p.PositionAt(math.Pi/4).Y(), 1e-9)
	})
}

func TestController(t *testing.T) {
	c := cinematic.New(cinematic.DefaultPath(), cinematic.DefaultStep)
	cam := scene.NewPerspectiveCamera(75, 1, 0.1, 1000)

	t.Run("should advance time by one step per frame", func(t *testing.T) {
		c.Advance(cam)
		c.Advance(cam)
		c.Advance(cam)
		assert.InDelta(t, 3*cinematic.DefaultStep, c.Time(), 1e-15)
	})
	t.Run("should place the camera on the path facing the origin", func(t *testing.T) {
		c.Advance(cam)
		want := c.Path().PositionAt(c.Time())
		assert.Equal(t, want, cam.Position)
		assert.Equal(t, mgl64.Vec3{}, cam.Target)
	})
}
