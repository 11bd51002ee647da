package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polycity/internal/scene"
)

var red = colorful.Color{R: 1}

// testWorld is a single unlit red cube at the origin seen from above and behind.
func testWorld() (*scene.World, *scene.Camera) {
	w := scene.NewWorld()
	w.Background = scene.Hex(0x87CEEB)
	w.Ambient = scene.AmbientLight{Color: colorful.Color{R: 1, G: 1, B: 1}, Intensity: 1}
	w.Add(scene.NewMesh(scene.Box{Width: 20, Height: 20, Depth: 20}, scene.StandardMaterial(red)))
	cam := scene.NewPerspectiveCamera(75, 1, 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 50, 50}
	cam.LookAt(mgl64.Vec3{})
	return w, cam
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("wire")
	require.NoError(t, err)
	assert.Equal(t, Wire, m)
	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Solid, m)
	_, err = ParseMode("ascii")
	assert.Error(t, err)
}

func TestSetSize(t *testing.T) {
	t.Run("should report the exact surface size", func(t *testing.T) {
		r := New(Solid)
		r.SetSize(120, 64)
		w, h := r.Size()
		assert.Equal(t, 120, w)
		assert.Equal(t, 64, h)
	})
	t.Run("should report pixels per cell for each mode", func(t *testing.T) {
		x, y := New(Solid).PixelsPerCell()
		assert.Equal(t, [2]int{1, 2}, [2]int{x, y})
		x, y = New(Wire).PixelsPerCell()
		assert.Equal(t, [2]int{2, 4}, [2]int{x, y})
	})
	t.Run("should render nothing without a surface", func(t *testing.T) {
		r := New(Solid)
		w, cam := testWorld()
		r.Draw(w, cam)
		assert.Empty(t, r.String())
	})
}

func TestDrawSolid(t *testing.T) {
	r := New(Solid)
	r.SetSize(40, 40)
	w, cam := testWorld()
	r.Draw(w, cam)

	t.Run("should paint the cube in the centre", func(t *testing.T) {
		assert.Equal(t, red.Hex(), r.color[20*40+20].Hex())
		assert.Greater(t, r.depth[20*40+20], 0.0)
	})
	t.Run("should leave the sky in the corner", func(t *testing.T) {
		assert.Equal(t, "#87ceeb", r.color[0].Hex())
		assert.Zero(t, r.depth[0])
	})
	t.Run("should emit one row per two pixel rows", func(t *testing.T) {
		rows := strings.Split(r.String(), "\n")
		require.Len(t, rows, 20)
		for _, row := range rows {
			assert.Equal(t, 40, lipgloss.Width(row))
		}
	})
}

func TestDrawWire(t *testing.T) {
	r := New(Wire)
	r.SetSize(80, 80)
	w, cam := testWorld()
	r.Draw(w, cam)
	rows := strings.Split(r.String(), "\n")
	require.Len(t, rows, 20)
	var dots int
	for _, row := range rows {
		assert.Equal(t, 40, lipgloss.Width(row))
		for _, ch := range row {
			if ch >= 0x2801 && ch <= 0x28ff {
				dots++
			}
		}
	}
	assert.Positive(t, dots)
}

func TestDepthOrder(t *testing.T) {
	w, cam := testWorld()
	near := scene.NewMesh(scene.Box{Width: 4, Height: 4, Depth: 4}, scene.StandardMaterial(colorful.Color{G: 1}))
	near.Position = mgl64.Vec3{0, 10, 10}
	w.Add(near)
	r := New(Solid)
	r.SetSize(40, 40)
	r.Draw(w, cam)
	assert.Equal(t, colorful.Color{G: 1}.Hex(), r.color[20*40+20].Hex())
}

func TestClipPolygon(t *testing.T) {
	_, cam := testWorld()
	vp := cam.Projection().Mul4(cam.View())
	t.Run("should keep triangles in front of the camera", func(t *testing.T) {
		out := clipPolygon(vp, []mgl64.Vec3{{-1, 0, 0}, {1, 0, 0}, {0, 0, 1}}, cam.Near)
		assert.Len(t, out, 3)
	})
	t.Run("should cut triangles crossing the near plane", func(t *testing.T) {
		behind := cam.Position.Add(cam.Position.Normalize().Mul(10))
		out := clipPolygon(vp, []mgl64.Vec3{{-1, 0, 0}, {1, 0, 0}, behind}, cam.Near)
		require.Len(t, out, 4)
		for _, v := range out {
			assert.GreaterOrEqual(t, v.W(), cam.Near-1e-9)
		}
	})
	t.Run("should drop triangles behind the camera", func(t *testing.T) {
		b := cam.Position.Mul(1.5)
		out := clipPolygon(vp, []mgl64.Vec3{b, b.Add(mgl64.Vec3{1, 0, 0}), b.Add(mgl64.Vec3{0, 1, 0})}, cam.Near)
		assert.Empty(t, out)
	})
}

func TestClipToRect(t *testing.T) {
	t.Run("should trim a segment crossing the surface", func(t *testing.T) {
		a, b, ok := clipToRect(mgl64.Vec3{-10, 5, 1}, mgl64.Vec3{30, 5, 3}, 20, 10)
		require.True(t, ok)
		assert.InDelta(t, 0, a.X(), 1e-6)
		assert.InDelta(t, 1.5, a.Z(), 1e-6)
		assert.InDelta(t, 20, b.X(), 1e-6)
	})
	t.Run("should reject a segment outside the surface", func(t *testing.T) {
		_, _, ok := clipToRect(mgl64.Vec3{-10, -5, 1}, mgl64.Vec3{30, -1, 1}, 20, 10)
		assert.False(t, ok)
	})
}

func TestShade(t *testing.T) {
	w := scene.NewWorld()
	w.Ambient = scene.AmbientLight{Color: colorful.Color{R: 1, G: 1, B: 1}, Intensity: 0.5}
	w.Sun = scene.DirectionalLight{Color: colorful.Color{R: 1, G: 1, B: 1}, Intensity: 0.8, Position: mgl64.Vec3{0, 1, 0}}
	sh := newShader(w, mgl64.Vec3{100, 0, 0})
	m := scene.StandardMaterial(colorful.Color{R: 0.5, G: 0.5, B: 0.5})
	t.Run("lit face should be brighter than a face turned away", func(t *testing.T) {
		lit := sh.shade(m, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{})
		dark := sh.shade(m, mgl64.Vec3{0, -1, 0}, mgl64.Vec3{})
		assert.InDelta(t, 0.65, lit.R, 1e-9)
		assert.InDelta(t, 0.25, dark.R, 1e-9)
	})
}
