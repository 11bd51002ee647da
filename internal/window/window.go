// Package window hosts the city flythrough in a native raylib window.
package window

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"polycity/internal/app"
	"polycity/internal/scene"
)

const title = "polycity"

// Surface draws a scene with raylib's immediate mode primitives.
// It must only be used between Open and Close.
type Surface struct {
	width  int
	height int
}

// Open creates a resizable window of w x h pixels and routes raylib's own
// trace output into slog.
func Open(w, h, fps int) *Surface {
	rl.SetTraceLogCallback(func(level int, text string) {
		slog.Debug("raylib", "level", level, "msg", text)
	})
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w), int32(h), title)
	rl.SetTargetFPS(int32(fps))
	return &Surface{width: w, height: h}
}

func (s *Surface) Close() { rl.CloseWindow() }

func (s *Surface) SetSize(w, h int) { s.width, s.height = w, h }

func (s *Surface) Size() (w, h int) { return s.width, s.height }

func (s *Surface) Draw(w *scene.World, cam *scene.Camera) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(w.Background))
	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       float32(cam.FovY),
		Projection: rl.CameraPerspective,
	})
	for _, n := range w.Nodes() {
		drawNode(n)
	}
	rl.EndMode3D()
	rl.DrawFPS(10, 10)
	rl.EndDrawing()
}

func drawNode(n *scene.Node) {
	rl.PushMatrix()
	defer rl.PopMatrix()
	rl.Translatef(float32(n.Position.X()), float32(n.Position.Y()), float32(n.Position.Z()))
	rl.Rotatef(float32(mgl64.RadToDeg(n.Rotation.X())), 1, 0, 0)
	rl.Rotatef(float32(mgl64.RadToDeg(n.Rotation.Y())), 0, 1, 0)
	rl.Rotatef(float32(mgl64.RadToDeg(n.Rotation.Z())), 0, 0, 1)
	if n.Mesh != nil {
		drawMesh(n.Mesh)
	}
	for _, c := range n.Children() {
		drawNode(c)
	}
}

func drawMesh(m *scene.Mesh) {
	fill := toColor(m.Material.Color)
	edge := toColor(m.Material.Color.BlendRgb(colorful.Color{}, 0.4))
	origin := rl.NewVector3(0, 0, 0)
	switch g := m.Geometry.(type) {
	case scene.Box:
		w, h, d := float32(g.Width), float32(g.Height), float32(g.Depth)
		rl.DrawCube(origin, w, h, d, fill)
		rl.DrawCubeWires(origin, w, h, d, edge)
	case scene.Cylinder:
		base := rl.NewVector3(0, float32(-g.Height/2), 0)
		rl.DrawCylinder(base, float32(g.RadiusTop), float32(g.RadiusBottom), float32(g.Height), int32(g.Segments), fill)
		rl.DrawCylinderWires(base, float32(g.RadiusTop), float32(g.RadiusBottom), float32(g.Height), int32(g.Segments), edge)
	case scene.Plane:
		// raylib planes lie in XZ; scene planes lie in XY.
		rl.PushMatrix()
		rl.Rotatef(90, 1, 0, 0)
		rl.DrawPlane(origin, rl.NewVector2(float32(g.Width), float32(g.Height)), fill)
		rl.PopMatrix()
	default:
		slog.Warn("Unsupported geometry", "type", fmt.Sprintf("%T", g))
	}
}

// Run drives a until the window is closed. Resizes are forwarded to a
// before the frame they occur in.
func Run(a *app.App) {
	a.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			a.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		a.Frame()
	}
	slog.Info("Window closed", "frames", a.Frames())
}

func toVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}
