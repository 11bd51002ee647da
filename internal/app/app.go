// Package app wires the world, the camera and the cinematic controller to a
// drawing surface and exposes the per-frame and resize entry points used by
// every host loop.
package app

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"polycity/internal/cinematic"
	"polycity/internal/city"
	"polycity/internal/config"
	"polycity/internal/scene"
)

var (
	skyColor    = scene.Hex(0x87CEEB)
	groundColor = scene.Hex(0x3A5F0B)
	white       = colorful.Color{R: 1, G: 1, B: 1}
)

// Surface is whatever a frame is drawn onto.
type Surface interface {
	SetSize(width, height int)
	Draw(w *scene.World, cam *scene.Camera)
}

// App is the single owner of all mutable state: the world, the camera and
// the controller's time accumulator. Only the host loop calls into it.
type App struct {
	World      *scene.World
	Camera     *scene.Camera
	Controller *cinematic.Controller
	Layout     city.Layout

	surface Surface
	width   int
	height  int
	frames  int
}

// Bootstrap creates the world with sky, lights and ground, and the camera.
func Bootstrap(cfg config.Config) (*scene.World, *scene.Camera) {
	w := scene.NewWorld()
	w.Background = skyColor
	w.Ambient = scene.AmbientLight{Color: white, Intensity: 0.5}
	w.Sun = scene.DirectionalLight{Color: white, Intensity: 0.8, Position: mgl64.Vec3{50, 200, 100}}

	size := cfg.City.GroundSize
	ground := scene.NewMesh(
		scene.Plane{Width: size, Height: size},
		scene.Material{Color: groundColor, Roughness: 0.8, Metalness: 0.2},
	)
	ground.Kind = scene.KindGround
	ground.Name = "ground"
	ground.Rotation = mgl64.Vec3{-math.Pi / 2, 0, 0}
	w.Add(ground)

	cam := scene.NewPerspectiveCamera(cfg.Camera.FovY, 1, cfg.Camera.Near, cfg.Camera.Far)
	cam.Position = mgl64.Vec3{0, 50, 50}
	cam.LookAt(mgl64.Vec3{})
	return w, cam
}

// CityOptions maps the config onto generator options.
func CityOptions(cfg config.Config) city.Options {
	c := cfg.City
	return city.Options{
		GridSize:          c.GridSize,
		Spacing:           c.Spacing,
		BuildingClearance: c.BuildingClearance,
		TreeClearance:     c.TreeClearance,
		TreeDraws:         c.TreeDraws,
		CarDraws:          c.CarDraws,
		ScatterExtent:     c.ScatterExtent,
		RoadWidth:         c.RoadWidth,
		RoadLength:        c.RoadLength,
	}
}

// New bootstraps and populates a world and binds it to s.
// rng drives every random choice of the generator.
func New(cfg config.Config, rng *rand.Rand, s Surface) *App {
	w, cam := Bootstrap(cfg)
	l := city.Populate(w, rng, CityOptions(cfg))
	path := cinematic.Path{
		Radius:          cfg.Camera.Radius,
		BaseHeight:      cfg.Camera.BaseHeight,
		HeightVariation: cfg.Camera.HeightVariation,
	}
	slog.Info("City generated",
		"buildings", l.Buildings, "trees", l.Trees, "cars", l.Cars, "roads", l.Roads)
	return &App{
		World:      w,
		Camera:     cam,
		Controller: cinematic.New(path, cfg.Camera.Step),
		Layout:     l,
		surface:    s,
	}
}

// Frame advances the camera one step and draws.
func (a *App) Frame() {
	a.Controller.Advance(a.Camera)
	a.surface.Draw(a.World, a.Camera)
	a.frames++
}

// Frames returns the number of frames drawn so far.
func (a *App) Frames() int { return a.frames }

// Resize sets the camera aspect to w/h and the surface to w x h.
// Non-positive sizes are ignored.
func (a *App) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a.width, a.height = w, h
	a.Camera.SetAspect(float64(w) / float64(h))
	a.surface.SetSize(w, h)
	slog.Debug("Surface resized", "width", w, "height", h)
}

// Size returns the surface size last passed to Resize.
func (a *App) Size() (w, h int) { return a.width, a.height }
