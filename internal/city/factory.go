// Package city builds the low-poly city: factories for single objects and
// the grid and scatter loops deciding where they go.
package city

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"polycity/internal/scene"
)

// Orientation is the direction a road runs in.
type Orientation int

const (
	Horizontal Orientation = iota // along X
	Vertical                      // along Z
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// RoadLift keeps roads just above the ground so the planes never coincide.
const RoadLift = 0.01

var (
	trunkColor  = scene.Hex(0x8B4513)
	leavesColor = scene.Hex(0x228B22)
	wheelColor  = scene.Hex(0x000000)
	roadColor   = scene.Hex(0x333333)
)

var wheelOffsets = [4]mgl64.Vec3{
	{-1, 0.5, -1.5},
	{1, 0.5, -1.5},
	{-1, 0.5, 1.5},
	{1, 0.5, 1.5},
}

// randomColor draws a uniform 24-bit colour.
func randomColor(rng *rand.Rand) colorful.Color {
	return scene.Hex(rng.Uint32N(0xffffff))
}

// Building returns a box resting on the ground centred at (x, z).
func Building(rng *rand.Rand, x, z, width, depth, height float64) *scene.Node {
	n := scene.NewMesh(
		scene.Box{Width: width, Height: height, Depth: depth},
		scene.Material{Color: randomColor(rng), Roughness: 0.7, Metalness: 0.1},
	)
	n.Kind = scene.KindBuilding
	n.Position = mgl64.Vec3{x, height / 2, z}
	return n
}

// Tree returns a trunk with a conical crown at (x, z).
func Tree(x, z float64) *scene.Node {
	trunk := scene.NewMesh(
		scene.Cylinder{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 3, Segments: 6},
		scene.StandardMaterial(trunkColor),
	)
	leaves := scene.NewMesh(scene.Cone(2, 4, 6), scene.StandardMaterial(leavesColor))
	leaves.Position = mgl64.Vec3{0, 4, 0}

	tree := scene.NewGroup()
	tree.Kind = scene.KindTree
	tree.Add(trunk, leaves)
	tree.Position = mgl64.Vec3{x, 0, z}
	return tree
}

// Car returns a body with four wheels at (x, z). The body colour is random.
func Car(rng *rand.Rand, x, z float64) *scene.Node {
	car := scene.NewGroup()
	car.Kind = scene.KindCar

	wheel := scene.Cylinder{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 0.4, Segments: 16}
	for _, off := range wheelOffsets {
		w := scene.NewMesh(wheel, scene.StandardMaterial(wheelColor))
		w.Rotation = mgl64.Vec3{0, 0, math.Pi / 2}
		w.Position = off
		car.Add(w)
	}

	body := scene.NewMesh(
		scene.Box{Width: 2, Height: 1, Depth: 4},
		scene.Material{Color: randomColor(rng), Roughness: 0.5, Metalness: 0.5},
	)
	body.Position = mgl64.Vec3{0, 1, 0}
	car.Add(body)

	car.Position = mgl64.Vec3{x, 0, z}
	return car
}

// Road returns a flat strip centred at (x, z). width is measured across the
// road and length along it.
func Road(x, z, width, length float64, o Orientation) *scene.Node {
	plane := scene.Plane{Width: length, Height: width}
	if o == Vertical {
		plane = scene.Plane{Width: width, Height: length}
	}
	n := scene.NewMesh(plane, scene.Material{Color: roadColor, Roughness: 0.9, Metalness: 0.1})
	n.Kind = scene.KindRoad
	n.Name = "road-" + o.String()
	n.Rotation = mgl64.Vec3{-math.Pi / 2, 0, 0}
	n.Position = mgl64.Vec3{x, RoadLift, z}
	return n
}
