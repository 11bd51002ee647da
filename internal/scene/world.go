// Package scene holds the world container, placeable nodes, lights and
// the perspective camera used by every renderer.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color     colorful.Color
	Intensity float64
}

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Color     colorful.Color
	Intensity float64
	Position  mgl64.Vec3
}

// Direction returns the unit vector pointing from the origin towards the light.
func (l DirectionalLight) Direction() mgl64.Vec3 {
	if l.Position.Len() == 0 {
		return mgl64.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// World is the root container. It owns every node added to it.
type World struct {
	Background colorful.Color
	Ambient    AmbientLight
	Sun        DirectionalLight

	nodes []*Node
}

// NewWorld creates an empty world with a white background and no lights.
func NewWorld() *World {
	return &World{Background: colorful.Color{R: 1, G: 1, B: 1}}
}

// Add places nodes in the world.
func (w *World) Add(nodes ...*Node) {
	w.nodes = append(w.nodes, nodes...)
}

// Nodes returns the top-level nodes in insertion order.
func (w *World) Nodes() []*Node { return w.nodes }

// Count returns the number of top-level nodes of kind k.
func (w *World) Count(k Kind) int {
	var n int
	for _, x := range w.nodes {
		if x.Kind == k {
			n++
		}
	}
	return n
}
