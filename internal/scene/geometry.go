package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a flat-shaded face in local space.
type Triangle struct {
	V [3]mgl64.Vec3
	N mgl64.Vec3
}

// Edge is a feature line of a geometry, used for wireframe output.
type Edge [2]mgl64.Vec3

// Geometry is a shape centred on its local origin.
type Geometry interface {
	Triangles() []Triangle
	Edges() []Edge
	// Bounds returns the local axis-aligned bounding box.
	Bounds() (lo, hi mgl64.Vec3)
}

// Box is an axis-aligned box. Width runs along X, Height along Y, Depth along Z.
type Box struct {
	Width, Height, Depth float64
}

func (b Box) corners() [8]mgl64.Vec3 {
	x, y, z := b.Width/2, b.Height/2, b.Depth/2
	return [8]mgl64.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
}

func (b Box) Triangles() []Triangle {
	c := b.corners()
	faces := []struct {
		idx [4]int
		n   mgl64.Vec3
	}{
		{[4]int{4, 5, 6, 7}, mgl64.Vec3{0, 0, 1}},
		{[4]int{1, 0, 3, 2}, mgl64.Vec3{0, 0, -1}},
		{[4]int{5, 1, 2, 6}, mgl64.Vec3{1, 0, 0}},
		{[4]int{0, 4, 7, 3}, mgl64.Vec3{-1, 0, 0}},
		{[4]int{7, 6, 2, 3}, mgl64.Vec3{0, 1, 0}},
		{[4]int{0, 1, 5, 4}, mgl64.Vec3{0, -1, 0}},
	}
	tris := make([]Triangle, 0, 12)
	for _, f := range faces {
		q := f.idx
		tris = append(tris,
			Triangle{V: [3]mgl64.Vec3{c[q[0]], c[q[1]], c[q[2]]}, N: f.n},
			Triangle{V: [3]mgl64.Vec3{c[q[0]], c[q[2]], c[q[3]]}, N: f.n},
		)
	}
	return tris
}

func (b Box) Edges() []Edge {
	c := b.corners()
	pairs := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{c[p[0]], c[p[1]]}
	}
	return edges
}

func (b Box) Bounds() (lo, hi mgl64.Vec3) {
	hi = mgl64.Vec3{b.Width / 2, b.Height / 2, b.Depth / 2}
	return hi.Mul(-1), hi
}

// Cylinder is a (possibly truncated) cylinder around the Y axis.
// A zero RadiusTop makes it a cone.
type Cylinder struct {
	RadiusTop    float64
	RadiusBottom float64
	Height       float64
	Segments     int
}

// Cone returns a cylinder whose top collapses to a point.
func Cone(radius, height float64, segments int) Cylinder {
	return Cylinder{RadiusBottom: radius, Height: height, Segments: segments}
}

func (c Cylinder) segments() int {
	if c.Segments < 3 {
		return 3
	}
	return c.Segments
}

// ring returns the points of the top and bottom rings, theta measured from +Z towards +X.
func (c Cylinder) ring() (top, bottom []mgl64.Vec3) {
	n := c.segments()
	h := c.Height / 2
	top = make([]mgl64.Vec3, n)
	bottom = make([]mgl64.Vec3, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		s, co := math.Sincos(a)
		top[i] = mgl64.Vec3{c.RadiusTop * s, h, c.RadiusTop * co}
		bottom[i] = mgl64.Vec3{c.RadiusBottom * s, -h, c.RadiusBottom * co}
	}
	return top, bottom
}

func (c Cylinder) Triangles() []Triangle {
	n := c.segments()
	top, bottom := c.ring()
	h := c.Height / 2
	slope := 0.0
	if c.Height > 0 {
		slope = (c.RadiusBottom - c.RadiusTop) / c.Height
	}
	tris := make([]Triangle, 0, 4*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mid := 2 * math.Pi * (float64(i) + 0.5) / float64(n)
		s, co := math.Sincos(mid)
		side := mgl64.Vec3{s, slope, co}.Normalize()
		tris = append(tris, Triangle{V: [3]mgl64.Vec3{bottom[i], bottom[j], top[j]}, N: side})
		if c.RadiusTop > 0 {
			tris = append(tris, Triangle{V: [3]mgl64.Vec3{bottom[i], top[j], top[i]}, N: side})
			tris = append(tris, Triangle{V: [3]mgl64.Vec3{{0, h, 0}, top[i], top[j]}, N: mgl64.Vec3{0, 1, 0}})
		}
		if c.RadiusBottom > 0 {
			tris = append(tris, Triangle{V: [3]mgl64.Vec3{{0, -h, 0}, bottom[j], bottom[i]}, N: mgl64.Vec3{0, -1, 0}})
		}
	}
	return tris
}

func (c Cylinder) Edges() []Edge {
	n := c.segments()
	top, bottom := c.ring()
	edges := make([]Edge, 0, 3*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, Edge{bottom[i], bottom[j]}, Edge{bottom[i], top[i]})
		if c.RadiusTop > 0 {
			edges = append(edges, Edge{top[i], top[j]})
		}
	}
	return edges
}

func (c Cylinder) Bounds() (lo, hi mgl64.Vec3) {
	r := math.Max(c.RadiusTop, c.RadiusBottom)
	hi = mgl64.Vec3{r, c.Height / 2, r}
	return hi.Mul(-1), hi
}

// Plane is a rectangle in the local XY plane facing +Z.
// Rotate it by -pi/2 around X to lay it on the ground.
type Plane struct {
	Width, Height float64
}

func (p Plane) corners() [4]mgl64.Vec3 {
	x, y := p.Width/2, p.Height/2
	return [4]mgl64.Vec3{{-x, -y, 0}, {x, -y, 0}, {x, y, 0}, {-x, y, 0}}
}

func (p Plane) Triangles() []Triangle {
	c := p.corners()
	n := mgl64.Vec3{0, 0, 1}
	return []Triangle{
		{V: [3]mgl64.Vec3{c[0], c[1], c[2]}, N: n},
		{V: [3]mgl64.Vec3{c[0], c[2], c[3]}, N: n},
	}
}

func (p Plane) Edges() []Edge {
	c := p.corners()
	return []Edge{{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]}}
}

func (p Plane) Bounds() (lo, hi mgl64.Vec3) {
	hi = mgl64.Vec3{p.Width / 2, p.Height / 2, 0}
	return hi.Mul(-1), hi
}
