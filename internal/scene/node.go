package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind classifies a placed object.
type Kind int

const (
	KindPart Kind = iota
	KindGround
	KindRoad
	KindBuilding
	KindTree
	KindCar
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindRoad:
		return "road"
	case KindBuilding:
		return "building"
	case KindTree:
		return "tree"
	case KindCar:
		return "car"
	}
	return "part"
}

// Mesh pairs a geometry with its material.
type Mesh struct {
	Geometry Geometry
	Material Material
}

// Node is a placeable object: either a mesh, a group of child nodes, or both.
// Rotation holds XYZ Euler angles in radians.
type Node struct {
	Name     string
	Kind     Kind
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Mesh     *Mesh

	children []*Node
}

// NewMesh creates a node drawing geometry g with material m.
func NewMesh(g Geometry, m Material) *Node {
	return &Node{Mesh: &Mesh{Geometry: g, Material: m}}
}

// NewGroup creates an empty node that only holds children.
func NewGroup() *Node { return &Node{} }

// Add appends children to n.
func (n *Node) Add(children ...*Node) {
	n.children = append(n.children, children...)
}

// Children returns the immediate descendants of n.
func (n *Node) Children() []*Node { return n.children }

// Local returns the local transform: translation, then X, Y and Z rotations.
func (n *Node) Local() mgl64.Mat4 {
	m := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	if n.Rotation.X() != 0 {
		m = m.Mul4(mgl64.HomogRotate3DX(n.Rotation.X()))
	}
	if n.Rotation.Y() != 0 {
		m = m.Mul4(mgl64.HomogRotate3DY(n.Rotation.Y()))
	}
	if n.Rotation.Z() != 0 {
		m = m.Mul4(mgl64.HomogRotate3DZ(n.Rotation.Z()))
	}
	return m
}

// Walk calls f for n and every descendant with its world transform.
func (n *Node) Walk(parent mgl64.Mat4, f func(n *Node, world mgl64.Mat4)) {
	world := parent.Mul4(n.Local())
	f(n, world)
	for _, c := range n.children {
		c.Walk(world, f)
	}
}

// Bounds returns the axis-aligned box enclosing every mesh under n,
// expressed in n's parent space. ok is false when n holds no mesh.
func (n *Node) Bounds() (lo, hi mgl64.Vec3, ok bool) {
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	n.Walk(mgl64.Ident4(), func(c *Node, world mgl64.Mat4) {
		if c.Mesh == nil {
			return
		}
		glo, ghi := c.Mesh.Geometry.Bounds()
		for i := 0; i < 8; i++ {
			p := mgl64.Vec3{glo.X(), glo.Y(), glo.Z()}
			if i&1 != 0 {
				p[0] = ghi.X()
			}
			if i&2 != 0 {
				p[1] = ghi.Y()
			}
			if i&4 != 0 {
				p[2] = ghi.Z()
			}
			w := mgl64.TransformCoordinate(p, world)
			for k := 0; k < 3; k++ {
				lo[k] = math.Min(lo[k], w[k])
				hi[k] = math.Max(hi[k], w[k])
			}
		}
		ok = true
	})
	return lo, hi, ok
}
