// Package render rasterizes a scene into terminal cells.
//
// Solid mode packs two vertical pixels into each cell with the upper half
// block, foreground for the top pixel and background for the bottom one.
// Wire mode draws depth-tested feature edges on a 2x4 braille micro-grid.
package render

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"polycity/internal/scene"
)

type Mode int

const (
	Solid Mode = iota
	Wire
)

func (m Mode) String() string {
	if m == Wire {
		return "wire"
	}
	return "solid"
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "solid", "":
		return Solid, nil
	case "wire":
		return Wire, nil
	}
	return Solid, fmt.Errorf("unknown render mode %q", s)
}

// Renderer is a software rasterizer with a colour buffer and a depth buffer
// holding 1/w per pixel, zero meaning empty.
type Renderer struct {
	mode   Mode
	width  int
	height int
	color  []colorful.Color
	depth  []float64
	frame  string
	styles map[[2]string]lipgloss.Style
}

// New creates a renderer with an empty surface.
func New(mode Mode) *Renderer {
	return &Renderer{mode: mode, styles: make(map[[2]string]lipgloss.Style)}
}

// Mode returns the output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// PixelsPerCell returns how many surface pixels one terminal cell holds.
func (r *Renderer) PixelsPerCell() (x, y int) {
	if r.mode == Wire {
		return 2, 4
	}
	return 1, 2
}

// SetSize resizes the surface to w x h pixels.
func (r *Renderer) SetSize(w, h int) {
	if w < 0 || h < 0 {
		return
	}
	r.width, r.height = w, h
	r.color = make([]colorful.Color, w*h)
	r.depth = make([]float64, w*h)
	r.frame = ""
}

// Size returns the surface size in pixels.
func (r *Renderer) Size() (w, h int) { return r.width, r.height }

// String returns the last drawn frame.
func (r *Renderer) String() string { return r.frame }

// Draw renders w as seen from cam.
func (r *Renderer) Draw(w *scene.World, cam *scene.Camera) {
	if r.width == 0 || r.height == 0 {
		r.frame = ""
		return
	}
	for i := range r.color {
		r.color[i] = w.Background
		r.depth[i] = 0
	}
	vp := cam.Projection().Mul4(cam.View())
	sh := newShader(w, cam.Position)
	var lines []line

	for _, n := range w.Nodes() {
		n.Walk(mgl64.Ident4(), func(node *scene.Node, world mgl64.Mat4) {
			if node.Mesh == nil {
				return
			}
			mat := node.Mesh.Material
			rot := world.Mat3()
			for _, tr := range node.Mesh.Geometry.Triangles() {
				var p [3]mgl64.Vec3
				for i := range p {
					p[i] = mgl64.TransformCoordinate(tr.V[i], world)
				}
				nrm := rot.Mul3x1(tr.N).Normalize()
				if nrm.Dot(p[0].Sub(cam.Position)) >= 0 {
					continue
				}
				col := sh.shade(mat, nrm, p[0])
				r.fillPolygon(clipPolygon(vp, p[:], cam.Near), col)
			}
			if r.mode != Wire {
				return
			}
			ink := sh.ink(mat)
			for _, e := range node.Mesh.Geometry.Edges() {
				a := mgl64.TransformCoordinate(e[0], world)
				b := mgl64.TransformCoordinate(e[1], world)
				if s, ok := clipSegment(vp, a, b, cam.Near); ok {
					lines = append(lines, line{a: r.toScreen(s[0]), b: r.toScreen(s[1]), ink: ink})
				}
			}
		})
	}

	if r.mode == Wire {
		r.frame = r.encodeWire(lines)
		return
	}
	r.frame = r.encodeSolid()
}

// toScreen maps a clip-space point to pixel coordinates, keeping 1/w as Z.
func (r *Renderer) toScreen(c mgl64.Vec4) mgl64.Vec3 {
	inv := 1 / c.W()
	return mgl64.Vec3{
		(c.X()*inv + 1) * 0.5 * float64(r.width),
		(1 - c.Y()*inv) * 0.5 * float64(r.height),
		inv,
	}
}

type shader struct {
	ambient colorful.Color
	sun     colorful.Color
	dir     mgl64.Vec3
	eye     mgl64.Vec3
}

func newShader(w *scene.World, eye mgl64.Vec3) shader {
	scale := func(c colorful.Color, k float64) colorful.Color {
		return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
	}
	return shader{
		ambient: scale(w.Ambient.Color, w.Ambient.Intensity),
		sun:     scale(w.Sun.Color, w.Sun.Intensity),
		dir:     w.Sun.Direction(),
		eye:     eye,
	}
}

// shade lights a flat face with normal n through point p.
func (s shader) shade(m scene.Material, n, p mgl64.Vec3) colorful.Color {
	diffuse := math.Max(0, n.Dot(s.dir)) * (1 - 0.5*m.Metalness)
	view := s.eye.Sub(p).Normalize()
	half := view.Add(s.dir).Normalize()
	gloss := 1 - m.Roughness
	specular := 0.5 * gloss * math.Pow(math.Max(0, n.Dot(half)), 8+56*gloss)
	tint := func(base float64) float64 { return (1-m.Metalness)*1 + m.Metalness*base }
	return colorful.Color{
		R: m.Color.R*(s.ambient.R+s.sun.R*diffuse) + s.sun.R*specular*tint(m.Color.R),
		G: m.Color.G*(s.ambient.G+s.sun.G*diffuse) + s.sun.G*specular*tint(m.Color.G),
		B: m.Color.B*(s.ambient.B+s.sun.B*diffuse) + s.sun.B*specular*tint(m.Color.B),
	}.Clamped()
}

// ink is the edge colour in wire mode. Dark materials are lifted so they stay visible.
func (s shader) ink(m scene.Material) colorful.Color {
	return m.Color.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 0.25).Clamped()
}
