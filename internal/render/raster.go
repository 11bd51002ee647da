package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

type line struct {
	a, b mgl64.Vec3
	ink  colorful.Color
}

// clipPolygon projects a convex world-space polygon and cuts it against
// the plane w = near. It returns the surviving vertices in clip space.
func clipPolygon(vp mgl64.Mat4, pts []mgl64.Vec3, near float64) []mgl64.Vec4 {
	in := make([]mgl64.Vec4, len(pts))
	for i, p := range pts {
		in[i] = vp.Mul4x1(p.Vec4(1))
	}
	out := make([]mgl64.Vec4, 0, len(in)+1)
	for i := range in {
		a, b := in[i], in[(i+1)%len(in)]
		aIn, bIn := a.W() >= near, b.W() >= near
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			t := (near - a.W()) / (b.W() - a.W())
			out = append(out, a.Add(b.Sub(a).Mul(t)))
		}
	}
	return out
}

// clipSegment projects a world-space segment and cuts it against w = near.
func clipSegment(vp mgl64.Mat4, a, b mgl64.Vec3, near float64) ([2]mgl64.Vec4, bool) {
	ca, cb := vp.Mul4x1(a.Vec4(1)), vp.Mul4x1(b.Vec4(1))
	aIn, bIn := ca.W() >= near, cb.W() >= near
	switch {
	case !aIn && !bIn:
		return [2]mgl64.Vec4{}, false
	case !aIn:
		t := (near - ca.W()) / (cb.W() - ca.W())
		ca = ca.Add(cb.Sub(ca).Mul(t))
	case !bIn:
		t := (near - cb.W()) / (ca.W() - cb.W())
		cb = cb.Add(ca.Sub(cb).Mul(t))
	}
	return [2]mgl64.Vec4{ca, cb}, true
}

// fillPolygon fans a clipped convex polygon into triangles.
func (r *Renderer) fillPolygon(poly []mgl64.Vec4, col colorful.Color) {
	if len(poly) < 3 {
		return
	}
	a := r.toScreen(poly[0])
	for i := 1; i+1 < len(poly); i++ {
		r.fillTriangle(a, r.toScreen(poly[i]), r.toScreen(poly[i+1]), col)
	}
}

func edgeFn(a, b mgl64.Vec3, px, py float64) float64 {
	return (b.X()-a.X())*(py-a.Y()) - (b.Y()-a.Y())*(px-a.X())
}

// fillTriangle rasterizes a screen-space triangle sampling pixel centres.
// Z holds 1/w, so larger values are closer.
func (r *Renderer) fillTriangle(a, b, c mgl64.Vec3, col colorful.Color) {
	area := edgeFn(a, b, c.X(), c.Y())
	if math.Abs(area) < 1e-12 {
		return
	}
	minX := max(0, int(math.Floor(min(a.X(), b.X(), c.X()))))
	maxX := min(r.width-1, int(math.Ceil(max(a.X(), b.X(), c.X()))))
	minY := max(0, int(math.Floor(min(a.Y(), b.Y(), c.Y()))))
	maxY := min(r.height-1, int(math.Ceil(max(a.Y(), b.Y(), c.Y()))))
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edgeFn(b, c, px, py) / area
			w1 := edgeFn(c, a, px, py) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.Z() + w1*b.Z() + w2*c.Z()
			i := y*r.width + x
			if z <= r.depth[i] {
				continue
			}
			r.depth[i] = z
			r.color[i] = col
		}
	}
}

// visible reports whether a point at depth z on pixel (x, y) is not hidden
// behind the rasterized surface. Edges sit on their own faces, so a small
// tolerance lets them win against the face they bound.
func (r *Renderer) visible(x, y int, z float64) bool {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return false
	}
	return z >= r.depth[y*r.width+x]*0.98
}
