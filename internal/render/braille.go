package render

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	ink  [][]string // per-cell colour, first dot wins
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	ink := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		ink[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, ink: ink}
}

// dotBits maps a micro-pixel inside a cell (column, row) to its braille bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, ink string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	if b.m[cy][cx] == 0 {
		b.ink[cy][cx] = ink
	}
	b.m[cy][cx] |= dotBits[rx][ry]
}

// drawLineMicro walks a line on the microgrid using Bresenham, passing each
// point and its fraction along the line to plot.
func drawLineMicro(x0, y0, x1, y1 int, plot func(x, y int, t float64)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	err := dx + dy
	for i := 0; ; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		plot(x0, y0, min(t, 1))
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (b *brailleBuf) toLines(r *Renderer) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		var cur string
		flush := func() {
			if len(run) == 0 {
				return
			}
			if cur == "" {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(r.style(cur, "").Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			ch, ink := ' ', ""
			if mask != 0 {
				ch, ink = rune(0x2800+int(mask)), b.ink[y][x]
			}
			if ink != cur {
				flush()
				cur = ink
			}
			run = append(run, ch)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

// encodeWire draws the visible parts of every edge into a braille buffer.
func (r *Renderer) encodeWire(lines []line) string {
	br := newBrailleBuf(r.width/2, r.height/4)
	for _, l := range lines {
		a, b, ok := clipToRect(l.a, l.b, float64(r.width), float64(r.height))
		if !ok {
			continue
		}
		hex := l.ink.Hex()
		drawLineMicro(int(a.X()), int(a.Y()), int(b.X()), int(b.Y()), func(x, y int, t float64) {
			z := a.Z() + t*(b.Z()-a.Z())
			if r.visible(x, y, z) {
				br.setPixel(x, y, hex)
			}
		})
	}
	return strings.Join(br.toLines(r), "\n")
}

// clipToRect trims a screen-space segment to [0,w) x [0,h) (Liang-Barsky),
// interpolating Z along with X and Y.
func clipToRect(a, b mgl64.Vec3, w, h float64) (mgl64.Vec3, mgl64.Vec3, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X(), a.X()},
		{d.X(), w - 1e-9 - a.X()},
		{-d.Y(), a.Y()},
		{d.Y(), h - 1e-9 - a.Y()},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}
