package geom

// BBox is a rectangle on the ground plane. Y holds world Z.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b BBox) Width() float64 { return b.MaxX - b.MinX }
func (b BBox) Depth() float64 { return b.MaxY - b.MinY }

// extend grows b to include bb. An empty b takes bb as is.
func (b *BBox) extend(bb BBox, empty bool) {
	if empty {
		*b = bb
		return
	}
	b.MinX = min(b.MinX, bb.MinX)
	b.MinY = min(b.MinY, bb.MinY)
	b.MaxX = max(b.MaxX, bb.MaxX)
	b.MaxY = max(b.MaxY, bb.MaxY)
}

// Footprint is the ground rectangle covered by one placed object.
type Footprint struct {
	Kind   string
	Name   string
	Box    BBox
	Height float64
}

// Ring returns the closed outline of f, counter-clockwise in x/z.
func (f Footprint) Ring() [][2]float64 {
	b := f.Box
	return [][2]float64{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
		{b.MinX, b.MinY},
	}
}

// Data is a minimal layout container for export
type Data struct {
	Footprints []Footprint
	BBox       BBox
}
