package city

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"polycity/internal/scene"
)

// Building dimension ranges, each half-open.
const (
	MinFootprint = 4.0
	MaxFootprint = 8.0
	MinHeight    = 5.0
	MaxHeight    = 20.0
)

// Options controls where and how many objects are placed.
type Options struct {
	GridSize          int
	Spacing           float64
	BuildingClearance float64
	TreeClearance     float64
	TreeDraws         int
	CarDraws          int
	ScatterExtent     float64
	RoadWidth         float64
	RoadLength        float64
}

// DefaultOptions returns the stock city layout.
func DefaultOptions() Options {
	return Options{
		GridSize:          10,
		Spacing:           8,
		BuildingClearance: 2,
		TreeClearance:     4,
		TreeDraws:         50,
		CarDraws:          15,
		ScatterExtent:     80,
		RoadWidth:         4,
		RoadLength:        100,
	}
}

// Layout reports what Populate placed.
type Layout struct {
	Cells     int
	Buildings int
	TreeDraws int
	Trees     int
	CarDraws  int
	Cars      int
	Roads     int
}

// OffRoad reports whether (x, z) lies outside the band of half-width
// clearance around both axes.
func OffRoad(x, z, clearance float64) bool {
	return math.Abs(x) > clearance && math.Abs(z) > clearance
}

// Populate adds roads, buildings, trees and cars to w.
// Tree draws landing on the band are dropped, not retried, so the number
// of trees varies between runs.
func Populate(w *scene.World, rng *rand.Rand, opts Options) Layout {
	var l Layout

	w.Add(
		Road(0, 0, opts.RoadWidth, opts.RoadLength, Horizontal),
		Road(0, 0, opts.RoadWidth, opts.RoadLength, Vertical),
	)
	l.Roads = 2

	half := float64(opts.GridSize) / 2
	for i := 0; i < opts.GridSize; i++ {
		for j := 0; j < opts.GridSize; j++ {
			l.Cells++
			x := (float64(i) - half) * opts.Spacing
			z := (float64(j) - half) * opts.Spacing
			if !OffRoad(x, z, opts.BuildingClearance) {
				continue
			}
			width := MinFootprint + rng.Float64()*(MaxFootprint-MinFootprint)
			depth := MinFootprint + rng.Float64()*(MaxFootprint-MinFootprint)
			height := MinHeight + rng.Float64()*(MaxHeight-MinHeight)
			b := Building(rng, x, z, width, depth, height)
			b.Name = fmt.Sprintf("building-%d-%d", i, j)
			w.Add(b)
			l.Buildings++
		}
	}

	for i := 0; i < opts.TreeDraws; i++ {
		l.TreeDraws++
		x := (rng.Float64() - 0.5) * opts.ScatterExtent
		z := (rng.Float64() - 0.5) * opts.ScatterExtent
		if !OffRoad(x, z, opts.TreeClearance) {
			continue
		}
		t := Tree(x, z)
		t.Name = fmt.Sprintf("tree-%d", i)
		w.Add(t)
		l.Trees++
	}

	for i := 0; i < opts.CarDraws; i++ {
		l.CarDraws++
		horizontal := rng.Float64() > 0.5
		along := (rng.Float64() - 0.5) * opts.ScatterExtent
		across := rng.Float64()*opts.RoadWidth - opts.RoadWidth/2
		x, z := along, across
		if !horizontal {
			x, z = across, along
		}
		c := Car(rng, x, z)
		c.Name = fmt.Sprintf("car-%d", i)
		w.Add(c)
		l.Cars++
	}

	slog.Debug("City populated",
		"cells", l.Cells, "buildings", l.Buildings,
		"trees", l.Trees, "treeDraws", l.TreeDraws, "cars", l.Cars)
	return l
}
