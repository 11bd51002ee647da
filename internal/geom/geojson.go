package geom

import (
	"encoding/json"
	"io"
)

type geoFeature struct {
	Type       string         `json:"type"`
	Geometry   geoPolygon     `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoPolygon struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

type geoCollection struct {
	Type     string       `json:"type"`
	BBox     [4]float64   `json:"bbox"`
	Features []geoFeature `json:"features"`
}

// WriteGeoJSON writes a FeatureCollection with one Polygon per footprint.
// Coordinates are (x, z) in world units.
func WriteGeoJSON(w io.Writer, d Data) error {
	fc := geoCollection{
		Type:     "FeatureCollection",
		BBox:     [4]float64{d.BBox.MinX, d.BBox.MinY, d.BBox.MaxX, d.BBox.MaxY},
		Features: make([]geoFeature, 0, len(d.Footprints)),
	}
	for _, f := range d.Footprints {
		fc.Features = append(fc.Features, geoFeature{
			Type: "Feature",
			Geometry: geoPolygon{
				Type:        "Polygon",
				Coordinates: [][][2]float64{f.Ring()},
			},
			Properties: map[string]any{
				"kind":   f.Kind,
				"name":   f.Name,
				"height": f.Height,
			},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}
