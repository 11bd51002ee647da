package geom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type kmlDoc struct {
	XMLName  xml.Name `xml:"kml"`
	XMLNS    string   `xml:"xmlns,attr"`
	Document struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
	} `xml:"Document"`
}

type kmlPlacemark struct {
	Name        string     `xml:"name"`
	Description string     `xml:"description"`
	Polygon     kmlPolygon `xml:"Polygon"`
}

type kmlPolygon struct {
	Coordinates string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

// WriteKML writes one Placemark polygon per footprint. KML coordinates are
// "x,z,height" tuples.
func WriteKML(w io.Writer, d Data) error {
	doc := kmlDoc{XMLNS: "http://www.opengis.net/kml/2.2"}
	for _, f := range d.Footprints {
		tuples := make([]string, 0, 5)
		for _, p := range f.Ring() {
			tuples = append(tuples, fmt.Sprintf("%g,%g,%g", p[0], p[1], f.Height))
		}
		doc.Document.Placemarks = append(doc.Document.Placemarks, kmlPlacemark{
			Name:        f.Name,
			Description: f.Kind,
			Polygon:     kmlPolygon{Coordinates: strings.Join(tuples, " ")},
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
