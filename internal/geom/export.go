// Package geom flattens a generated city into ground footprints and writes
// them as GeoJSON, CSV, KML or WKT.
package geom

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"polycity/internal/scene"
)

// ErrUnsupportedFormat is returned for unknown export extensions.
var ErrUnsupportedFormat = errors.New("unsupported format")

// FootprintsOf collects the footprint of every placed object in w.
// The ground is skipped.
func FootprintsOf(w *scene.World) Data {
	var d Data
	for _, n := range w.Nodes() {
		if n.Kind == scene.KindGround {
			continue
		}
		lo, hi, ok := n.Bounds()
		if !ok {
			continue
		}
		f := Footprint{
			Kind:   n.Kind.String(),
			Name:   n.Name,
			Box:    BBox{MinX: lo.X(), MinY: lo.Z(), MaxX: hi.X(), MaxY: hi.Z()},
			Height: hi.Y(),
		}
		d.BBox.extend(f.Box, len(d.Footprints) == 0)
		d.Footprints = append(d.Footprints, f)
	}
	return d
}

// Export writes d to path, choosing the format from the extension.
func Export(path string, d Data) error {
	var write func(io.Writer, Data) error
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		write = WriteGeoJSON
	case ".csv":
		write = WriteCSV
	case ".kml":
		write = WriteKML
	case ".wkt":
		write = WriteWKT
	default:
		return fmt.Errorf("export %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := write(f, d); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	slog.Info("Layout exported", "path", path, "footprints", len(d.Footprints))
	return nil
}

// ExportAll writes d to every path concurrently and returns the first error.
func ExportAll(paths []string, d Data) error {
	var g errgroup.Group
	for _, p := range paths {
		g.Go(func() error {
			return Export(p, d)
		})
	}
	return g.Wait()
}
