package geom

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"kind", "name", "x", "z", "width", "depth", "height"}

// WriteCSV writes one row per footprint with its centre and extents.
func WriteCSV(w io.Writer, d Data) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }
	for _, f := range d.Footprints {
		b := f.Box
		row := []string{
			f.Kind,
			f.Name,
			num((b.MinX + b.MaxX) / 2),
			num((b.MinY + b.MaxY) / 2),
			num(b.Width()),
			num(b.Depth()),
			num(f.Height),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
