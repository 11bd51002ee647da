package geom

import (
	"fmt"
	"io"
	"strings"
)

// FormatWKT renders a footprint as POLYGON((x z, ...)).
func FormatWKT(f Footprint) string {
	parts := make([]string, 0, 5)
	for _, p := range f.Ring() {
		parts = append(parts, fmt.Sprintf("%g %g", p[0], p[1]))
	}
	return "POLYGON((" + strings.Join(parts, ", ") + "))"
}

// WriteWKT writes one polygon per line.
func WriteWKT(w io.Writer, d Data) error {
	for _, f := range d.Footprints {
		if _, err := fmt.Fprintln(w, FormatWKT(f)); err != nil {
			return err
		}
	}
	return nil
}
