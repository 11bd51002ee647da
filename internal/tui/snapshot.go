package tui

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"polycity/internal/app"
	"polycity/internal/config"
	"polycity/internal/render"
)

var ErrBadSize = errors.New("bad size")

// ParseSize parses "COLSxROWS", e.g. "120x40".
func ParseSize(s string) (cols, rows int, err error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	cols, err1 := strconv.Atoi(a)
	rows, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil || cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return cols, rows, nil
}

// Snapshot generates a city and renders its first frame into a canvas of
// cols x rows terminal cells.
func Snapshot(cfg config.Config, rng *rand.Rand, cols, rows int) (string, error) {
	mode, err := render.ParseMode(cfg.Render.Mode)
	if err != nil {
		return "", err
	}
	r := render.New(mode)
	a := app.New(cfg, rng, r)
	px, py := r.PixelsPerCell()
	a.Resize(cols*px, rows*py)
	a.Frame()
	return r.String(), nil
}
