package geom_test

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polycity/internal/city"
	"polycity/internal/geom"
	"polycity/internal/scene"
)

func sampleWorld() *scene.World {
	w := scene.NewWorld()
	ground := scene.NewMesh(scene.Plane{Width: 100, Height: 100}, scene.StandardMaterial(scene.Hex(0x3A5F0B)))
	ground.Kind = scene.KindGround
	box := scene.NewMesh(scene.Box{Width: 4, Height: 10, Depth: 6}, scene.StandardMaterial(scene.Hex(0xff0000)))
	box.Kind = scene.KindBuilding
	box.Name = "building-0-0"
	box.Position = mgl64.Vec3{10, 5, -20}
	w.Add(ground, box, city.Tree(-30, 30))
	return w
}

func TestFootprintsOf(t *testing.T) {
	d := geom.FootprintsOf(sampleWorld())
	require.Len(t, d.Footprints, 2)

	t.Run("should skip the ground", func(t *testing.T) {
		for _, f := range d.Footprints {
			assert.NotEqual(t, "ground", f.Kind)
		}
	})
	t.Run("should measure buildings in world space", func(t *testing.T) {
		f := d.Footprints[0]
		assert.Equal(t, "building", f.Kind)
		assert.Equal(t, "building-0-0", f.Name)
		assert.InDelta(t, 8, f.Box.MinX, 1e-9)
		assert.InDelta(t, 12, f.Box.MaxX, 1e-9)
		assert.InDelta(t, -23, f.Box.MinY, 1e-9)
		assert.InDelta(t, -17, f.Box.MaxY, 1e-9)
		assert.InDelta(t, 10, f.Height, 1e-9)
	})
	t.Run("should take the tree height from the crown", func(t *testing.T) {
		f := d.Footprints[1]
		assert.Equal(t, "tree", f.Kind)
		assert.InDelta(t, 6, f.Height, 1e-9)
		assert.InDelta(t, 4, f.Box.Width(), 1e-9)
	})
	t.Run("should cover every footprint with the bbox", func(t *testing.T) {
		assert.InDelta(t, -32, d.BBox.MinX, 1e-9)
		assert.InDelta(t, 12, d.BBox.MaxX, 1e-9)
		assert.InDelta(t, -23, d.BBox.MinY, 1e-9)
		assert.InDelta(t, 32, d.BBox.MaxY, 1e-9)
	})
}

func TestFootprintsOfGeneratedCity(t *testing.T) {
	w := scene.NewWorld()
	rng := rand.New(rand.NewPCG(7, 7))
	l := city.Populate(w, rng, city.DefaultOptions())
	d := geom.FootprintsOf(w)
	assert.Len(t, d.Footprints, l.Roads+l.Buildings+l.Trees+l.Cars)
}

func TestRing(t *testing.T) {
	f := geom.Footprint{Box: geom.BBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 1}}
	r := f.Ring()
	require.Len(t, r, 5)
	assert.Equal(t, r[0], r[4])
	assert.Equal(t, [2]float64{2, 1}, r[2])
}

func TestWriters(t *testing.T) {
	d := geom.FootprintsOf(sampleWorld())

	t.Run("should write a feature collection", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, geom.WriteGeoJSON(&buf, d))
		var fc struct {
			Type     string `json:"type"`
			Features []struct {
				Geometry struct {
					Type        string         `json:"type"`
					Coordinates [][][2]float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties map[string]any `json:"properties"`
			} `json:"features"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &fc))
		assert.Equal(t, "FeatureCollection", fc.Type)
		require.Len(t, fc.Features, 2)
		assert.Equal(t, "Polygon", fc.Features[0].Geometry.Type)
		assert.Len(t, fc.Features[0].Geometry.Coordinates[0], 5)
		assert.Equal(t, "building", fc.Features[0].Properties["kind"])
	})
	t.Run("should write csv with a header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, geom.WriteCSV(&buf, d))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "kind,name,x,z,width,depth,height", lines[0])
		assert.Equal(t, "building,building-0-0,10.000,-20.000,4.000,6.000,10.000", lines[1])
	})
	t.Run("should write kml placemarks", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, geom.WriteKML(&buf, d))
		s := buf.String()
		assert.Equal(t, 2, strings.Count(s, "<Placemark>"))
		assert.Contains(t, s, "<name>building-0-0</name>")
		assert.Contains(t, s, "8,-23,10 12,-23,10")
	})
	t.Run("should write one wkt polygon per line", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, geom.WriteWKT(&buf, d))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "POLYGON((8 -23, 12 -23, 12 -17, 8 -17, 8 -23))", lines[0])
	})
}

func TestExport(t *testing.T) {
	d := geom.FootprintsOf(sampleWorld())
	dir := t.TempDir()

	t.Run("should pick the format from the extension", func(t *testing.T) {
		for _, name := range []string{"city.geojson", "city.json", "city.CSV", "city.kml", "city.wkt"} {
			p := filepath.Join(dir, name)
			require.NoError(t, geom.Export(p, d), name)
			info, err := os.Stat(p)
			require.NoError(t, err)
			assert.Positive(t, info.Size(), name)
		}
	})
	t.Run("should reject unknown extensions", func(t *testing.T) {
		p := filepath.Join(dir, "city.shp")
		err := geom.Export(p, d)
		assert.ErrorIs(t, err, geom.ErrUnsupportedFormat)
		_, statErr := os.Stat(p)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})
}

func TestExportAll(t *testing.T) {
	d := geom.FootprintsOf(sampleWorld())
	dir := t.TempDir()

	t.Run("should write every file", func(t *testing.T) {
		paths := []string{filepath.Join(dir, "a.geojson"), filepath.Join(dir, "a.wkt")}
		require.NoError(t, geom.ExportAll(paths, d))
		for _, p := range paths {
			assert.FileExists(t, p)
		}
	})
	t.Run("should report a failing path", func(t *testing.T) {
		paths := []string{filepath.Join(dir, "b.csv"), filepath.Join(dir, "b.txt")}
		assert.ErrorIs(t, geom.ExportAll(paths, d), geom.ErrUnsupportedFormat)
	})
}
