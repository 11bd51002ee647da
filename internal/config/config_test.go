package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polycity/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "polycity.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 10, c.City.GridSize)
	assert.Equal(t, 8.0, c.City.Spacing)
	assert.Equal(t, 50, c.City.TreeDraws)
	assert.Equal(t, 15, c.City.CarDraws)
	assert.Equal(t, 0.0005, c.Camera.Step)
	assert.Equal(t, 50.0, c.Camera.Radius)
	assert.Equal(t, config.ModeSolid, c.Render.Mode)
}

func TestLoad(t *testing.T) {
	t.Run("should overlay values on the defaults", func(t *testing.T) {
		p := writeFile(t, "city:\n  grid_size: 6\nrender:\n  mode: wire\n  fps: 20\n")
		c, err := config.Load(p)
		require.NoError(t, err)
		assert.Equal(t, 6, c.City.GridSize)
		assert.Equal(t, 8.0, c.City.Spacing)
		assert.Equal(t, config.ModeWire, c.Render.Mode)
		assert.Equal(t, 20, c.Render.FPS)
		assert.True(t, c.Render.HUD)
	})
	t.Run("should reject invalid values", func(t *testing.T) {
		p := writeFile(t, "render:\n  fps: 0\n")
		_, err := config.Load(p)
		assert.ErrorIs(t, err, config.ErrInvalid)
	})
	t.Run("should reject unknown keys", func(t *testing.T) {
		p := writeFile(t, "city:\n  towers: 3\n")
		_, err := config.Load(p)
		assert.Error(t, err)
	})
	t.Run("should report missing files", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"unknown mode", func(c *config.Config) { c.Render.Mode = "ascii" }},
		{"far before near", func(c *config.Config) { c.Camera.Far = 0.01 }},
		{"zero spacing", func(c *config.Config) { c.City.Spacing = 0 }},
		{"negative draws", func(c *config.Config) { c.City.TreeDraws = -1 }},
		{"flat fov", func(c *config.Config) { c.Camera.FovY = 180 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}
