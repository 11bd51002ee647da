// Package config loads scene, camera and render settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Render modes.
const (
	ModeSolid = "solid"
	ModeWire  = "wire"
)

type City struct {
	GridSize          int     `yaml:"grid_size"`
	Spacing           float64 `yaml:"spacing"`
	BuildingClearance float64 `yaml:"building_clearance"`
	TreeClearance     float64 `yaml:"tree_clearance"`
	TreeDraws         int     `yaml:"tree_draws"`
	CarDraws          int     `yaml:"car_draws"`
	ScatterExtent     float64 `yaml:"scatter_extent"`
	RoadWidth         float64 `yaml:"road_width"`
	RoadLength        float64 `yaml:"road_length"`
	GroundSize        float64 `yaml:"ground_size"`
}

type Camera struct {
	FovY            float64 `yaml:"fov_y"`
	Near            float64 `yaml:"near"`
	Far             float64 `yaml:"far"`
	Radius          float64 `yaml:"radius"`
	BaseHeight      float64 `yaml:"base_height"`
	HeightVariation float64 `yaml:"height_variation"`
	Step            float64 `yaml:"step"`
}

type Render struct {
	Mode string `yaml:"mode"`
	FPS  int    `yaml:"fps"`
	HUD  bool   `yaml:"hud"`
}

type Config struct {
	City   City   `yaml:"city"`
	Camera Camera `yaml:"camera"`
	Render Render `yaml:"render"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		City: City{
			GridSize:          10,
			Spacing:           8,
			BuildingClearance: 2,
			TreeClearance:     4,
			TreeDraws:         50,
			CarDraws:          15,
			ScatterExtent:     80,
			RoadWidth:         4,
			RoadLength:        100,
			GroundSize:        100,
		},
		Camera: Camera{
			FovY:            75,
			Near:            0.1,
			Far:             1000,
			Radius:          50,
			BaseHeight:      30,
			HeightVariation: 20,
			Step:            0.0005,
		},
		Render: Render{
			Mode: ModeSolid,
			FPS:  30,
			HUD:  true,
		},
	}
}

// Load reads path on top of the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the ranges every consumer relies on.
func (c Config) Validate() error {
	invalid := func(field string, v any) error {
		return fmt.Errorf("%w: %s = %v", ErrInvalid, field, v)
	}
	switch {
	case c.City.GridSize < 0:
		return invalid("city.grid_size", c.City.GridSize)
	case c.City.Spacing <= 0:
		return invalid("city.spacing", c.City.Spacing)
	case c.City.BuildingClearance < 0:
		return invalid("city.building_clearance", c.City.BuildingClearance)
	case c.City.TreeClearance < 0:
		return invalid("city.tree_clearance", c.City.TreeClearance)
	case c.City.TreeDraws < 0:
		return invalid("city.tree_draws", c.City.TreeDraws)
	case c.City.CarDraws < 0:
		return invalid("city.car_draws", c.City.CarDraws)
	case c.City.ScatterExtent < 0:
		return invalid("city.scatter_extent", c.City.ScatterExtent)
	case c.City.RoadWidth <= 0:
		return invalid("city.road_width", c.City.RoadWidth)
	case c.City.RoadLength <= 0:
		return invalid("city.road_length", c.City.RoadLength)
	case c.City.GroundSize <= 0:
		return invalid("city.ground_size", c.City.GroundSize)
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return invalid("camera.fov_y", c.Camera.FovY)
	case c.Camera.Near <= 0:
		return invalid("camera.near", c.Camera.Near)
	case c.Camera.Far <= c.Camera.Near:
		return invalid("camera.far", c.Camera.Far)
	case c.Camera.Radius <= 0:
		return invalid("camera.radius", c.Camera.Radius)
	case c.Render.FPS <= 0:
		return invalid("render.fps", c.Render.FPS)
	case c.Render.Mode != ModeSolid && c.Render.Mode != ModeWire:
		return invalid("render.mode", c.Render.Mode)
	}
	return nil
}
