// Package config loads the scene tuning from an optional YAML file
// layered over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	MSAA   bool   `yaml:"msaa"`
}

type Particles struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`
	MinScale float64 `yaml:"minScale"`
	MaxScale float64 `yaml:"maxScale"`
}

type Pictures struct {
	Dir         string  `yaml:"dir"`
	Height      float64 `yaml:"height"`
	PlateMargin float64 `yaml:"plateMargin"`
	PlateOffset float64 `yaml:"plateOffset"`
	MinSpeed    float64 `yaml:"minSpeed"`
	MaxSpeed    float64 `yaml:"maxSpeed"`
}

type Tree struct {
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

type Camera struct {
	Distance       float64 `yaml:"distance"`
	Elevation      float64 `yaml:"elevation"`
	OrbitSpeed     float64 `yaml:"orbitSpeed"`
	Fovy           float64 `yaml:"fovy"`
	Parallax       bool    `yaml:"parallax"`
	ParallaxAmount float64 `yaml:"parallaxAmount"`
}

type Audio struct {
	Music  string  `yaml:"music"`
	Volume float64 `yaml:"volume"`
}

type Config struct {
	Window        Window    `yaml:"window"`
	Particles     Particles `yaml:"particles"`
	Pictures      Pictures  `yaml:"pictures"`
	Tree          Tree      `yaml:"tree"`
	ScatterRadius float64   `yaml:"scatterRadius"`
	Camera        Camera    `yaml:"camera"`
	Audio         Audio     `yaml:"audio"`
	Seed          int64     `yaml:"seed"`
}

// Default returns the tuning the scene ships with.
func Default() *Config {
	return &Config{
		Window: Window{Width: 1280, Height: 720, Title: "Christmas Memory Tree", MSAA: true},
		Particles: Particles{
			Count:    3000,
			MinSpeed: 0.4, MaxSpeed: 1.2,
			MinScale: 0.035, MaxScale: 0.085,
		},
		Pictures: Pictures{
			Height:      1.2,
			PlateMargin: 0.06,
			PlateOffset: 0.02,
			MinSpeed:    0.15, MaxSpeed: 0.5,
		},
		Tree:          Tree{Radius: 5.5, Height: 11},
		ScatterRadius: 9,
		Camera: Camera{
			Distance:       16,
			Elevation:      2.5,
			OrbitSpeed:     0.08,
			Fovy:           55,
			ParallaxAmount: 1.5,
		},
		Audio: Audio{Volume: 0.6},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are the config.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Particles.Count <= 0 || c.Particles.Count > 20000:
		return fmt.Errorf("particles.count must be in 1..20000, got %d", c.Particles.Count)
	case c.Tree.Radius <= 0 || c.Tree.Height <= 0:
		return fmt.Errorf("tree.radius and tree.height must be positive")
	case c.ScatterRadius <= 0:
		return fmt.Errorf("scatterRadius must be positive")
	case c.Pictures.Height <= 0:
		return fmt.Errorf("pictures.height must be positive")
	}
	return nil
}
