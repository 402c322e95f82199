package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML overlay. Absent fields keep their defaults.
//
//	window:
//	  width: 1280
//	  height: 720
//	  tps: 60
//	debug:
//	  overlay: true
//	keys:
//	  up: ArrowUp
//	  idle: Space
type FileConfig struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
		TPS    int `yaml:"tps"`
	} `yaml:"window"`

	Debug struct {
		Overlay *bool `yaml:"overlay"`
	} `yaml:"debug"`

	Keys struct {
		Up    *ebiten.Key `yaml:"up"`
		Down  *ebiten.Key `yaml:"down"`
		Left  *ebiten.Key `yaml:"left"`
		Right *ebiten.Key `yaml:"right"`
		Idle  *ebiten.Key `yaml:"idle"`
	} `yaml:"keys"`
}

// LoadFile reads a YAML overlay and applies it to the global configuration.
// A missing file is not an error.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return Apply(data)
}

// Apply parses a YAML overlay and applies it to the global configuration.
// Nothing is applied if the overlay is invalid.
func Apply(data []byte) error {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	c := *C
	if fc.Window.Width != 0 {
		c.Width = fc.Window.Width
	}
	if fc.Window.Height != 0 {
		c.Height = fc.Window.Height
	}
	if fc.Window.TPS != 0 {
		c.TPS = fc.Window.TPS
	}
	if c.Width < 0 || c.Height < 0 || c.TPS < 0 {
		return fmt.Errorf("invalid window config: %dx%d at %d tps", c.Width, c.Height, c.TPS)
	}

	in := Input
	for _, o := range []struct {
		src *ebiten.Key
		dst *ebiten.Key
	}{
		{fc.Keys.Up, &in.Up},
		{fc.Keys.Down, &in.Down},
		{fc.Keys.Left, &in.Left},
		{fc.Keys.Right, &in.Right},
		{fc.Keys.Idle, &in.Idle},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	if err := in.Validate(); err != nil {
		return err
	}

	C = &c
	Input = in
	if fc.Debug.Overlay != nil {
		Debug.Overlay = *fc.Debug.Overlay
	}
	return nil
}

// Validate rejects bindings that map two roles to the same key.
func (c InputConfig) Validate() error {
	seen := make(map[ebiten.Key]string)
	for _, b := range []struct {
		name string
		key  ebiten.Key
	}{
		{"up", c.Up},
		{"down", c.Down},
		{"left", c.Left},
		{"right", c.Right},
		{"idle", c.Idle},
	} {
		if prev, ok := seen[b.key]; ok {
			return fmt.Errorf("key %s bound to both %s and %s", b.key, prev, b.name)
		}
		seen[b.key] = b.name
	}
	return nil
}
