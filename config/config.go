package config

import "image/color"

// Config contains window and loop settings.
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int // game ticks per second, also the animation clock rate

	// ClearColor fills the screen before each frame is drawn.
	ClearColor color.RGBA
}

// PlayerConfig contains player spawn configuration
type PlayerConfig struct {
	// Used when the stage map has no PlayerSpawn object.
	DefaultSpawnX float64
	DefaultSpawnY float64
	Scale         float64 // draw scale applied to the sprite cell
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Overlay bool // Show the player state panel
}

// AssetConfig contains asset lookup settings
type AssetConfig struct {
	// StagePath is the Tiled map read for the player spawn.
	StagePath string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Debug DebugConfig
var Assets AssetConfig

func init() {
	C = &Config{
		Title:      "Olsen",
		Width:      1280,
		Height:     720,
		TPS:        60,
		ClearColor: color.RGBA{R: 172, G: 225, B: 175, A: 255},
	}

	Player = PlayerConfig{
		DefaultSpawnX: 640,
		DefaultSpawnY: 360,
		Scale:         0.5,
	}

	Debug = DebugConfig{
		Overlay: false,
	}

	Assets = AssetConfig{
		StagePath: "levels/stage.tmx",
	}
}
