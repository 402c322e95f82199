package config

import "github.com/hajimehoshi/ebiten/v2"

// InputConfig holds the keyboard bindings for the player.
type InputConfig struct {
	Up    ebiten.Key
	Down  ebiten.Key
	Left  ebiten.Key
	Right ebiten.Key

	// Idle returns the player to idle when released, whatever else is held.
	Idle ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Up:    ebiten.KeyW,
		Down:  ebiten.KeyS,
		Left:  ebiten.KeyA,
		Right: ebiten.KeyD,
		Idle:  ebiten.KeySpace,
	}
}

// MovementKeys returns the key-to-direction mapping for the bound keys.
func (c InputConfig) MovementKeys() map[ebiten.Key]Facing {
	return map[ebiten.Key]Facing{
		c.Up:    FacingUp,
		c.Down:  FacingDown,
		c.Left:  FacingLeft,
		c.Right: FacingRight,
	}
}
