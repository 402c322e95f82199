package factory

import (
	"github.com/automoto/olsen/archetypes"
	"github.com/automoto/olsen/assets/animations"
	"github.com/automoto/olsen/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at (x, y) already playing clip, so it is
// visible before the first input arrives. clip may be nil.
func CreatePlayer(ecs *ecs.ECS, x, y float64, clip *animations.Clip) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Position.SetValue(player, components.PositionData{
		Vec2: math.Vec2{X: x, Y: y},
	})

	anim := components.AnimationPlayer.Get(player)
	if clip != nil {
		anim.SetClip(clip)
	}

	return player
}
