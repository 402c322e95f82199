package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PositionData is where an entity's sprite is anchored (bottom-center).
type PositionData struct {
	math.Vec2
}

var Position = donburi.NewComponentType[PositionData]()
