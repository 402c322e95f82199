package components

import (
	"fmt"

	"github.com/automoto/olsen/config"
	"github.com/yohamta/donburi/features/events"
)

// PlayerStateEventData asks the player to change action and, optionally,
// facing. HasFacing is false when only the action changes.
type PlayerStateEventData struct {
	Action    config.PlayerAction
	Facing    config.Facing
	HasFacing bool
}

func (e PlayerStateEventData) String() string {
	if !e.HasFacing {
		return fmt.Sprintf("%s/none", e.Action)
	}
	return fmt.Sprintf("%s/%s", e.Action, e.Facing)
}

// RunEvent is a move in direction f.
func RunEvent(f config.Facing) PlayerStateEventData {
	return PlayerStateEventData{Action: config.ActionRun, Facing: f, HasFacing: true}
}

// IdleEvent stops moving without changing facing.
func IdleEvent() PlayerStateEventData {
	return PlayerStateEventData{Action: config.ActionIdle}
}

// PlayerStateEvent is queued by the input system and drained, in publish
// order, by the player state system in the same frame.
var PlayerStateEvent = events.NewEventType[PlayerStateEventData]()
