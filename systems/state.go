package systems

import (
	"log"

	"github.com/automoto/olsen/assets/animations"
	"github.com/automoto/olsen/components"
	cfg "github.com/automoto/olsen/config"
	"github.com/automoto/olsen/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerStateMachine owns the player's facing and action and keeps the
// player's animation in step with them.
type PlayerStateMachine struct {
	catalog *animations.Catalog
	logger  *log.Logger

	facing cfg.Facing
	action cfg.PlayerAction
}

// NewPlayerStateMachine starts idle, facing down.
func NewPlayerStateMachine(catalog *animations.Catalog, logger *log.Logger) *PlayerStateMachine {
	if logger == nil {
		logger = log.Default()
	}
	return &PlayerStateMachine{
		catalog: catalog,
		logger:  logger,
		facing:  cfg.FacingDown,
		action:  cfg.ActionIdle,
	}
}

func (m *PlayerStateMachine) Facing() cfg.Facing {
	return m.facing
}

func (m *PlayerStateMachine) Action() cfg.PlayerAction {
	return m.action
}

// Subscribe attaches the machine to the world's player state event queue.
func (m *PlayerStateMachine) Subscribe(w donburi.World) {
	components.PlayerStateEvent.Subscribe(w, m.Handle)
}

// Update drains every event queued this frame, oldest first.
// Must run AFTER the input system and BEFORE the animation system, so a clip
// switch starts counting time in the same frame.
func (m *PlayerStateMachine) Update(e *ecs.ECS) {
	components.PlayerStateEvent.ProcessEvents(e.World)
}

// Handle applies one event. Facing is committed before the clip lookup, so a
// missing clip still leaves the new facing in place.
func (m *PlayerStateMachine) Handle(w donburi.World, evt components.PlayerStateEventData) {
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}

	if evt.HasFacing {
		m.facing = evt.Facing
	}

	clip, ok := m.catalog.Lookup(evt.Action, m.facing)
	if !ok {
		m.logger.Printf("Warning: no animation for (%s, %s)", evt.Action, m.facing)
		return
	}
	m.action = evt.Action

	if !player.HasComponent(components.AnimationPlayer) {
		donburi.Add(player, components.AnimationPlayer, &components.AnimationPlayerData{})
	}
	components.AnimationPlayer.Get(player).SetClip(clip)
}
