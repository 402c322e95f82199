package systems

import (
	"github.com/automoto/olsen/components"
	cfg "github.com/automoto/olsen/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// InputDebouncer turns keyboard edges into player state events. It remembers
// which movement keys are held so that releasing one of several held keys
// does not stop the player.
type InputDebouncer struct {
	movement map[ebiten.Key]cfg.Facing
	idleKey  ebiten.Key
	held     map[ebiten.Key]struct{}

	// Reusable key buffers to avoid allocations
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewInputDebouncer builds a debouncer over the given bindings. The movement
// key set is fixed for the debouncer's lifetime.
func NewInputDebouncer(bindings cfg.InputConfig) *InputDebouncer {
	return &InputDebouncer{
		movement: bindings.MovementKeys(),
		idleKey:  bindings.Idle,
		held:     make(map[ebiten.Key]struct{}),
	}
}

// Update polls this frame's key edges and publishes the resulting events.
// Must run BEFORE the player state system in the system order.
func (d *InputDebouncer) Update(e *ecs.ECS) {
	d.pressed = inpututil.AppendJustPressedKeys(d.pressed[:0])
	d.released = inpututil.AppendJustReleasedKeys(d.released[:0])

	for _, evt := range d.Debounce(d.pressed, d.released) {
		components.PlayerStateEvent.Publish(e.World, evt)
	}
}

// Debounce consumes one frame of edges, presses first, and returns the events
// in emission order.
func (d *InputDebouncer) Debounce(justPressed, justReleased []ebiten.Key) []components.PlayerStateEventData {
	var out []components.PlayerStateEventData

	for _, key := range justPressed {
		facing, ok := d.movement[key]
		if !ok {
			continue
		}
		if _, held := d.held[key]; held {
			// Not a new edge
			continue
		}
		d.held[key] = struct{}{}
		out = append(out, components.RunEvent(facing))
	}

	for _, key := range justReleased {
		if _, ok := d.movement[key]; ok {
			delete(d.held, key)
			if len(d.held) == 0 {
				out = append(out, components.IdleEvent())
			}
			continue
		}
		if key == d.idleKey {
			out = append(out, components.IdleEvent())
		}
	}

	return out
}

// Held reports whether any movement key is currently held.
func (d *InputDebouncer) Held() bool {
	return len(d.held) > 0
}
