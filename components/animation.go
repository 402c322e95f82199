package components

import (
	"time"

	"github.com/automoto/olsen/assets"
	"github.com/automoto/olsen/assets/animations"
	"github.com/yohamta/donburi"
)

// TickResult is the outcome of one AnimationPlayerData.Tick.
type TickResult int

const (
	TickWaiting  TickResult = iota // interval not reached yet
	TickAdvanced                   // moved to the next frame
	TickStalled                    // interval reached but the sheet is not loaded
)

// AnimationPlayerData plays one clip on an entity.
type AnimationPlayerData struct {
	Current *animations.Animation

	// Stalled is set once a stall has been reported, until the sheet
	// resolves or the clip changes.
	Stalled bool
}

// SetClip switches to clip, restarting playback. Switching to the clip that
// is already playing does nothing and reports false.
func (a *AnimationPlayerData) SetClip(clip *animations.Clip) bool {
	if a.Current != nil && a.Current.Clip == clip {
		return false
	}
	a.Current = animations.NewAnimation(clip)
	a.Stalled = false
	return true
}

// Tick advances the clock by dt. When the interval elapses the frame moves on
// only if the clip's sheet resolves.
func (a *AnimationPlayerData) Tick(dt time.Duration, sheets animations.Resolver) TickResult {
	if a.Current == nil || !a.Current.Update(dt) {
		return TickWaiting
	}
	if _, ok := sheets.Resolve(a.Current.Clip.Atlas); !ok {
		return TickStalled
	}
	a.Current.Advance()
	a.Stalled = false
	return TickAdvanced
}

// SpriteView is what the renderer reads from an animated entity.
type SpriteView struct {
	Atlas assets.Handle
	Frame int
	FlipX bool
	FlipY bool
}

// View returns the render tuple, or false when nothing is playing.
func (a *AnimationPlayerData) View() (SpriteView, bool) {
	if a.Current == nil {
		return SpriteView{}, false
	}
	clip := a.Current.Clip
	return SpriteView{
		Atlas: clip.Atlas,
		Frame: a.Current.Frame(),
		FlipX: clip.FlipX,
		FlipY: clip.FlipY,
	}, true
}

var AnimationPlayer = donburi.NewComponentType[AnimationPlayerData]()
