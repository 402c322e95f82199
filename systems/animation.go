package systems

import (
	"log"
	"time"

	"github.com/automoto/olsen/assets/animations"
	"github.com/automoto/olsen/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Animator advances every AnimationPlayer by one fixed step per game tick.
type Animator struct {
	sheets animations.Resolver
	logger *log.Logger
	step   time.Duration
}

// NewAnimator returns an animator clocked at tps ticks per second.
func NewAnimator(sheets animations.Resolver, logger *log.Logger, tps int) *Animator {
	if logger == nil {
		logger = log.Default()
	}
	if tps <= 0 {
		tps = 60
	}
	return &Animator{
		sheets: sheets,
		logger: logger,
		step:   time.Second / time.Duration(tps),
	}
}

func (a *Animator) Update(e *ecs.ECS) {
	a.Tick(e.World, a.step)
}

// Tick advances every animated entity by dt. Entities are independent: a
// stalled one does not hold back the others.
func (a *Animator) Tick(w donburi.World, dt time.Duration) {
	components.AnimationPlayer.Each(w, func(entry *donburi.Entry) {
		player := components.AnimationPlayer.Get(entry)
		if player.Tick(dt, a.sheets) != components.TickStalled || player.Stalled {
			return
		}
		// Reported once until the sheet resolves or the clip changes
		player.Stalled = true
		a.logger.Printf("Warning: entity %v: sheet %s not loaded, holding frame %d",
			entry.Entity(), player.Current.Clip.Sheet, player.Current.Frame())
	})
}
