package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/olsen/assets"
	"github.com/automoto/olsen/assets/animations"
	"github.com/automoto/olsen/components"
	cfg "github.com/automoto/olsen/config"
	"github.com/automoto/olsen/systems"
	"github.com/automoto/olsen/systems/factory"
	"github.com/automoto/olsen/tags"
	"github.com/automoto/olsen/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerScene is the single playable scene: one player driven by the keyboard.
type PlayerScene struct {
	ecs     *ecs.ECS
	sheets  *assets.SheetLoader
	catalog *animations.Catalog
	logger  *log.Logger

	input   *systems.InputDebouncer
	machine *systems.PlayerStateMachine
	overlay *ui.DebugOverlay

	once sync.Once
}

// NewPlayerScene creates the scene over an already built catalog.
func NewPlayerScene(sheets *assets.SheetLoader, catalog *animations.Catalog, logger *log.Logger) *PlayerScene {
	return &PlayerScene{sheets: sheets, catalog: catalog, logger: logger}
}

func (ps *PlayerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if ps.overlay != nil {
		ps.refreshOverlay()
		ps.overlay.Update()
	}
}

func (ps *PlayerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.ClearColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	ps.input = systems.NewInputDebouncer(cfg.Input)
	ps.machine = systems.NewPlayerStateMachine(ps.catalog, ps.logger)
	ps.machine.Subscribe(e.World)
	animator := systems.NewAnimator(ps.sheets, ps.logger, cfg.C.TPS)

	// Order matters: input -> state -> animation
	e.AddSystem(ps.input.Update)
	e.AddSystem(ps.machine.Update)
	e.AddSystem(animator.Update)

	e.AddRenderer(cfg.Default, systems.NewSpriteRenderer(ps.sheets, cfg.Player.Scale).Draw)

	ps.ecs = e

	x, y := cfg.Player.DefaultSpawnX, cfg.Player.DefaultSpawnY
	stage, err := assets.LoadStage(cfg.Assets.StagePath)
	if err != nil {
		ps.logger.Printf("Warning: using default spawn: %v", err)
	} else if stage.HasSpawn {
		x, y = stage.SpawnX, stage.SpawnY
	}

	clip, ok := ps.catalog.Lookup(ps.machine.Action(), ps.machine.Facing())
	if !ok {
		ps.logger.Printf("Warning: no animation for (%s, %s)", ps.machine.Action(), ps.machine.Facing())
	}
	factory.CreatePlayer(ps.ecs, x, y, clip)

	if cfg.Debug.Overlay {
		ps.overlay = ui.NewDebugOverlay()
		e.AddRenderer(cfg.Overlay, func(_ *ecs.ECS, screen *ebiten.Image) {
			ps.overlay.Draw(screen)
		})
	}
}

func (ps *PlayerScene) refreshOverlay() {
	state := fmt.Sprintf("state: %s / %s", ps.machine.Action(), ps.machine.Facing())
	frame := "frame: -"
	if player, ok := tags.Player.First(ps.ecs.World); ok {
		anim := components.AnimationPlayer.Get(player)
		if anim.Current != nil {
			frame = fmt.Sprintf("frame: %d/%d  %s", anim.Current.Frame()+1, anim.Current.FrameCount, anim.Current.Clip.Sheet)
		}
	}
	input := "input: still"
	if ps.input.Held() {
		input = "input: moving"
	}
	ps.overlay.SetStatus(state, frame, input)
}
