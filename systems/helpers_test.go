package systems

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/automoto/olsen/assets"
	"github.com/automoto/olsen/assets/animations"
	"github.com/automoto/olsen/components"
	cfg "github.com/automoto/olsen/config"
	"github.com/automoto/olsen/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeSheets hands out handles and resolves the ones marked ready.
// BuildCatalog calls Load from several goroutines.
type fakeSheets struct {
	mu    sync.Mutex
	next  assets.Handle
	ready map[assets.Handle]bool
}

func newFakeSheets() *fakeSheets {
	return &fakeSheets{ready: make(map[assets.Handle]bool)}
}

func (s *fakeSheets) Load(path string, grid assets.Grid) assets.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.ready[s.next] = true
	return s.next
}

func (s *fakeSheets) Resolve(h assets.Handle) (*assets.Atlas, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready[h] {
		return nil, false
	}
	return &assets.Atlas{}, true
}

func (s *fakeSheets) setReady(h assets.Handle, ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready[h] = ready
}

type testWorld struct {
	t       *testing.T
	ecs     *ecs.ECS
	player  *donburi.Entry
	sheets  *fakeSheets
	catalog *animations.Catalog
	machine *PlayerStateMachine
	logs    *bytes.Buffer
}

// newTestWorld builds a world with a player bound to (idle, down) and a state
// machine over defs.
func newTestWorld(t *testing.T, defs map[cfg.ClipKey]cfg.ClipDef) *testWorld {
	t.Helper()

	sheets := newFakeSheets()
	catalog, err := animations.BuildCatalog(defs, sheets)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	logs := &bytes.Buffer{}
	logger := log.New(logs, "", 0)

	e := ecs.NewECS(donburi.NewWorld())
	machine := NewPlayerStateMachine(catalog, logger)
	machine.Subscribe(e.World)

	clip, _ := catalog.Lookup(cfg.ActionIdle, cfg.FacingDown)
	player := factory.CreatePlayer(e, 0, 0, clip)

	return &testWorld{
		t:       t,
		ecs:     e,
		player:  player,
		sheets:  sheets,
		catalog: catalog,
		machine: machine,
		logs:    logs,
	}
}

// send queues events and drains them the way a frame does.
func (w *testWorld) send(events ...components.PlayerStateEventData) {
	for _, evt := range events {
		components.PlayerStateEvent.Publish(w.ecs.World, evt)
	}
	w.machine.Update(w.ecs)
}

func (w *testWorld) anim() *components.AnimationPlayerData {
	return components.AnimationPlayer.Get(w.player)
}

func (w *testWorld) clip(action cfg.PlayerAction, facing cfg.Facing) *animations.Clip {
	w.t.Helper()
	c, ok := w.catalog.Lookup(action, facing)
	if !ok {
		w.t.Fatalf("No clip for (%s, %s) in catalog", action, facing)
	}
	return c
}

func (w *testWorld) logLines() int {
	return strings.Count(w.logs.String(), "\n")
}

// withoutClip returns the default table minus one entry.
func withoutClip(key cfg.ClipKey) map[cfg.ClipKey]cfg.ClipDef {
	defs := make(map[cfg.ClipKey]cfg.ClipDef, len(cfg.PlayerAnimations))
	for k, v := range cfg.PlayerAnimations {
		if k != key {
			defs[k] = v
		}
	}
	return defs
}
