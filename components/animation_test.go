package components

import (
	"testing"
	"time"

	"github.com/automoto/olsen/assets"
	"github.com/automoto/olsen/assets/animations"
)

// sheetSet resolves a fixed set of handles.
type sheetSet map[assets.Handle]bool

func (s sheetSet) Resolve(h assets.Handle) (*assets.Atlas, bool) {
	if !s[h] {
		return nil, false
	}
	return &assets.Atlas{}, true
}

func testClip(h assets.Handle, frames int) *animations.Clip {
	return &animations.Clip{
		Sheet:      "test.png",
		CellWidth:  8,
		CellHeight: 8,
		Columns:    frames,
		Rows:       1,
		Interval:   25 * time.Millisecond,
		Atlas:      h,
	}
}

func TestAnimationPlayer_SetClipRestarts(t *testing.T) {
	ready := sheetSet{1: true, 2: true}
	a, b := testClip(1, 4), testClip(2, 4)

	var player AnimationPlayerData
	if !player.SetClip(a) {
		t.Fatal("Expected first SetClip to switch")
	}
	player.Tick(25*time.Millisecond, ready)
	player.Tick(10*time.Millisecond, ready)

	if !player.SetClip(b) {
		t.Fatal("Expected switch to a different clip")
	}
	if player.Current.Frame() != 0 || player.Current.Elapsed() != 0 {
		t.Errorf("Expected reset on switch, got frame %d elapsed %s", player.Current.Frame(), player.Current.Elapsed())
	}
	if player.Current.FrameCount != 4 || player.Current.Interval != 25*time.Millisecond {
		t.Errorf("Expected frame count and interval copied from clip, got %d and %s", player.Current.FrameCount, player.Current.Interval)
	}
}

func TestAnimationPlayer_SameClipIsNoOp(t *testing.T) {
	ready := sheetSet{1: true}
	clip := testClip(1, 5)

	var player AnimationPlayerData
	player.SetClip(clip)
	player.Tick(25*time.Millisecond, ready)
	player.Tick(25*time.Millisecond, ready)
	player.Tick(5*time.Millisecond, ready)

	if player.SetClip(clip) {
		t.Error("Expected SetClip with the playing clip to report no switch")
	}
	if player.Current.Frame() != 2 {
		t.Errorf("Expected frame 2 to be kept, got %d", player.Current.Frame())
	}
	if player.Current.Elapsed() != 5*time.Millisecond {
		t.Errorf("Expected timer to be kept at 5ms, got %s", player.Current.Elapsed())
	}
}

func TestAnimationPlayer_FrameWrap(t *testing.T) {
	ready := sheetSet{1: true}

	var player AnimationPlayerData
	player.SetClip(testClip(1, 5))

	var frames []int
	for i := 0; i < 5; i++ {
		if got := player.Tick(25*time.Millisecond, ready); got != TickAdvanced {
			t.Fatalf("tick %d: expected TickAdvanced, got %d", i, got)
		}
		frames = append(frames, player.Current.Frame())
	}

	want := []int{1, 2, 3, 4, 0}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("Expected frames %v, got %v", want, frames)
		}
	}
}

func TestAnimationPlayer_StallsUntilSheetResolves(t *testing.T) {
	sheets := sheetSet{}

	var player AnimationPlayerData
	player.SetClip(testClip(7, 3))

	if got := player.Tick(10*time.Millisecond, sheets); got != TickWaiting {
		t.Errorf("Expected TickWaiting below the interval, got %d", got)
	}
	if got := player.Tick(15*time.Millisecond, sheets); got != TickStalled {
		t.Errorf("Expected TickStalled, got %d", got)
	}
	if player.Current.Frame() != 0 {
		t.Errorf("Expected frame to stay 0 while stalled, got %d", player.Current.Frame())
	}
	if player.Current.Elapsed() != 0 {
		t.Errorf("Expected timer to restart after a stalled tick, got %s", player.Current.Elapsed())
	}

	sheets[7] = true
	if got := player.Tick(25*time.Millisecond, sheets); got != TickAdvanced {
		t.Errorf("Expected TickAdvanced once loaded, got %d", got)
	}
	if player.Current.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", player.Current.Frame())
	}
}

func TestAnimationPlayer_View(t *testing.T) {
	var player AnimationPlayerData
	if _, ok := player.View(); ok {
		t.Error("Expected no view without a clip")
	}

	clip := testClip(3, 2)
	clip.FlipX = true
	player.SetClip(clip)
	player.Tick(25*time.Millisecond, sheetSet{3: true})

	view, ok := player.View()
	if !ok {
		t.Fatal("Expected a view")
	}
	want := SpriteView{Atlas: 3, Frame: 1, FlipX: true}
	if view != want {
		t.Errorf("Expected %+v, got %+v", want, view)
	}
}
