package animations

import (
	"testing"
	"time"
)

func TestAnimation_WrapsOnExactBoundaries(t *testing.T) {
	clip := &Clip{CellWidth: 1, CellHeight: 1, Columns: 5, Rows: 1, Interval: 25 * time.Millisecond}
	anim := NewAnimation(clip)

	want := []int{1, 2, 3, 4, 0}
	for i, w := range want {
		if !anim.Update(25 * time.Millisecond) {
			t.Fatalf("tick %d: expected timer to fire", i)
		}
		anim.Advance()
		if anim.Frame() != w {
			t.Errorf("tick %d: expected frame %d, got %d", i, w, anim.Frame())
		}
		if anim.Elapsed() != 0 {
			t.Errorf("tick %d: expected accumulator reset, got %s", i, anim.Elapsed())
		}
	}
}

func TestAnimation_DropsRemainder(t *testing.T) {
	anim := NewAnimation(&Clip{CellWidth: 1, CellHeight: 1, Columns: 2, Rows: 2, Interval: 10 * time.Millisecond})

	if anim.Update(6 * time.Millisecond) {
		t.Fatal("Expected no fire below the interval")
	}
	if !anim.Update(6 * time.Millisecond) {
		t.Fatal("Expected fire at 12ms")
	}
	if anim.Elapsed() != 0 {
		t.Errorf("Expected the 2ms remainder to be dropped, got %s", anim.Elapsed())
	}
}

func TestAnimation_Restart(t *testing.T) {
	anim := NewAnimation(&Clip{CellWidth: 1, CellHeight: 1, Columns: 4, Rows: 1, Interval: time.Millisecond})
	anim.Advance()
	anim.Advance()
	anim.Update(500 * time.Microsecond)

	anim.Restart()

	if anim.Frame() != 0 || anim.Elapsed() != 0 {
		t.Errorf("Expected frame 0 and empty accumulator, got frame %d elapsed %s", anim.Frame(), anim.Elapsed())
	}
}

func TestAnimation_SingleFrameStaysPut(t *testing.T) {
	anim := NewAnimation(&Clip{CellWidth: 1, CellHeight: 1, Columns: 1, Rows: 1, Interval: time.Millisecond})
	for i := 0; i < 3; i++ {
		anim.Update(time.Millisecond)
		anim.Advance()
	}
	if anim.Frame() != 0 {
		t.Errorf("Expected frame 0, got %d", anim.Frame())
	}
}
