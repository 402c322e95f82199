package animations

import "time"

// Animation is the playback clock of one clip: an elapsed-time accumulator
// and a frame index that wraps at the end of the grid.
type Animation struct {
	Clip       *Clip
	Interval   time.Duration
	FrameCount int
	elapsed    time.Duration
	frame      int
}

func NewAnimation(clip *Clip) *Animation {
	return &Animation{
		Clip:       clip,
		Interval:   clip.Interval,
		FrameCount: clip.Frames(),
	}
}

// Update adds dt to the accumulator and reports whether the interval elapsed.
// The accumulator restarts from zero; any remainder is dropped.
func (a *Animation) Update(dt time.Duration) bool {
	a.elapsed += dt
	if a.elapsed < a.Interval {
		return false
	}
	a.elapsed = 0
	return true
}

// Advance moves to the next frame, wrapping to the first.
func (a *Animation) Advance() {
	a.frame = (a.frame + 1) % a.FrameCount
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Elapsed() time.Duration {
	return a.elapsed
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
}
