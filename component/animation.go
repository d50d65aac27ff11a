package component

// Animation steps through a frame sequence at a fixed rate in frames per
// second. The index is fractional so the rate is independent of the tick
// rate. Frames may be swapped without touching the index.
type Animation struct {
	Frames []*Frame
	Speed  float64
	Index  float64
}

// NewAnimation creates an animation starting at the first frame.
func NewAnimation(frames []*Frame, speed float64) *Animation {
	return &Animation{Frames: frames, Speed: speed}
}

// Advance moves the index forward by Speed*dt. The index keeps growing and
// Current wraps it, so looping never faults on a shorter frame list.
func (a *Animation) Advance(dt float64) {
	if a == nil {
		return
	}
	a.Index += a.Speed * dt
}

// AdvanceClamped moves the index forward but holds it on the last frame.
func (a *Animation) AdvanceClamped(dt float64) {
	if a == nil {
		return
	}
	last := float64(len(a.Frames) - 1)
	a.Index = min(a.Index+a.Speed*dt, max(last, 0))
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.Index = 0
}

// Current returns the frame under the index, wrapping past the end.
func (a *Animation) Current() *Frame {
	if a == nil || len(a.Frames) == 0 {
		return nil
	}
	i := int(a.Index) % len(a.Frames)
	if i < 0 {
		i += len(a.Frames)
	}
	return a.Frames[i]
}

// Len returns the frame count.
func (a *Animation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Frames)
}
