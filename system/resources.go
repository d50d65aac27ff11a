package system

import (
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/obj"
)

// Cue is a playable sound.
type Cue interface {
	Play()
}

// Resources are the frames and cues a World builds entities from.
type Resources struct {
	Player obj.PlayerFrames
	Bee    []*component.Frame
	Snake  []*component.Frame
	Bullet *component.Frame
	Fire   *component.Frame
	Cues   map[string]Cue
}

// Play starts the named cue. Unknown cues are skipped.
func (r *Resources) Play(name string) {
	if r == nil {
		return
	}
	if c, ok := r.Cues[name]; ok && c != nil {
		c.Play()
	}
}
