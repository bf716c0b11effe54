// Package animations steps sprite frame indices over time.
package animations

import "time"

type Animation struct {
	First            int
	Last             int
	Step             int           // how many indices do we move per frame
	FrameTime        time.Duration // how long each frame stays up
	elapsed          time.Duration
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by dt, stepping as many frames as fit.
func (a *Animation) Update(dt time.Duration) {
	if a.FrameTime <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, frameTime time.Duration) *Animation {
	return &Animation{
		First:     first,
		Last:      last,
		Step:      step,
		FrameTime: frameTime,
		frame:     first,
	}
}
