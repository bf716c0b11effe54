package components

import (
	"github.com/automoto/tower-climb/assets/animations"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     cfg.EntityState
	Animations       map[cfg.EntityState]*animations.Animation
}

func (a *AnimationData) SetAnimation(state cfg.EntityState) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	a.CurrentState = state
	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		return
	}
	if a.CurrentAnimation != anim {
		a.CurrentAnimation = anim
		a.CurrentAnimation.Restart()
	}
}

// Frame is the current frame index, or 0 without an animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
