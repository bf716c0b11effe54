package factory

import (
	"github.com/automoto/tower-climb/assets/animations"
	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
)

// GenerateAnimations builds an AnimationData component from a state ->
// definition table in config.
func GenerateAnimations(defs map[cfg.EntityState]cfg.AnimationDef) *components.AnimationData {
	animData := &components.AnimationData{
		Animations: make(map[cfg.EntityState]*animations.Animation, len(defs)),
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.FrameTime)
	}
	animData.SetAnimation(cfg.Idle)
	return animData
}
