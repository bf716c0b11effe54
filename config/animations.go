package config

import "time"

type AnimationDef struct {
	First     int
	Last      int
	Step      int
	FrameTime time.Duration
}

// PlayerAnimations maps each player state to its frame cycle. The renderer
// uses the frame index to pose the player.
var PlayerAnimations = map[EntityState]AnimationDef{
	Idle:   {First: 0, Last: 3, Step: 1, FrameTime: 180 * time.Millisecond},
	Walk:   {First: 0, Last: 5, Step: 1, FrameTime: 90 * time.Millisecond},
	Jump:   {First: 0, Last: 0, Step: 1},
	Fall:   {First: 0, Last: 0, Step: 1},
	Climb:  {First: 0, Last: 3, Step: 1, FrameTime: 120 * time.Millisecond},
	Charge: {First: 0, Last: 1, Step: 1, FrameTime: 60 * time.Millisecond},
	Hit:    {First: 0, Last: 2, Step: 1, FrameTime: 80 * time.Millisecond},
}
