package core

import (
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/controls"
	"github.com/automoto/tower-climb/physics"
	"github.com/automoto/tower-climb/world"
)

// Pilot plays the tower in place of a person, through the same Controls a
// keyboard would drive.
type Pilot interface {
	Drive(ctl *controls.Controls, w *world.World, frame uint64)
}

// Idle never touches the controls.
type Idle struct{}

func (Idle) Drive(*controls.Controls, *world.World, uint64) {}

// Wanderer walks until it meets a wall, turns around, and charge-jumps on a
// fixed rhythm.
type Wanderer struct {
	ChargeEvery uint64 // Frames between jumps
	ChargeFor   uint64 // Frames the jump is held

	dir      int
	chargeAt uint64
}

func NewWanderer() *Wanderer {
	return &Wanderer{ChargeEvery: 150, ChargeFor: 40, dir: 1}
}

func (p *Wanderer) Drive(ctl *controls.Controls, w *world.World, frame uint64) {
	pl := w.Player()

	if p.dir == 0 {
		p.dir = 1
	}
	switch pl.WallContact() {
	case physics.WallRight:
		p.turn(ctl, -1)
	case physics.WallLeft:
		p.turn(ctl, 1)
	}
	ctl.Press(p.action())

	held := ctl.IsHeld(cfg.ActionJump)
	switch {
	case held && frame-p.chargeAt >= p.ChargeFor:
		ctl.Release(cfg.ActionJump)
	case !held && pl.Body().Grounded && p.ChargeEvery > 0 && frame%p.ChargeEvery == 0:
		ctl.Press(cfg.ActionJump)
		p.chargeAt = frame
	}
}

func (p *Wanderer) turn(ctl *controls.Controls, dir int) {
	if p.dir == dir {
		return
	}
	ctl.Release(p.action())
	p.dir = dir
}

func (p *Wanderer) action() cfg.ActionID {
	if p.dir < 0 {
		return cfg.ActionMoveLeft
	}
	return cfg.ActionMoveRight
}
