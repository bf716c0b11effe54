// Package player owns the player's physics body and turns an input snapshot
// into charge jumps, ladder climbing, wall jumps and walking each frame.
package player

import (
	"math"
	"time"

	"github.com/automoto/tower-climb/chargejump"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/physics"
	"github.com/automoto/tower-climb/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

// Input is the per-frame snapshot read at the start of Update. Directions
// are -1, 0 or 1; ClimbDir -1 means up.
type Input struct {
	MoveDir     int
	ClimbDir    int
	JumpHeld    bool
	WalkTarget  *dmath.Vec2
	JumpTrigger *dmath.Vec2
}

// Events are the one-shot results of a frame for the input and presentation
// collaborators.
type Events struct {
	Jump               *chargejump.JumpVector // Charge jump released this frame
	WallJump           bool
	LadderJump         bool
	WalkTargetReached  bool // Caller should clear its walk target
	JumpTriggerCleared bool // Caller should drop its pending swipe trigger
}

type Controller struct {
	body   *physics.Body
	charge *chargejump.Machine

	visual         dmath.Vec2
	state          cfg.EntityState
	facingRight    bool
	climbing       bool
	justTeleported bool

	ladder      physics.AABB
	onLadder    bool
	wallContact physics.WallSide
	wasJumpHeld bool
}

func New(charge *chargejump.Machine) *Controller {
	return &Controller{
		charge:      charge,
		facingRight: true,
	}
}

// InitAtEntry creates the body standing on groundLevel at the entry point.
func (c *Controller) InitAtEntry(entry leveldata.EntryPoint, groundLevel float64) {
	x := entry.X + cfg.Player.CollisionOffsetX
	y := groundLevel - cfg.Player.CollisionHeight

	c.body = physics.NewBody(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	c.body.Grounded = true
	c.body.FacingRight = entry.Direction != leveldata.Left

	c.facingRight = c.body.FacingRight
	c.climbing = false
	c.wasJumpHeld = false
	c.charge.CancelCharge()
	c.state = cfg.Idle
	c.updateVisualPosition()
}

// Update advances the player by one frame. Without a body it does nothing.
func (c *Controller) Update(dt time.Duration, in Input, colliders, ladders []physics.AABB) Events {
	var ev Events
	if c.body == nil {
		return ev
	}

	c.ladder, c.onLadder = physics.IsOnLadder(c.body, ladders)
	c.handleClimbing(in, &ev)
	c.updateWallContact(colliders)
	c.handleChargeJump(dt, in, &ev)

	if !c.charge.IsCharging() {
		c.handleMovement(in, &ev)
	} else {
		// No walking while charging, the input only aims
		c.charge.SetAimDirection(float64(in.MoveDir))
	}

	c.applyPhysics(colliders)
	c.clampToBounds()
	c.updateVisualPosition()
	c.updateState(in)
	return ev
}

func (c *Controller) handleClimbing(in Input, ev *Events) {
	if !c.onLadder {
		c.climbing = false
		return
	}

	if in.ClimbDir != 0 {
		c.climbing = true
		physics.Climb(c.body, float64(in.ClimbDir))
		if in.JumpTrigger != nil {
			ev.JumpTriggerCleared = true
		}

		bottom := c.ladder.Bottom() - cfg.Player.CollisionHeight
		if c.body.Position.Y > bottom {
			c.body.Position.Y = bottom
			c.body.Velocity.Y = 0
		}
	} else if c.climbing {
		c.body.Velocity.Y = 0
	}
}

func (c *Controller) updateWallContact(colliders []physics.AABB) {
	if c.climbing {
		c.wallContact = physics.WallNone
		return
	}
	c.wallContact = physics.IsTouchingWall(c.body, colliders)
}

// handleChargeJump is edge-triggered on the jump button.
func (c *Controller) handleChargeJump(dt time.Duration, in Input, ev *Events) {
	held := in.JumpHeld
	pressed := held && !c.wasJumpHeld
	released := !held && c.wasJumpHeld
	c.wasJumpHeld = held

	// Ladder jump: instant, not charged
	if c.climbing && pressed {
		c.climbing = false
		c.body.Velocity.Y = cfg.Physics.JumpForce
		c.body.Velocity.X = float64(in.MoveDir) * cfg.Physics.PlayerSpeed
		ev.LadderJump = true
		return
	}

	if c.wallContact != physics.WallNone && !c.body.Grounded && pressed {
		physics.WallJump(c.body, c.wallContact)
		c.facingRight = c.body.FacingRight
		ev.WallJump = true
		return
	}

	if !c.body.Grounded || c.climbing {
		// Charge only survives on the ground
		if c.charge.IsCharging() {
			c.charge.CancelCharge()
		}
		return
	}

	if pressed {
		c.charge.StartCharge()
	}
	if held && c.charge.IsCharging() {
		c.charge.UpdateCharge(dt)
	}
	if released && c.charge.IsCharging() {
		level := c.charge.Percent() / 100
		aim := c.charge.AimDirection()

		jv, ok := c.charge.ReleaseJump()
		if ok {
			physics.ChargeJump(c.body, level, aim)
			if aim != 0 {
				c.facingRight = aim > 0
			}
			ev.Jump = &jv
		}
	}
}

func (c *Controller) handleMovement(in Input, ev *Events) {
	if c.climbing {
		return
	}

	if in.MoveDir != 0 {
		c.body.Velocity.X = float64(in.MoveDir) * cfg.Physics.PlayerSpeed
		c.body.FacingRight = in.MoveDir > 0
		c.facingRight = c.body.FacingRight
		return
	}

	if in.WalkTarget != nil {
		reached := physics.MoveTowards(c.body, in.WalkTarget.X)
		c.facingRight = c.body.FacingRight
		ev.WalkTargetReached = reached
	}
}

func (c *Controller) applyPhysics(colliders []physics.AABB) {
	if !c.climbing {
		physics.ApplyGravity(c.body)
		if c.wallContact != physics.WallNone && !c.body.Grounded && c.body.Velocity.Y > 0 {
			physics.ApplyWallSlide(c.body)
		}
		physics.ApplyFriction(c.body)
	}

	physics.UpdatePosition(c.body)

	if !c.climbing {
		physics.ResolveTerrainCollision(c.body, colliders)
	}
}

// clampToBounds keeps the body inside the page horizontally. Vertical limits
// only apply when configured; the tower leaves them unset.
func (c *Controller) clampToBounds() {
	b := cfg.Bounds
	minX := b.MinX + cfg.Player.WallMarginLeft
	maxX := b.MaxX - cfg.Player.CollisionWidth - cfg.Player.WallMarginRight
	c.body.Position.X = math.Max(minX, math.Min(c.body.Position.X, maxX))

	if b.MinY != nil {
		c.body.Position.Y = math.Max(*b.MinY, c.body.Position.Y)
	}
	if b.MaxY != nil {
		c.body.Position.Y = math.Min(*b.MaxY, c.body.Position.Y)
	}
	c.body.SyncBounds()
}

func (c *Controller) updateVisualPosition() {
	c.visual = dmath.Vec2{
		X: c.body.Position.X - cfg.Player.CollisionOffsetX,
		Y: c.body.Position.Y - cfg.Player.CollisionOffsetY,
	}
}

func (c *Controller) updateState(in Input) {
	switch {
	case c.charge.IsCharging():
		c.state = cfg.Charge
	case c.climbing:
		c.state = cfg.Climb
	case !c.body.Grounded:
		c.state = cfg.Jump
	case math.Abs(c.body.Velocity.X) > cfg.Player.WalkSpeedThreshold || in.MoveDir != 0:
		c.state = cfg.Walk
	default:
		c.state = cfg.Idle
	}
}

// TeleportTo places the player's sprite at x with its feet on y. It panics
// if the player was never initialised.
func (c *Controller) TeleportTo(x, y float64) {
	if c.body == nil {
		panic("player: TeleportTo before InitAtEntry")
	}

	c.body.Position = dmath.Vec2{
		X: x + cfg.Player.CollisionOffsetX,
		Y: y - cfg.Player.CollisionHeight,
	}
	c.body.Velocity = dmath.Vec2{}
	c.body.Grounded = true
	c.body.SyncBounds()

	c.climbing = false
	c.charge.CancelCharge()
	c.updateVisualPosition()
	c.state = cfg.Idle
	c.justTeleported = true
}

// ConsumeTeleport reports whether a teleport happened since the last call
// and clears the flag.
func (c *Controller) ConsumeTeleport() bool {
	t := c.justTeleported
	c.justTeleported = false
	return t
}

// Reset drops the body. Update is a no-op until the next InitAtEntry.
func (c *Controller) Reset() {
	c.body = nil
	c.visual = dmath.Vec2{}
	c.state = cfg.Idle
	c.facingRight = true
	c.climbing = false
	c.wasJumpHeld = false
	c.wallContact = physics.WallNone
	c.charge.CancelCharge()
}

// Body is nil before InitAtEntry and after Reset.
func (c *Controller) Body() *physics.Body {
	return c.body
}

func (c *Controller) VisualPosition() dmath.Vec2    { return c.visual }
func (c *Controller) State() cfg.EntityState        { return c.state }
func (c *Controller) FacingRight() bool             { return c.facingRight }
func (c *Controller) IsClimbing() bool              { return c.climbing }
func (c *Controller) WallContact() physics.WallSide { return c.wallContact }
func (c *Controller) Charge() *chargejump.Machine   { return c.charge }
