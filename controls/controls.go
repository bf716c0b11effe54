// Package controls turns keyboard, gamepad and pointer events into the
// player.Input snapshot the world reads at the start of every frame.
//
// It never polls a device itself; the presentation layer feeds it action
// presses and releases, stick values and pointer events.
package controls

import (
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/player"
	"github.com/automoto/tower-climb/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

type Controls struct {
	held [cfg.ActionCount]bool

	moveDir  int
	climbDir int // -1 up
	jumpHeld bool

	walkTarget  *dmath.Vec2
	jumpTrigger *dmath.Vec2

	// Pointer gesture
	playerPos  dmath.Vec2
	pointerOn  bool
	touchStart dmath.Vec2
	worldStart dmath.Vec2
	swiping    bool
	swipe      dmath.Vec2

	interact bool
}

func New() *Controls {
	return &Controls{}
}

// Press records an action going down.
func (c *Controls) Press(a cfg.ActionID) {
	if a <= cfg.ActionNone || a >= cfg.ActionCount {
		return
	}
	c.held[a] = true

	switch a {
	case cfg.ActionJump:
		c.jumpHeld = true
	case cfg.ActionClimbUp:
		c.climbDir = -1
	case cfg.ActionClimbDown:
		c.climbDir = 1
	case cfg.ActionMoveLeft:
		c.moveDir = -1
	case cfg.ActionMoveRight:
		c.moveDir = 1
	case cfg.ActionInteract:
		c.interact = true
	}
}

// Release records an action going up. Letting go of one direction while
// the opposite one is still held switches to the opposite direction.
func (c *Controls) Release(a cfg.ActionID) {
	if a <= cfg.ActionNone || a >= cfg.ActionCount {
		return
	}
	c.held[a] = false

	switch a {
	case cfg.ActionJump:
		c.jumpHeld = false
	case cfg.ActionMoveLeft:
		c.moveDir = c.fallback(cfg.ActionMoveRight, 1)
	case cfg.ActionMoveRight:
		c.moveDir = c.fallback(cfg.ActionMoveLeft, -1)
	case cfg.ActionClimbUp:
		c.climbDir = c.fallback(cfg.ActionClimbDown, 1)
	case cfg.ActionClimbDown:
		c.climbDir = c.fallback(cfg.ActionClimbUp, -1)
	}
}

func (c *Controls) fallback(opposite cfg.ActionID, dir int) int {
	if c.held[opposite] {
		return dir
	}
	return 0
}

func (c *Controls) IsHeld(a cfg.ActionID) bool {
	if a <= cfg.ActionNone || a >= cfg.ActionCount {
		return false
	}
	return c.held[a]
}

func (c *Controls) SetJumpHeld(held bool)   { c.jumpHeld = held }
func (c *Controls) SetMoveDirection(d int)  { c.moveDir = clampDir(d) }
func (c *Controls) SetClimbDirection(d int) { c.climbDir = clampDir(d) }

func clampDir(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// SetJoystick maps a stick (-1..1 per axis, negative Y up) onto the move and
// climb directions using the configured deadzones.
func (c *Controls) SetJoystick(x, y float64) {
	c.moveDir = gamemath.AxisDirection(x, cfg.Input.JoystickDeadzoneX)
	c.climbDir = gamemath.AxisDirection(y, cfg.Input.JoystickDeadzoneY)
}

// TriggerJump queues a jump direction, as a completed swipe would.
func (c *Controls) TriggerJump(dir dmath.Vec2) {
	c.jumpTrigger = &dir
}

// SetPlayerPosition tells the gesture detector where the player is in
// world space.
func (c *Controls) SetPlayerPosition(p dmath.Vec2) {
	c.playerPos = p
}

// PointerDown starts a gesture. Pressing near the player begins a swipe;
// anywhere else may become a tap-to-walk.
func (c *Controls) PointerDown(screen, world dmath.Vec2) {
	c.pointerOn = true
	c.touchStart = screen
	c.worldStart = world
	c.swipe = dmath.Vec2{}

	d := gamemath.Distance(world.X, world.Y, c.playerPos.X, c.playerPos.Y)
	c.swiping = d < cfg.Input.PlayerTapRadius
}

func (c *Controls) PointerMove(screen dmath.Vec2) {
	if !c.pointerOn {
		return
	}
	c.swipe = dmath.Vec2{X: screen.X - c.touchStart.X, Y: screen.Y - c.touchStart.Y}
}

// PointerUp ends the gesture. A long enough swipe that began on the player
// becomes a jump trigger pointing opposite to the drag vertically. A short
// press away from the player sets a walk target.
func (c *Controls) PointerUp() {
	if !c.pointerOn {
		return
	}

	if c.swiping {
		if x, y, ok := gamemath.SwipeDirection(c.swipe.X, c.swipe.Y, cfg.Input.SwipeMinDistance); ok {
			c.jumpTrigger = &dmath.Vec2{X: x, Y: y}
		}
	} else if gamemath.Distance(0, 0, c.swipe.X, c.swipe.Y) <= cfg.Input.SwipeMinDistance {
		target := c.worldStart
		c.walkTarget = &target
	}

	c.pointerOn = false
	c.swiping = false
	c.swipe = dmath.Vec2{}
}

func (c *Controls) IsSwiping() bool { return c.swiping }

func (c *Controls) ClearJumpTrigger() { c.jumpTrigger = nil }
func (c *Controls) ClearWalkTarget()  { c.walkTarget = nil }

// ConsumeInteract reports an interact press since the last call.
func (c *Controls) ConsumeInteract() bool {
	pressed := c.interact
	c.interact = false
	return pressed
}

// Apply clears whatever the player's frame events say was consumed.
func (c *Controls) Apply(ev player.Events) {
	if ev.WalkTargetReached {
		c.ClearWalkTarget()
	}
	if ev.JumpTriggerCleared {
		c.ClearJumpTrigger()
	}
}

// Reset drops pending gestures and a queued interact, used on section
// changes and respawns. Keys that are physically still down keep steering:
// only press and release edges are ever fed in, so the directions are
// re-derived from what is held.
func (c *Controls) Reset() {
	c.walkTarget = nil
	c.jumpTrigger = nil
	c.swipe = dmath.Vec2{}
	c.swiping = false
	c.pointerOn = false
	c.interact = false
	c.moveDir = c.heldDirection(cfg.ActionMoveLeft, cfg.ActionMoveRight, c.moveDir)
	c.climbDir = c.heldDirection(cfg.ActionClimbUp, cfg.ActionClimbDown, c.climbDir)
}

// heldDirection keeps current while its key is down, otherwise falls back
// to whichever of the pair is held.
func (c *Controls) heldDirection(neg, pos cfg.ActionID, current int) int {
	switch {
	case current < 0 && c.held[neg], current > 0 && c.held[pos]:
		return current
	case c.held[pos]:
		return 1
	case c.held[neg]:
		return -1
	}
	return 0
}

// Snapshot copies the current state for one frame.
func (c *Controls) Snapshot() player.Input {
	in := player.Input{
		MoveDir:  c.moveDir,
		ClimbDir: c.climbDir,
		JumpHeld: c.jumpHeld,
	}
	if c.walkTarget != nil {
		t := *c.walkTarget
		in.WalkTarget = &t
	}
	if c.jumpTrigger != nil {
		t := *c.jumpTrigger
		in.JumpTrigger = &t
	}
	return in
}
