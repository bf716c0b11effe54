package physics

import (
	"math"

	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/shared/gamemath"
)

func ApplyGravity(b *Body) {
	if b.Grounded {
		return
	}
	b.Velocity.Y = math.Min(b.Velocity.Y+cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
}

// ApplyFriction slows horizontal movement, harder on the ground than in
// the air.
func ApplyFriction(b *Body) {
	factor := cfg.Physics.AirResistance
	if b.Grounded {
		factor = cfg.Physics.Friction
	}
	b.Velocity.X = gamemath.Damp(b.Velocity.X, factor, cfg.Physics.MinVelocity)
}

// MoveTowards walks the body toward targetX at player speed. It returns true
// and stops once within the move epsilon.
func MoveTowards(b *Body, targetX float64) bool {
	diff := targetX - b.Position.X
	if math.Abs(diff) < cfg.Physics.MoveEpsilon {
		b.Velocity.X = 0
		return true
	}

	dir := gamemath.Sign(diff)
	b.Velocity.X = cfg.Physics.PlayerSpeed * dir
	b.FacingRight = dir > 0
	return false
}

// ClimbTowards is MoveTowards on the vertical axis at climb speed.
func ClimbTowards(b *Body, targetY float64) bool {
	diff := targetY - b.Position.Y
	if math.Abs(diff) < cfg.Physics.MoveEpsilon {
		b.Velocity.Y = 0
		return true
	}

	b.Velocity.Y = cfg.Physics.ClimbSpeed * gamemath.Sign(diff)
	return false
}

// Jump applies a fixed upward impulse. Airborne bodies are left alone.
func Jump(b *Body, force float64) {
	if !b.Grounded {
		return
	}
	b.Velocity.Y = force
	b.Grounded = false
}

// ChargeJump launches a grounded body. charge is the fraction of a full
// charge in [0,1] and aimX the horizontal aim in [-1,1].
func ChargeJump(b *Body, charge, aimX float64) {
	if !b.Grounded {
		return
	}

	minForce := cfg.Physics.ChargeJumpMinForce
	maxForce := cfg.Physics.ChargeJumpMaxForce
	b.Velocity.Y = gamemath.Lerp(minForce, maxForce, charge)
	b.Velocity.X = aimX * cfg.Physics.ChargeJumpHorizontal * charge

	if aimX != 0 {
		b.FacingRight = aimX > 0
	}
	b.Grounded = false
}

// UpdatePosition integrates one Euler step.
func UpdatePosition(b *Body) {
	b.Position.X += b.Velocity.X
	b.Position.Y += b.Velocity.Y
	b.SyncBounds()
}

// ResolveTerrainCollision pushes the body out of every overlapping tile
// along the axis of least overlap. Tiles are handled in slice order, so the
// first tile in the list decides the outcome when several overlap at once.
func ResolveTerrainCollision(b *Body, terrain []AABB) {
	b.Grounded = CheckGrounded(b, terrain)

	for _, tile := range terrain {
		if !b.Bounds.Overlaps(tile) {
			continue
		}

		overlapX := math.Min(b.Bounds.Right()-tile.X, tile.Right()-b.Bounds.X)
		overlapY := math.Min(b.Bounds.Bottom()-tile.Y, tile.Bottom()-b.Bounds.Y)

		if overlapX < overlapY {
			if b.Position.X < tile.X {
				b.Position.X = tile.X - b.Bounds.Width
			} else {
				b.Position.X = tile.Right()
			}
			b.Velocity.X = 0
		} else {
			if b.Position.Y < tile.Y {
				// Landing
				b.Position.Y = tile.Y - b.Bounds.Height
				b.Velocity.Y = 0
				b.Grounded = true
			} else {
				// Head bump
				b.Position.Y = tile.Bottom()
				b.Velocity.Y = 0
			}
		}

		b.SyncBounds()
	}
}

// CheckGrounded probes a thin strip just under the body's feet.
func CheckGrounded(b *Body, terrain []AABB) bool {
	margin := cfg.Collision.TerrainMarginX
	sensor := AABB{
		X:      b.Bounds.X + margin,
		Y:      b.Bounds.Bottom(),
		Width:  b.Bounds.Width - margin*2,
		Height: cfg.Collision.GroundSensorHeight,
	}

	for _, tile := range terrain {
		if sensor.Overlaps(tile) {
			return true
		}
	}
	return false
}

// IsTouchingWall checks thin sensors on both flanks. For each tile the left
// sensor is tested before the right.
func IsTouchingWall(b *Body, terrain []AABB) WallSide {
	w := cfg.Collision.WallSensorWidth
	m := cfg.Collision.WallSensorMargin

	left := AABB{X: b.Bounds.X - w, Y: b.Bounds.Y + m, Width: w, Height: b.Bounds.Height - m*2}
	right := AABB{X: b.Bounds.Right(), Y: b.Bounds.Y + m, Width: w, Height: b.Bounds.Height - m*2}

	for _, tile := range terrain {
		if left.Overlaps(tile) {
			return WallLeft
		}
		if right.Overlaps(tile) {
			return WallRight
		}
	}
	return WallNone
}

// WallJump kicks the body up and away from the wall it touches.
func WallJump(b *Body, side WallSide) {
	b.Velocity.Y = cfg.Physics.WallJumpForce
	if side == WallLeft {
		b.Velocity.X = cfg.Physics.WallKickForce
	} else {
		b.Velocity.X = -cfg.Physics.WallKickForce
	}
	b.FacingRight = side == WallLeft
	b.Grounded = false
}

// ApplyWallSlide caps the fall speed while sliding down a wall.
func ApplyWallSlide(b *Body) {
	if b.Velocity.Y > cfg.Physics.WallSlideSpeed {
		b.Velocity.Y = cfg.Physics.WallSlideSpeed
	}
}

// IsOnLadder returns the first ladder whose horizontal span contains the
// body's center and whose vertical span overlaps the body.
func IsOnLadder(b *Body, ladders []AABB) (AABB, bool) {
	cx := b.Bounds.CenterX()
	for _, l := range ladders {
		if cx < l.X || cx > l.Right() {
			continue
		}
		if b.Bounds.Bottom() > l.Y && b.Bounds.Y < l.Bottom() {
			return l, true
		}
	}
	return AABB{}, false
}

// Climb moves the body along a ladder. dir is -1 for up and 1 for down.
func Climb(b *Body, dir float64) {
	b.Velocity.Y = cfg.Physics.ClimbSpeed * dir
	b.Velocity.X = 0
}
