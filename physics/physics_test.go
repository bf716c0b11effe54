package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tile(x, y float64) AABB { return AABB{X: x, Y: y, Width: 64, Height: 64} }

func TestOverlapsIsStrict(t *testing.T) {
	a := AABB{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, a.Overlaps(AABB{X: 9, Y: 9, Width: 10, Height: 10}))
	assert.False(t, a.Overlaps(AABB{X: 10, Y: 0, Width: 10, Height: 10}), "touching edges")
	assert.False(t, a.Overlaps(AABB{X: 0, Y: 10, Width: 10, Height: 10}))
}

func TestApplyGravityCapsFallSpeed(t *testing.T) {
	b := NewBody(0, 0, 48, 80)
	ApplyGravity(b)
	assert.InDelta(t, 0.35, b.Velocity.Y, 1e-9)

	b.Velocity.Y = 7.9
	ApplyGravity(b)
	assert.Equal(t, 8.0, b.Velocity.Y)

	b.Grounded = true
	b.Velocity.Y = 0
	ApplyGravity(b)
	assert.Equal(t, 0.0, b.Velocity.Y)
}

func TestApplyFriction(t *testing.T) {
	b := NewBody(0, 0, 48, 80)
	b.Grounded = true
	b.Velocity.X = 2
	ApplyFriction(b)
	assert.InDelta(t, 1.7, b.Velocity.X, 1e-9)

	b.Grounded = false
	ApplyFriction(b)
	assert.InDelta(t, 1.615, b.Velocity.X, 1e-9)

	b.Velocity.X = 0.1
	ApplyFriction(b)
	assert.Equal(t, 0.0, b.Velocity.X, "snaps below threshold")
}

func TestMoveTowards(t *testing.T) {
	b := NewBody(100, 0, 48, 80)
	assert.False(t, MoveTowards(b, 50))
	assert.Equal(t, -3.5, b.Velocity.X)
	assert.False(t, b.FacingRight)

	assert.True(t, MoveTowards(b, 104))
	assert.Equal(t, 0.0, b.Velocity.X)
}

func TestClimbTowards(t *testing.T) {
	b := NewBody(0, 100, 48, 80)
	assert.False(t, ClimbTowards(b, 0))
	assert.Equal(t, -3.0, b.Velocity.Y)
	assert.True(t, ClimbTowards(b, 97))
	assert.Equal(t, 0.0, b.Velocity.Y)
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	b := NewBody(0, 0, 48, 80)
	Jump(b, -9.5)
	assert.Equal(t, 0.0, b.Velocity.Y)

	b.Grounded = true
	Jump(b, -9.5)
	assert.Equal(t, -9.5, b.Velocity.Y)
	assert.False(t, b.Grounded)
}

func TestChargeJumpInterpolatesForce(t *testing.T) {
	b := NewBody(0, 0, 48, 80)
	b.Grounded = true
	ChargeJump(b, 1, -1)
	assert.Equal(t, -14.0, b.Velocity.Y)
	assert.Equal(t, -6.0, b.Velocity.X)
	assert.False(t, b.FacingRight)
	assert.False(t, b.Grounded)

	b.Grounded = true
	ChargeJump(b, 0.5, 0)
	assert.InDelta(t, -9.0, b.Velocity.Y, 1e-9)
	assert.Equal(t, 0.0, b.Velocity.X)
	assert.False(t, b.FacingRight, "zero aim keeps facing")
}

func TestUpdatePositionSyncsBounds(t *testing.T) {
	b := NewBody(10, 20, 48, 80)
	b.Velocity.X, b.Velocity.Y = 2, -3
	UpdatePosition(b)
	assert.Equal(t, 12.0, b.Position.X)
	assert.Equal(t, 17.0, b.Position.Y)
	assert.Equal(t, b.Position.X, b.Bounds.X)
	assert.Equal(t, b.Position.Y, b.Bounds.Y)
}

func TestResolveSingleOverlapLeavesNoOverlap(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		vx, vy float64
	}{
		{"landing", 100, 500, 1, 4},
		{"head bump", 100, 630, 1, -6},
		{"from left", 30, 540, 3, 1},
		{"from right", 120, 540, -3, 1},
	}
	ground := tile(64, 576)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(tc.x, tc.y, 48, 80)
			b.Velocity.X, b.Velocity.Y = tc.vx, tc.vy
			require.True(t, b.Bounds.Overlaps(ground))

			ResolveTerrainCollision(b, []AABB{ground})

			assert.False(t, b.Bounds.Overlaps(ground))
			assert.True(t, (b.Velocity.X == 0) != (b.Velocity.Y == 0), "exactly one axis resolved")
			assert.Equal(t, b.Position.X, b.Bounds.X)
			assert.Equal(t, b.Position.Y, b.Bounds.Y)
		})
	}
}

func TestResolveLandingSetsGrounded(t *testing.T) {
	b := NewBody(100, 500, 48, 80)
	b.Velocity.Y = 4
	ResolveTerrainCollision(b, []AABB{tile(64, 576)})
	assert.True(t, b.Grounded)
	assert.Equal(t, 496.0, b.Position.Y)
	assert.Equal(t, 0.0, b.Velocity.Y)
}

func TestResolveHeadBumpDoesNotGround(t *testing.T) {
	b := NewBody(100, 120, 48, 80)
	b.Velocity.Y = -6
	ResolveTerrainCollision(b, []AABB{tile(64, 64)})
	assert.False(t, b.Grounded)
	assert.Equal(t, 128.0, b.Position.Y)
}

// The body sinks into a two-tile column. Pushing out of the upper tile first
// clears the lower one as well; taking the lower tile first lifts the body
// onto it before the side push. Pins the slice-order tie-break.
func TestResolveFollowsListOrder(t *testing.T) {
	upper := tile(128, 448)
	lower := tile(128, 512)

	b := NewBody(100, 440, 48, 80)
	ResolveTerrainCollision(b, []AABB{upper, lower})
	assert.Equal(t, 80.0, b.Position.X)
	assert.Equal(t, 440.0, b.Position.Y)

	b = NewBody(100, 440, 48, 80)
	ResolveTerrainCollision(b, []AABB{lower, upper})
	assert.Equal(t, 80.0, b.Position.X)
	assert.Equal(t, 432.0, b.Position.Y)
}

func TestCheckGrounded(t *testing.T) {
	b := NewBody(100, 496, 48, 80)
	assert.True(t, CheckGrounded(b, []AABB{tile(64, 576)}))

	b = NewBody(100, 490, 48, 80)
	assert.False(t, CheckGrounded(b, []AABB{tile(64, 576)}), "gap wider than sensor")

	b = NewBody(62, 496, 48, 80)
	assert.False(t, CheckGrounded(b, []AABB{tile(0, 576)}), "sensor margin hangs off edge")
}

func TestIsTouchingWall(t *testing.T) {
	b := NewBody(64, 300, 48, 80)
	assert.Equal(t, WallLeft, IsTouchingWall(b, []AABB{tile(0, 300)}))

	b = NewBody(14, 300, 48, 80)
	assert.Equal(t, WallRight, IsTouchingWall(b, []AABB{tile(64, 300)}))

	b = NewBody(200, 300, 48, 80)
	assert.Equal(t, WallNone, IsTouchingWall(b, []AABB{tile(0, 300)}))
}

func TestWallJump(t *testing.T) {
	b := NewBody(0, 0, 48, 80)
	WallJump(b, WallLeft)
	assert.Equal(t, -8.5, b.Velocity.Y)
	assert.Equal(t, 5.0, b.Velocity.X)
	assert.True(t, b.FacingRight)

	WallJump(b, WallRight)
	assert.Equal(t, -5.0, b.Velocity.X)
	assert.False(t, b.FacingRight)
}

func TestApplyWallSlide(t *testing.T) {
	b := NewBody(0, 0, 48, 80)
	b.Velocity.Y = 6
	ApplyWallSlide(b)
	assert.Equal(t, 1.5, b.Velocity.Y)

	b.Velocity.Y = -3
	ApplyWallSlide(b)
	assert.Equal(t, -3.0, b.Velocity.Y)
}

func TestIsOnLadder(t *testing.T) {
	ladder := AABB{X: 32, Y: 128, Width: 64, Height: 448}

	b := NewBody(40, 400, 48, 80)
	got, ok := IsOnLadder(b, []AABB{ladder})
	require.True(t, ok)
	assert.Equal(t, ladder, got)

	b = NewBody(100, 400, 48, 80)
	_, ok = IsOnLadder(b, []AABB{ladder})
	assert.False(t, ok, "center outside span")

	b = NewBody(40, 48, 48, 80)
	_, ok = IsOnLadder(b, []AABB{ladder})
	assert.False(t, ok, "feet exactly at ladder top")
}

func TestClimb(t *testing.T) {
	b := NewBody(0, 0, 48, 80)
	b.Velocity.X = 3
	Climb(b, -1)
	assert.Equal(t, -3.0, b.Velocity.Y)
	assert.Equal(t, 0.0, b.Velocity.X)
}
