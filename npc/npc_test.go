package npc

import (
	"testing"
	"time"

	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const oneFrame = 16670 * time.Microsecond

func heroFrog() leveldata.NPC {
	return leveldata.NPC{
		ID:     "hero_frog",
		X:      112,
		Y:      352,
		Sprite: "frog",
		Patrol: &leveldata.PatrolRange{MinX: 104, MaxX: 240, Speed: 0.4},
	}
}

func step(a *Actor, frames int, paused bool) {
	for i := 0; i < frames; i++ {
		a.Update(oneFrame, paused)
	}
}

func TestPatrolWalksRightThenTurns(t *testing.T) {
	a := NewActor(heroFrog())
	require.True(t, a.IsPatrolling())
	assert.True(t, a.FacingRight())

	step(a, 100, false)
	assert.InDelta(t, 152, a.X(), 0.05)
	assert.True(t, a.FacingRight())

	step(a, 230, false)
	assert.InDelta(t, 236, a.X(), 0.05)
	assert.False(t, a.FacingRight())
}

func TestPatrolStaysInsideRange(t *testing.T) {
	a := NewActor(heroFrog())
	for i := 0; i < 3000; i++ {
		a.Update(oneFrame, false)
		require.GreaterOrEqual(t, a.X(), 104.0-0.01)
		require.LessOrEqual(t, a.X(), 240.0+0.01)
	}
}

func TestPausedPatrolHoldsPosition(t *testing.T) {
	a := NewActor(heroFrog())
	step(a, 50, true)
	assert.Equal(t, 112.0, a.X())
}

func TestStaticNPC(t *testing.T) {
	a := NewActor(leveldata.NPC{ID: "about_snail", X: 200, Y: 300, Sprite: "snail"})
	step(a, 100, false)

	assert.False(t, a.IsPatrolling())
	assert.Equal(t, 200.0, a.X())
	assert.Equal(t, 70.0, a.Radius())
}

func TestAnimationFrames(t *testing.T) {
	a := NewActor(leveldata.NPC{ID: "mouse", Sprite: "mouse"})
	assert.Equal(t, "mouse_walk_a", a.Frame(false))

	a.Update(300*time.Millisecond, true)
	assert.Equal(t, "mouse_walk_b", a.Frame(false))
	assert.Equal(t, "mouse_walk_a", a.Frame(true), "nearby NPCs hold the first frame")
}

func TestUnknownSpriteFallsBackToFrog(t *testing.T) {
	p := ProfileFor("dragon")
	assert.Equal(t, []string{"frog_idle", "frog_jump"}, p.Frames)
	assert.Equal(t, 80.0, p.InteractionRadius)
}

func TestPositionSitsScaledSpriteLower(t *testing.T) {
	a := NewActor(heroFrog())
	assert.InDelta(t, 352+19.2, a.Position().Y, 1e-9)
}

func TestNearestUsesRadiusAndOrder(t *testing.T) {
	frog := NewActor(heroFrog())
	snail := NewActor(leveldata.NPC{ID: "snail", X: 130, Y: 352, Sprite: "snail"})
	actors := []*Actor{snail, frog}

	p := dmath.Vec2{X: 112, Y: 371.2}
	assert.Same(t, snail, Nearest(actors, p))
	assert.Same(t, frog, Nearest([]*Actor{frog, snail}, p))

	assert.Same(t, frog, Nearest(actors, dmath.Vec2{X: 112, Y: 371.2 + 75}), "frog radius is 80, snail 70")
	assert.Nil(t, Nearest(actors, dmath.Vec2{X: 112, Y: 0}))
}

func TestNewActorsKeepsOrder(t *testing.T) {
	actors := NewActors([]leveldata.NPC{{ID: "a"}, {ID: "b"}})
	require.Len(t, actors, 2)
	assert.Equal(t, "a", actors[0].ID())
	assert.Equal(t, "b", actors[1].ID())
}
