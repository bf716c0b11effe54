// Package npc animates the tower's NPCs: patrol walks, idle frame cycling
// and the proximity check that gates conversations.
package npc

import (
	"math"
	"time"

	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Profile is the per-sprite animation and interaction tuning
type Profile struct {
	Frames            []string
	AnimationSpeed    time.Duration
	InteractionRadius float64
}

var profiles = map[string]Profile{
	"frog": {
		Frames:            []string{"frog_idle", "frog_jump"},
		AnimationSpeed:    400 * time.Millisecond,
		InteractionRadius: 80,
	},
	"ladybug": {
		Frames:            []string{"ladybug_walk_a", "ladybug_walk_b"},
		AnimationSpeed:    400 * time.Millisecond,
		InteractionRadius: 70,
	},
	"snail": {
		Frames:            []string{"snail_walk_a", "snail_walk_b"},
		AnimationSpeed:    600 * time.Millisecond,
		InteractionRadius: 70,
	},
	"mouse": {
		Frames:            []string{"mouse_walk_a", "mouse_walk_b"},
		AnimationSpeed:    300 * time.Millisecond,
		InteractionRadius: 70,
	},
}

// ProfileFor falls back to the frog profile for unknown sprites, using the
// configured default radius.
func ProfileFor(sprite string) Profile {
	if p, ok := profiles[sprite]; ok {
		return p
	}
	p := profiles["frog"]
	p.InteractionRadius = cfg.Interaction.NPCRadius
	return p
}

const (
	SpriteScale  = 0.7
	SpriteHeight = 64.0
	frameTime    = 16.67 // ms per frame at 60 fps; patrol speeds are px per frame
)

// Actor is the live state of one NPC. Its leveldata.NPC is the aggregated,
// world-space record from the tower.
type Actor struct {
	NPC     leveldata.NPC
	profile Profile

	x           float64
	facingRight bool
	patrol      *gween.Sequence
	legs        []bool // facing per patrol tween

	elapsed time.Duration
	frame   int
}

func NewActor(n leveldata.NPC) *Actor {
	a := &Actor{
		NPC:         n,
		profile:     ProfileFor(n.Sprite),
		x:           n.X,
		facingRight: true,
	}
	if n.Patrol != nil && n.Patrol.Speed > 0 {
		a.patrol, a.legs = patrolSequence(n.X, *n.Patrol)
	}
	return a
}

// NewActors wraps every NPC in order.
func NewActors(npcs []leveldata.NPC) []*Actor {
	actors := make([]*Actor, len(npcs))
	for i, n := range npcs {
		actors[i] = NewActor(n)
	}
	return actors
}

// patrolSequence walks right from the spawn X to MaxX, back to MinX, then
// right again to the spawn X, forever. Tween time is measured in frames.
func patrolSequence(startX float64, r leveldata.PatrolRange) (*gween.Sequence, []bool) {
	leg := func(from, to float64) *gween.Tween {
		frames := math.Abs(to-from) / r.Speed
		return gween.New(float32(from), float32(to), float32(frames), ease.Linear)
	}

	seq := gween.NewSequence(
		leg(startX, r.MaxX),
		leg(r.MaxX, r.MinX),
		leg(r.MinX, startX),
	)
	seq.SetLoop(-1)
	return seq, []bool{true, false, true}
}

// Update advances the idle animation and, unless paused, the patrol. NPCs
// pause while the player stands close or is talking to them.
func (a *Actor) Update(dt time.Duration, paused bool) {
	a.elapsed += dt
	if a.elapsed >= a.profile.AnimationSpeed {
		a.elapsed = 0
		a.frame++
	}

	if a.patrol == nil || paused {
		return
	}

	frames := float32(dt.Seconds() * 1000 / frameTime)
	v, _, _ := a.patrol.Update(frames)
	a.x = float64(v)

	i := a.patrol.Index()
	if i >= 0 && i < len(a.legs) {
		a.facingRight = a.legs[i]
	}
}

// Position is where the NPC is drawn, scaled sprites sitting lower by the
// height they lost.
func (a *Actor) Position() dmath.Vec2 {
	return dmath.Vec2{X: a.x, Y: a.NPC.Y + SpriteHeight*(1-SpriteScale)}
}

func (a *Actor) ID() string         { return a.NPC.ID }
func (a *Actor) X() float64         { return a.x }
func (a *Actor) FacingRight() bool  { return a.facingRight }
func (a *Actor) IsPatrolling() bool { return a.patrol != nil }
func (a *Actor) Radius() float64    { return a.profile.InteractionRadius }

// Frame is the sprite frame to draw. Nearby NPCs hold their first frame.
func (a *Actor) Frame(nearby bool) string {
	if len(a.profile.Frames) == 0 {
		return ""
	}
	if nearby {
		return a.profile.Frames[0]
	}
	return a.profile.Frames[a.frame%len(a.profile.Frames)]
}

func (a *Actor) Distance(point dmath.Vec2) float64 {
	p := a.Position()
	return math.Hypot(point.X-p.X, point.Y-p.Y)
}

func (a *Actor) IsNear(point dmath.Vec2) bool {
	return a.Distance(point) < a.profile.InteractionRadius
}

// Nearest returns the first actor, in tower order, whose interaction radius
// contains point.
func Nearest(actors []*Actor, point dmath.Vec2) *Actor {
	for _, a := range actors {
		if a.IsNear(point) {
			return a
		}
	}
	return nil
}
