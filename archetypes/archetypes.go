package archetypes

import (
	"github.com/automoto/tower-climb/components"
	"github.com/automoto/tower-climb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers. The world layer scrolls with the camera; the HUD layer is
// drawn in screen space on top of it.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
	)
	NPC = newArchetype(
		tags.NPC,
		components.NPC,
		components.Object,
	)
	Terrain = newArchetype(
		tags.Terrain,
		components.Object,
		components.Sprite,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Object,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Object,
		components.Sprite,
	)
	Level = newArchetype(
		components.Level,
		components.MessageState,
		components.Settings,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
