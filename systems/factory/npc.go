package factory

import (
	"github.com/automoto/tower-climb/archetypes"
	"github.com/automoto/tower-climb/components"
	"github.com/automoto/tower-climb/npc"
	"github.com/automoto/tower-climb/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateNPC(ecs *ecs.ECS, a *npc.Actor) *donburi.Entry {
	entry := archetypes.NPC.Spawn(ecs)

	components.NPC.SetValue(entry, components.NPCData{Actor: a})
	components.Object.SetValue(entry, components.ObjectData{AABB: NPCBounds(a)})

	return entry
}

// NPCBounds is the box an NPC is drawn in. Position is the top-left corner
// of the scaled sprite.
func NPCBounds(a *npc.Actor) physics.AABB {
	pos := a.Position()
	size := npc.SpriteHeight * npc.SpriteScale
	return physics.AABB{X: pos.X, Y: pos.Y, Width: size, Height: size}
}
